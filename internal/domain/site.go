package domain

import "time"

// Video is a curated site video, usually a YouTube link. Thumbnail and
// duration are editorial metadata; the thumbnail is derived from the URL when
// one can be recognized.
type Video struct {
	ID        string
	Title     string
	URL       string
	Thumbnail string
	Duration  string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PageContent is a static legal/editorial page keyed by slug
// (ethics, privacy, terms and so on).
type PageContent struct {
	Slug      string
	Title     string
	Content   string
	UpdatedAt time.Time
}
