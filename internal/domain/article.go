package domain

import "time"

// Article is a published or draft magazine piece. Content is markdown; it is
// sanitized at the write boundary before storage.
type Article struct {
	ID          string
	Title       string
	Subtitle    string
	Excerpt     string
	Content     string
	Author      string
	AuthorImage string
	Category    string
	Tags        []string
	ImageURL    string
	Featured    bool
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
