package dto

import (
	"time"

	"github.com/spec-kit/press-service/internal/domain"
)

// SaveVideoRequest payload. An empty id creates a new video.
type SaveVideoRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url" validate:"required,url"`
	Duration string `json:"duration"`
	Type     string `json:"type"`
}

// ToDomain maps the request onto a domain video.
func (r SaveVideoRequest) ToDomain() *domain.Video {
	return &domain.Video{
		ID:       r.ID,
		Title:    r.Title,
		URL:      r.URL,
		Duration: r.Duration,
		Type:     r.Type,
	}
}

// VideoResponse is the site video shape.
type VideoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	Type      string `json:"type"`
}

// NewVideoResponse maps a domain video.
func NewVideoResponse(v domain.Video) VideoResponse {
	return VideoResponse{
		ID:        v.ID,
		Title:     v.Title,
		URL:       v.URL,
		Thumbnail: v.Thumbnail,
		Duration:  v.Duration,
		Type:      v.Type,
	}
}

// SavePageRequest payload, keyed by slug.
type SavePageRequest struct {
	Slug    string `json:"slug" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// PageResponse is the static page shape.
type PageResponse struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPageResponse maps a domain page.
func NewPageResponse(p domain.PageContent) PageResponse {
	return PageResponse{Slug: p.Slug, Title: p.Title, Content: p.Content, UpdatedAt: p.UpdatedAt}
}
