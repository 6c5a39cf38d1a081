package dto

import (
	"time"

	"github.com/spec-kit/press-service/internal/domain"
)

// SaveArticleRequest payload. An empty id creates a new article.
type SaveArticleRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Subtitle    string   `json:"subtitle"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	AuthorImage string   `json:"author_image"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
	Featured    bool     `json:"featured"`
}

// ToDomain maps the request onto a domain article.
func (r SaveArticleRequest) ToDomain() *domain.Article {
	return &domain.Article{
		ID:          r.ID,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Author:      r.Author,
		AuthorImage: r.AuthorImage,
		Category:    r.Category,
		Tags:        r.Tags,
		ImageURL:    r.ImageURL,
		Featured:    r.Featured,
	}
}

// ArticleSummary response for listings.
type ArticleSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"published_at"`
}

// NewArticleSummary maps a domain article.
func NewArticleSummary(a domain.Article) ArticleSummary {
	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Excerpt:     a.Excerpt,
		Author:      a.Author,
		Category:    a.Category,
		Tags:        a.Tags,
		ImageURL:    a.ImageURL,
		Featured:    a.Featured,
		PublishedAt: a.PublishedAt,
	}
}

// ArticleDetail response with full content.
type ArticleDetail struct {
	ArticleSummary
	Content     string `json:"content"`
	AuthorImage string `json:"author_image,omitempty"`
}

// NewArticleDetail maps a domain article.
func NewArticleDetail(a *domain.Article) ArticleDetail {
	return ArticleDetail{
		ArticleSummary: NewArticleSummary(*a),
		Content:        a.Content,
		AuthorImage:    a.AuthorImage,
	}
}
