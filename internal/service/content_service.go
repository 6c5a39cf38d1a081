package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/events"
	"github.com/spec-kit/press-service/internal/markup"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

const relatedArticleLimit = 3

// ContentService manages magazine articles. Reads are public; writes require
// the writer or admin surface and are sanitized before storage.
type ContentService struct {
	articles   repository.ArticleRepository
	sanitizer  *markup.Sanitizer
	dispatcher events.Dispatcher
}

// NewContentService constructs the service.
func NewContentService(articles repository.ArticleRepository, sanitizer *markup.Sanitizer, dispatcher events.Dispatcher) *ContentService {
	return &ContentService{articles: articles, sanitizer: sanitizer, dispatcher: dispatcher}
}

// ArticleListFilters define listing parameters.
type ArticleListFilters struct {
	Category *string
	Author   *string
	Featured *bool
	Limit    int
	Offset   int
}

// ListArticles returns articles matching the filters, newest first.
func (s *ContentService) ListArticles(ctx context.Context, filters ArticleListFilters) ([]domain.Article, error) {
	result, err := s.articles.List(ctx, repository.ArticleFilter{
		Category: filters.Category,
		Author:   filters.Author,
		Featured: filters.Featured,
		Limit:    filters.Limit,
		Offset:   filters.Offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetArticle fetches one article.
func (s *ContentService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("article", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return article, nil
}

// RelatedArticles returns up to three other articles in the same category.
func (s *ContentService) RelatedArticles(ctx context.Context, id string) ([]domain.Article, error) {
	article, err := s.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, err := s.articles.List(ctx, repository.ArticleFilter{
		Category: &article.Category,
		Limit:    relatedArticleLimit + 1,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	related := make([]domain.Article, 0, relatedArticleLimit)
	for _, candidate := range candidates {
		if candidate.ID == article.ID {
			continue
		}
		related = append(related, candidate)
		if len(related) == relatedArticleLimit {
			break
		}
	}
	return related, nil
}

// SaveArticle creates or updates an article. Bodies keep formatting markup;
// titles and excerpts are reduced to plain text.
func (s *ContentService) SaveArticle(ctx context.Context, actor *domain.Profile, article *domain.Article) (*domain.Article, error) {
	if err := requireEditor(actor); err != nil {
		return nil, err
	}
	if article.Title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}

	article.Title = s.sanitizer.PlainText(article.Title)
	article.Subtitle = s.sanitizer.PlainText(article.Subtitle)
	article.Excerpt = s.sanitizer.PlainText(article.Excerpt)
	article.Content = s.sanitizer.Content(article.Content)

	isNew := article.ID == ""
	if isNew {
		article.ID = uuid.NewString()
		if article.PublishedAt.IsZero() {
			article.PublishedAt = time.Now()
		}
		if err := s.articles.Create(ctx, article); err != nil {
			return nil, apperrors.MapError(err)
		}
		s.publishCreated(ctx, actor, article)
	} else {
		if err := s.articles.Update(ctx, article); err != nil {
			return nil, apperrors.MapError(err)
		}
	}
	return article, nil
}

// DeleteArticle removes an article. Admin only.
func (s *ContentService) DeleteArticle(ctx context.Context, actor *domain.Profile, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.articles.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("article", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *ContentService) publishCreated(ctx context.Context, actor *domain.Profile, article *domain.Article) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventArticlePublished,
		ActorID:   actor.ID,
		Timestamp: time.Now(),
		Payload: events.ArticlePublishedPayload{
			ArticleID: article.ID,
			Title:     article.Title,
			Author:    article.Author,
		},
	})
}
