package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/markup"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// SiteService manages curated videos and static pages. Reads are public,
// writes admin only.
type SiteService struct {
	videos    repository.VideoRepository
	pages     repository.PageRepository
	sanitizer *markup.Sanitizer
}

// NewSiteService constructs the service.
func NewSiteService(videos repository.VideoRepository, pages repository.PageRepository, sanitizer *markup.Sanitizer) *SiteService {
	return &SiteService{videos: videos, pages: pages, sanitizer: sanitizer}
}

// ListVideos returns all curated videos.
func (s *SiteService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	result, err := s.videos.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// SaveVideo upserts a video. When the URL is a recognizable YouTube link the
// thumbnail is derived from it; editorial title and duration are kept as
// submitted.
func (s *SiteService) SaveVideo(ctx context.Context, actor *domain.Profile, video *domain.Video) (*domain.Video, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if video.URL == "" {
		return nil, apperrors.NewValidationError("url required", nil)
	}
	if video.ID == "" {
		video.ID = uuid.NewString()
	}
	if ytID, ok := markup.YouTubeID(video.URL); ok {
		video.Thumbnail = markup.YouTubeThumbnail(ytID)
	}

	if err := s.videos.Upsert(ctx, video); err != nil {
		return nil, apperrors.MapError(err)
	}
	return video, nil
}

// DeleteVideo removes a video.
func (s *SiteService) DeleteVideo(ctx context.Context, actor *domain.Profile, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("video", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// ListPages returns all static pages.
func (s *SiteService) ListPages(ctx context.Context) ([]domain.PageContent, error) {
	result, err := s.pages.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetPage fetches a static page by slug.
func (s *SiteService) GetPage(ctx context.Context, slug string) (*domain.PageContent, error) {
	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("page", map[string]any{"slug": slug})
		}
		return nil, apperrors.MapError(err)
	}
	return page, nil
}

// SavePage upserts a static page.
func (s *SiteService) SavePage(ctx context.Context, actor *domain.Profile, page *domain.PageContent) (*domain.PageContent, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if page.Slug == "" {
		return nil, apperrors.NewValidationError("slug required", nil)
	}
	page.Title = s.sanitizer.PlainText(page.Title)
	page.Content = s.sanitizer.Content(page.Content)

	if err := s.pages.Upsert(ctx, page); err != nil {
		return nil, apperrors.MapError(err)
	}
	return page, nil
}
