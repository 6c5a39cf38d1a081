package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/press-service/internal/domain"
)

// VideoRepository handles persistence for curated site videos.
type VideoRepository interface {
	Upsert(ctx context.Context, video *domain.Video) error
	List(ctx context.Context) ([]domain.Video, error)
	Delete(ctx context.Context, id string) error
}

// PageRepository handles persistence for static pages, keyed by slug.
type PageRepository interface {
	Upsert(ctx context.Context, page *domain.PageContent) error
	GetBySlug(ctx context.Context, slug string) (*domain.PageContent, error)
	List(ctx context.Context) ([]domain.PageContent, error)
}

type videoRepository struct {
	pool *pgxpool.Pool
}

// NewVideoRepository instantiates the repository.
func NewVideoRepository(pool *pgxpool.Pool) VideoRepository {
	return &videoRepository{pool: pool}
}

func (r *videoRepository) Upsert(ctx context.Context, video *domain.Video) error {
	const query = `
        INSERT INTO videos (id, title, url, thumbnail, duration, video_type)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (id) DO UPDATE SET
            title=EXCLUDED.title,
            url=EXCLUDED.url,
            thumbnail=EXCLUDED.thumbnail,
            duration=EXCLUDED.duration,
            video_type=EXCLUDED.video_type,
            updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		video.ID,
		video.Title,
		video.URL,
		video.Thumbnail,
		video.Duration,
		video.Type,
	).Scan(&video.CreatedAt, &video.UpdatedAt)
}

func (r *videoRepository) List(ctx context.Context) ([]domain.Video, error) {
	const query = `
        SELECT id, title, url, thumbnail, duration, video_type, created_at, updated_at
        FROM videos ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Video
	for rows.Next() {
		var video domain.Video
		if err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.URL,
			&video.Thumbnail,
			&video.Duration,
			&video.Type,
			&video.CreatedAt,
			&video.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, video)
	}
	return result, rows.Err()
}

func (r *videoRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type pageRepository struct {
	pool *pgxpool.Pool
}

// NewPageRepository instantiates the repository.
func NewPageRepository(pool *pgxpool.Pool) PageRepository {
	return &pageRepository{pool: pool}
}

func (r *pageRepository) Upsert(ctx context.Context, page *domain.PageContent) error {
	const query = `
        INSERT INTO pages (slug, title, content)
        VALUES ($1,$2,$3)
        ON CONFLICT (slug) DO UPDATE SET
            title=EXCLUDED.title,
            content=EXCLUDED.content,
            updated_at=NOW()
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query, page.Slug, page.Title, page.Content).Scan(&page.UpdatedAt)
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*domain.PageContent, error) {
	const query = `SELECT slug, title, content, updated_at FROM pages WHERE slug=$1`

	var page domain.PageContent
	if err := r.pool.QueryRow(ctx, query, slug).Scan(
		&page.Slug,
		&page.Title,
		&page.Content,
		&page.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) List(ctx context.Context) ([]domain.PageContent, error) {
	const query = `SELECT slug, title, content, updated_at FROM pages ORDER BY slug`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PageContent
	for rows.Next() {
		var page domain.PageContent
		if err := rows.Scan(&page.Slug, &page.Title, &page.Content, &page.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, page)
	}
	return result, rows.Err()
}
