package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/press-service/internal/domain"
)

// ArticleRepository handles persistence for magazine articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]domain.Article, error)
	Delete(ctx context.Context, id string) error
}

// ArticleFilter defines query params for article listing.
type ArticleFilter struct {
	Category *string
	Author   *string
	Featured *bool
	Limit    int
	Offset   int
}

type articleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository instantiates the repository.
func NewArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &articleRepository{pool: pool}
}

const articleColumns = `id, title, subtitle, excerpt, content, author, author_image, category, tags, image_url, featured, published_at, created_at, updated_at`

func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	const query = `
        INSERT INTO articles (id, title, subtitle, excerpt, content, author, author_image, category, tags, image_url, featured, published_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		article.ID,
		article.Title,
		article.Subtitle,
		article.Excerpt,
		article.Content,
		article.Author,
		article.AuthorImage,
		article.Category,
		article.Tags,
		article.ImageURL,
		article.Featured,
		article.PublishedAt,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
}

func (r *articleRepository) Update(ctx context.Context, article *domain.Article) error {
	const query = `
        UPDATE articles
        SET title=$1, subtitle=$2, excerpt=$3, content=$4, author=$5, author_image=$6,
            category=$7, tags=$8, image_url=$9, featured=$10, published_at=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		article.Title,
		article.Subtitle,
		article.Excerpt,
		article.Content,
		article.Author,
		article.AuthorImage,
		article.Category,
		article.Tags,
		article.ImageURL,
		article.Featured,
		article.PublishedAt,
		article.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id=$1`
	return scanArticle(r.pool.QueryRow(ctx, query, id))
}

func (r *articleRepository) List(ctx context.Context, filter ArticleFilter) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []any{}
	clauses := []string{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Author != nil {
		args = append(args, *filter.Author)
		clauses = append(clauses, fmt.Sprintf("author=$%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, fmt.Sprintf("featured=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY published_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *article)
	}
	return result, rows.Err()
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var article domain.Article
	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Subtitle,
		&article.Excerpt,
		&article.Content,
		&article.Author,
		&article.AuthorImage,
		&article.Category,
		&article.Tags,
		&article.ImageURL,
		&article.Featured,
		&article.PublishedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &article, nil
}
