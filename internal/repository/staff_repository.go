package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/press-service/internal/domain"
)

// StaffRepository handles persistence for public staff-directory entries,
// keyed by slug. Upsert is a full replace of the row, not a merge.
type StaffRepository interface {
	List(ctx context.Context) ([]domain.StaffEntry, error)
	GetBySlug(ctx context.Context, slug string) (*domain.StaffEntry, error)
	Upsert(ctx context.Context, entry *domain.StaffEntry) error
	Delete(ctx context.Context, slug string) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffEntry, error) {
	const query = `
        SELECT slug, name, title, department, bio, image, email, socials, access_level, created_at, updated_at
        FROM staff_entries ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffEntry
	for rows.Next() {
		entry, err := scanStaffEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *entry)
	}
	return result, rows.Err()
}

func (r *staffRepository) GetBySlug(ctx context.Context, slug string) (*domain.StaffEntry, error) {
	const query = `
        SELECT slug, name, title, department, bio, image, email, socials, access_level, created_at, updated_at
        FROM staff_entries WHERE slug=$1`

	return scanStaffEntry(r.pool.QueryRow(ctx, query, slug))
}

func (r *staffRepository) Upsert(ctx context.Context, entry *domain.StaffEntry) error {
	const query = `
        INSERT INTO staff_entries (slug, name, title, department, bio, image, email, socials, access_level)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (slug) DO UPDATE SET
            name=EXCLUDED.name,
            title=EXCLUDED.title,
            department=EXCLUDED.department,
            bio=EXCLUDED.bio,
            image=EXCLUDED.image,
            email=EXCLUDED.email,
            socials=EXCLUDED.socials,
            access_level=EXCLUDED.access_level,
            updated_at=NOW()
        RETURNING created_at, updated_at`

	socials, err := json.Marshal(entry.Socials)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, query,
		entry.Slug,
		entry.Name,
		entry.Title,
		entry.Department,
		entry.Bio,
		entry.Image,
		entry.Email,
		socials,
		string(entry.AccessLevel),
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
}

func (r *staffRepository) Delete(ctx context.Context, slug string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM staff_entries WHERE slug=$1`, slug)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStaffEntry(row rowScanner) (*domain.StaffEntry, error) {
	var (
		entry   domain.StaffEntry
		socials []byte
		level   string
	)
	if err := row.Scan(
		&entry.Slug,
		&entry.Name,
		&entry.Title,
		&entry.Department,
		&entry.Bio,
		&entry.Image,
		&entry.Email,
		&socials,
		&level,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := domain.ParseRole(level)
	if err != nil {
		return nil, fmt.Errorf("staff entry %s: %w", entry.Slug, err)
	}
	entry.AccessLevel = parsed

	if len(socials) > 0 {
		if err := json.Unmarshal(socials, &entry.Socials); err != nil {
			return nil, fmt.Errorf("staff entry %s socials: %w", entry.Slug, err)
		}
	}
	return &entry, nil
}
