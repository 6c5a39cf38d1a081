package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/press-service/internal/domain"
)

// ProfileRepository handles persistence for identity profiles.
//
// FindByEmail returns every match rather than the first one: email is treated
// as unique in practice but is not enforced unique, and the reconciler needs
// to detect the zero and multiple cases.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Profile, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdatePreferences(ctx context.Context, id string, prefs domain.Preferences) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (id, email, display_name, role, preferences)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	prefs, err := json.Marshal(profile.Preferences)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.Email,
		profile.DisplayName,
		string(profile.Role),
		prefs,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const query = `
        SELECT id, email, display_name, role, preferences, created_at, updated_at
        FROM profiles WHERE id=$1`

	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) ([]domain.Profile, error) {
	const query = `
        SELECT id, email, display_name, role, preferences, created_at, updated_at
        FROM profiles WHERE email=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *profile)
	}
	return result, rows.Err()
}

func (r *profileRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	const query = `UPDATE profiles SET role=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, string(role), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) UpdatePreferences(ctx context.Context, id string, prefs domain.Preferences) error {
	const query = `UPDATE profiles SET preferences=$1, updated_at=NOW() WHERE id=$2`

	encoded, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, query, encoded, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		profile domain.Profile
		role    string
		prefs   []byte
	)
	if err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&role,
		&prefs,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile.ID, err)
	}
	profile.Role = parsed

	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &profile.Preferences); err != nil {
			return nil, fmt.Errorf("profile %s preferences: %w", profile.ID, err)
		}
	}
	return &profile, nil
}
