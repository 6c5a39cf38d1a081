package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/press-service/internal/domain"
)

// CredentialRepository persists local sign-in credentials. Credentials are
// the principal records; profiles hang off their ids.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	GetByID(ctx context.Context, id string) (*domain.Credential, error)
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type credentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository instantiates the repository.
func NewCredentialRepository(pool *pgxpool.Pool) CredentialRepository {
	return &credentialRepository{pool: pool}
}

func (r *credentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	const query = `
        INSERT INTO credentials (id, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		cred.ID,
		cred.Email,
		cred.PasswordHash,
	).Scan(&cred.CreatedAt, &cred.UpdatedAt)
}

func (r *credentialRepository) GetByID(ctx context.Context, id string) (*domain.Credential, error) {
	const query = `
        SELECT id, email, password_hash, created_at, updated_at
        FROM credentials WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	const query = `
        SELECT id, email, password_hash, created_at, updated_at
        FROM credentials WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *credentialRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE credentials SET password_hash=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *credentialRepository) scanOne(row pgx.Row) (*domain.Credential, error) {
	var cred domain.Credential
	if err := row.Scan(
		&cred.ID,
		&cred.Email,
		&cred.PasswordHash,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cred, nil
}
