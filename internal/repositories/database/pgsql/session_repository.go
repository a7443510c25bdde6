package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	"github.com/cemas-app/cemas_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

// NewPgxSessionRepository creates a new repository for session tokens.
func NewPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{db: db}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	query := `
        INSERT INTO sessions (token_hash, user_id, created_at, expires_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query,
		session.TokenHash,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	query := `
        SELECT token_hash, user_id, created_at, expires_at
        FROM sessions
        WHERE token_hash = $1;
    `
	var m models.Session
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&m.TokenHash,
		&m.UserID,
		&m.CreatedAt,
		&m.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &domain.Session{
		TokenHash: m.TokenHash,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}, nil
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1;`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
