package repositories

import (
	"context"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// SessionRepository defines persistence operations for bearer-token sessions.
type SessionRepository interface {
	// SaveSession persists a new session row.
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByTokenHash retrieves a session by token digest.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)

	// DeleteSession removes a session row, revoking the token.
	DeleteSession(ctx context.Context, tokenHash string) error
}
