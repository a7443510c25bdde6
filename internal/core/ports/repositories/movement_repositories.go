package repositories

import (
	"context"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
)

// MovementRepository defines persistence operations for financial movements.
type MovementRepository interface {
	// SaveMovement persists a new movement.
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// ListMovementsByOwner retrieves the owner's movements, newest first.
	ListMovementsByOwner(ctx context.Context, ownerID string) ([]domain.Movement, error)

	// DeleteMovement removes a movement matched by both ID and owner.
	// Returns apperrors.ErrNotFound when no such row exists, foreign rows
	// included.
	DeleteMovement(ctx context.Context, movementID, ownerID string) error
}
