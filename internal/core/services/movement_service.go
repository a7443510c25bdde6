package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
)

// movementService provides the append-only manual income/expense log.
// Movements are created or deleted, never edited.
type movementService struct {
	movementRepo portsrepo.MovementRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewMovementService creates a new MovementService.
func NewMovementService(movementRepo portsrepo.MovementRepository, categoryRepo portsrepo.CategoryRepository) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo: movementRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

func (s *movementService) ListMovements(ctx context.Context, callerID string) ([]domain.Movement, error) {
	return s.movementRepo.ListMovementsByOwner(ctx, callerID)
}

func (s *movementService) CreateMovement(ctx context.Context, callerID string, req dto.CreateMovementRequest) (*domain.Movement, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: monto must be positive", apperrors.ErrValidation)
	}

	// An attached category must exist and belong to the caller. A foreign
	// category reads as missing, same as any other cross-user lookup.
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category.OwnerID != callerID {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, *req.CategoryID)
		}
	}

	movement := domain.Movement{
		MovementID:  uuid.NewString(),
		OwnerID:     callerID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		IsExpense:   *req.IsExpense,
		CreatedAt:   time.Now().UTC(), // server-assigned, immutable
	}
	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, err
	}
	return &movement, nil
}

func (s *movementService) DeleteMovement(ctx context.Context, callerID, movementID string) error {
	return s.movementRepo.DeleteMovement(ctx, movementID, callerID)
}
