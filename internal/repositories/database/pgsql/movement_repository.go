package pgsql

import (
	"context"
	"fmt"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	"github.com/cemas-app/cemas_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMovementRepository struct {
	db *pgxpool.Pool
}

// NewPgxMovementRepository creates a new repository for financial movements.
func NewPgxMovementRepository(db *pgxpool.Pool) portsrepo.MovementRepository {
	return &PgxMovementRepository{db: db}
}

var _ portsrepo.MovementRepository = (*PgxMovementRepository)(nil)

func toDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:  m.MovementID,
		OwnerID:     m.OwnerID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Description: m.Description,
		IsExpense:   m.IsExpense,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	query := `
        INSERT INTO financial_movements (movement_id, owner_id, category_id, amount, description, is_expense, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		movement.MovementID,
		movement.OwnerID,
		movement.CategoryID,
		movement.Amount,
		movement.Description,
		movement.IsExpense,
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save movement: %w", err)
	}
	return nil
}

func (r *PgxMovementRepository) ListMovementsByOwner(ctx context.Context, ownerID string) ([]domain.Movement, error) {
	query := `
        SELECT movement_id, owner_id, category_id, amount, description, is_expense, created_at
        FROM financial_movements
        WHERE owner_id = $1
        ORDER BY created_at DESC, movement_id DESC;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements := []domain.Movement{}
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.MovementID, &m.OwnerID, &m.CategoryID, &m.Amount, &m.Description, &m.IsExpense, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, toDomainMovement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}
	return movements, nil
}

func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID, ownerID string) error {
	// Combined id+owner filter: a foreign movement is indistinguishable
	// from a missing one.
	query := `DELETE FROM financial_movements WHERE movement_id = $1 AND owner_id = $2;`
	tag, err := r.db.Exec(ctx, query, movementID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
