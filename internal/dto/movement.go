package dto

import (
	"time"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest carries a manual income/expense entry. The category
// is optional. IsExpense is a pointer because false is a meaningful value.
type CreateMovementRequest struct {
	Amount      decimal.Decimal `json:"monto" binding:"required"`
	Description string          `json:"descripcion" binding:"required,max=255"`
	IsExpense   *bool           `json:"es_gasto" binding:"required"`
	CategoryID  *string         `json:"categoria"`
}

// MovementResponse is the wire representation of a movement.
type MovementResponse struct {
	ID          string          `json:"id"`
	CategoryID  *string         `json:"categoria"`
	Amount      decimal.Decimal `json:"monto"`
	Description string          `json:"descripcion"`
	IsExpense   bool            `json:"es_gasto"`
	CreatedAt   time.Time       `json:"fecha"`
}

// ToMovementResponse converts a domain.Movement to its wire form.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.MovementID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Description: m.Description,
		IsExpense:   m.IsExpense,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMovementResponses converts a slice of domain movements.
func ToMovementResponses(ms []domain.Movement) []MovementResponse {
	responses := make([]MovementResponse, len(ms))
	for i := range ms {
		responses[i] = ToMovementResponse(&ms[i])
	}
	return responses
}
