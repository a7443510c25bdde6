package repositories

import (
	"context"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
)

// SaleLineInput is one requested line before pricing: the price snapshot and
// subtotal are resolved inside the sale transaction, not by the caller.
type SaleLineInput struct {
	ProductID string
	Quantity  int
}

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	// CreateSale commits the sale header and all lines in one database
	// transaction. Each line's product is resolved against the sale owner
	// inside that transaction; its current sale_price becomes the frozen
	// unit_price and the header total is set to the exact sum of subtotals.
	// Any failure, including an unknown or foreign product
	// (apperrors.ErrNotFound), rolls the whole sale back. On success the
	// returned sale carries its lines as persisted.
	CreateSale(ctx context.Context, sale domain.Sale, lines []SaleLineInput) (*domain.Sale, error)

	// ListSalesByOwner retrieves the owner's sales newest first, each with
	// its lines in creation order.
	ListSalesByOwner(ctx context.Context, ownerID string) ([]domain.Sale, error)
}
