package dto

import (
	"time"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleLineRequest is one requested line: a product reference and a quantity.
type SaleLineRequest struct {
	ProductID string `json:"id" binding:"required"`
	Quantity  int    `json:"cantidad" binding:"required,min=1"`
}

// CreateSaleRequest is the checkout payload. PaymentMethod defaults to
// EFECTIVO when omitted.
type CreateSaleRequest struct {
	PaymentMethod string            `json:"metodo_pago" binding:"omitempty,metodo_pago"`
	Lines         []SaleLineRequest `json:"productos"`
}

// SaleLineResponse is the wire representation of a committed sale line,
// carrying the price snapshot as persisted.
type SaleLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"producto"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse is the wire representation of a committed sale with its lines.
type SaleResponse struct {
	ID            string             `json:"id"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"metodo_pago"`
	CreatedAt     time.Time          `json:"fecha"`
	Lines         []SaleLineResponse `json:"detalles"`
}

// ToSaleResponse converts a domain.Sale (with lines) to its wire form.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = SaleLineResponse{
			ID:        l.LineID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		}
	}
	return SaleResponse{
		ID:            s.SaleID,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		CreatedAt:     s.CreatedAt,
		Lines:         lines,
	}
}

// ToSaleResponses converts a slice of domain sales.
func ToSaleResponses(ss []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(ss))
	for i := range ss {
		responses[i] = ToSaleResponse(&ss[i])
	}
	return responses
}
