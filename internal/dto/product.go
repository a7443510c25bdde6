package dto

import (
	"time"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductRequest carries product fields for create and update.
// ApproxCost is a pointer so an omitted field defaults to zero while an
// explicit zero is still distinguishable from absent on update.
type ProductRequest struct {
	Name       string           `json:"nombre" binding:"required,max=100"`
	SalePrice  decimal.Decimal  `json:"precio_venta" binding:"required"`
	ApproxCost *decimal.Decimal `json:"costo_aprox"`
}

// ProductResponse is the wire representation of a product.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"nombre"`
	SalePrice  decimal.Decimal `json:"precio_venta"`
	ApproxCost decimal.Decimal `json:"costo_aprox"`
	CreatedAt  time.Time       `json:"fecha_creacion"`
}

// ToProductResponse converts a domain.Product to its wire form.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ProductID,
		Name:       p.Name,
		SalePrice:  p.SalePrice,
		ApproxCost: p.ApproxCost,
		CreatedAt:  p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(ps []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(ps))
	for i := range ps {
		responses[i] = ToProductResponse(&ps[i])
	}
	return responses
}
