package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the sales table row.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	OwnerID       string          `db:"owner_id"`
	Total         decimal.Decimal `db:"total"`
	PaymentMethod string          `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
}

// SaleLine is the sale_lines table row. sale_id cascades with its sale;
// product_id is ON DELETE RESTRICT so history protects the product.
type SaleLine struct {
	LineID    string          `db:"line_id"`
	SaleID    string          `db:"sale_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Subtotal  decimal.Decimal `db:"subtotal"`
}
