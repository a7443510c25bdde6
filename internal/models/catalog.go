package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKind mirrors the categories.kind check constraint.
type CategoryKind string

// Category is the categories table row.
type Category struct {
	CategoryID string       `db:"category_id"`
	OwnerID    string       `db:"owner_id"`
	Name       string       `db:"name"`
	Kind       CategoryKind `db:"kind"`
	CreatedAt  time.Time    `db:"created_at"`
}

// Product is the products table row. Prices are NUMERIC(10,2).
type Product struct {
	ProductID  string          `db:"product_id"`
	OwnerID    string          `db:"owner_id"`
	Name       string          `db:"name"`
	SalePrice  decimal.Decimal `db:"sale_price"`
	ApproxCost decimal.Decimal `db:"approx_cost"`
	CreatedAt  time.Time       `db:"created_at"`
}
