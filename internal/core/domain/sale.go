package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentCard     PaymentMethod = "TARJETA"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

// Valid reports whether the method is one of the enumerated values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Sale is the header of one checkout transaction. Total is computed from the
// lines exactly once at commit time and is never editable afterwards.
type Sale struct {
	SaleID        string          `json:"saleID"` // Primary Key (UUID)
	OwnerID       string          `json:"ownerID"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	Lines         []SaleLine      `json:"lines"`
}

// SaleLine is one product-and-quantity entry within a sale. UnitPrice is the
// product price snapshotted at sale time; later price edits never touch it.
type SaleLine struct {
	LineID    string          `json:"lineID"` // Primary Key (UUID)
	SaleID    string          `json:"saleID"`
	ProductID string          `json:"productID"`
	Quantity  int             `json:"quantity"` // >= 1
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"` // Quantity x UnitPrice
}
