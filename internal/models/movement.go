package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is the financial_movements table row. CategoryID goes NULL when
// the referenced category is deleted (ON DELETE SET NULL).
type Movement struct {
	MovementID  string          `db:"movement_id"`
	OwnerID     string          `db:"owner_id"`
	CategoryID  *string         `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	IsExpense   bool            `db:"is_expense"`
	CreatedAt   time.Time       `db:"created_at"`
}
