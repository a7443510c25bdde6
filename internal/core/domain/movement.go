package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a manual income or expense entry outside of sales.
// CategoryID is nullable: deleting the category keeps the movement and nils
// the reference. Movements are append-only, never edited.
type Movement struct {
	MovementID  string          `json:"movementID"` // Primary Key (UUID)
	OwnerID     string          `json:"ownerID"`    // FK -> User.userID
	CategoryID  *string         `json:"categoryID"` // FK -> Category.categoryID, nullable
	Amount      decimal.Decimal `json:"amount"`     // > 0; sign is derived from IsExpense
	Description string          `json:"description"`
	IsExpense   bool            `json:"isExpense"`
	CreatedAt   time.Time       `json:"createdAt"` // server-assigned, immutable
}
