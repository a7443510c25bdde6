package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is something the business sells. SalePrice is the price charged at
// checkout; ApproxCost is optional and only used for rough margin analysis.
type Product struct {
	ProductID  string          `json:"productID"` // Primary Key (UUID)
	OwnerID    string          `json:"ownerID"`   // FK -> User.userID
	Name       string          `json:"name"`
	SalePrice  decimal.Decimal `json:"salePrice"`  // >= 0
	ApproxCost decimal.Decimal `json:"approxCost"` // >= 0, defaults to 0
	CreatedAt  time.Time       `json:"createdAt"`
}
