package domain

import "time"

// CategoryKind distinguishes income from expense categories.
type CategoryKind string

const (
	KindIncome  CategoryKind = "INGRESO"
	KindExpense CategoryKind = "GASTO"
)

// Valid reports whether the kind is one of the two enumerated values.
func (k CategoryKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Category groups financial movements for analysis. Owned by exactly one user.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	OwnerID    string       `json:"ownerID"`    // FK -> User.userID
	Name       string       `json:"name"`
	Kind       CategoryKind `json:"kind"`
	CreatedAt  time.Time    `json:"createdAt"`
}
