package domain

import "time"

// User represents an account holder. Each user owns their own categories,
// products, movements and sales; nothing is shared across users.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt"`
}
