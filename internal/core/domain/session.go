package domain

import "time"

// Session is one issued bearer token. Only the SHA-256 digest of the token is
// stored; the plaintext token exists solely in the response that issued it.
// Logout deletes the row, which is what revocation means here.
type Session struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
