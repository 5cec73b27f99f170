// ABOUTME: ResetToken domain model for the password reset flow
// ABOUTME: Only a hash of the token is persisted; the raw value goes out by email

package domain

import "time"

// ResetToken is a single-use password reset credential.
type ResetToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the token is past its expiry.
func (t *ResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
