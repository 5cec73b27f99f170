// ABOUTME: User domain model represents an account in the blogging platform
// ABOUTME: Password hashes are never serialized into cache snapshots or API responses

package domain

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user
	ID int64 `json:"id" db:"id"`

	// Username is the unique handle
	Username string `json:"username" db:"username"`

	// Email is the unique email address
	Email string `json:"email" db:"email"`

	// PasswordHash is the derived credential hash. It is excluded from JSON
	// so cached snapshots and responses never carry credentials.
	PasswordHash string `json:"-" db:"password_hash"`

	// IsStaff marks administrative accounts
	IsStaff bool `json:"is_staff" db:"is_staff"`

	// IsActive marks whether the account may authenticate
	IsActive bool `json:"is_active" db:"is_active"`

	// LastLogin is the time of the most recent successful login
	LastLogin *time.Time `json:"last_login,omitempty" db:"last_login"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserWithProfile bundles a user with their profile for combined reads.
type UserWithProfile struct {
	User    User     `json:"user"`
	Profile *Profile `json:"profile,omitempty"`
}
