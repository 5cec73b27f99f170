// ABOUTME: Profile domain model holds public-facing user details
// ABOUTME: Follow represents a directed follower relationship between users

package domain

import "time"

// Gender values accepted on a profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Profile holds the public details attached to a user.
type Profile struct {
	ID            int64  `json:"id" db:"id"`
	UserID        int64  `json:"user_id" db:"user_id"`
	Avatar        string `json:"avatar" db:"avatar"`
	PhoneNumber   string `json:"phone_number" db:"phone_number"`
	Gender        string `json:"gender" db:"gender"`
	FollowerCount int    `json:"follower_count" db:"follower_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Follow records that one user follows another.
type Follow struct {
	ID         int64     `json:"id" db:"id"`
	FollowerID int64     `json:"follower_id" db:"follower_id"`
	FollowedID int64     `json:"followed_id" db:"followed_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
