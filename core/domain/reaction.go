// ABOUTME: Like domain model records a user's reaction to an article or comment
// ABOUTME: A user may like a given target at most once

package domain

import "time"

// Like records a reaction on an article or comment.
type Like struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	ContentType string    `json:"content_type" db:"content_type"`
	ObjectID    int64     `json:"object_id" db:"object_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
