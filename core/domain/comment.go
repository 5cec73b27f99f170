// ABOUTME: Comment domain model supports comments on articles and threaded replies
// ABOUTME: Targets are addressed polymorphically by content type and object id

package domain

import "time"

// Comment represents a comment on an article or a reply to another comment.
type Comment struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`
	Title  string `json:"title" db:"title"`
	Body   string `json:"body" db:"body"`

	// ContentType and ObjectID identify what is being commented on
	ContentType string `json:"content_type" db:"content_type"`
	ObjectID    int64  `json:"object_id" db:"object_id"`

	// ParentID is set when this comment is a reply to another comment
	ParentID *int64 `json:"parent_id,omitempty" db:"parent_id"`

	LikeCount int `json:"like_count" db:"like_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
