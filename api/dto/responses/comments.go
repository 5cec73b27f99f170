// ABOUTME: Response DTOs for comment endpoints
// ABOUTME: Replies reference their parent comment by id

package responses

import "time"

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID          int64     `json:"id" doc:"Comment ID"`
	UserID      int64     `json:"user_id" doc:"Author user ID"`
	ContentType string    `json:"content_type" doc:"Type of the target object"`
	ObjectID    int64     `json:"object_id" doc:"ID of the target object"`
	ParentID    *int64    `json:"parent_id,omitempty" doc:"Parent comment ID for replies"`
	Title       string    `json:"title,omitempty" doc:"Comment heading"`
	Body        string    `json:"body" doc:"Comment text"`
	LikeCount   int       `json:"like_count" doc:"Number of likes"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt   time.Time `json:"updated_at" doc:"Last update time"`
}

// CommentListResponse represents a list of comments
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Count    int               `json:"count" doc:"Number of comments returned"`
}
