// ABOUTME: Response DTOs for article, tag, and reaction endpoints
// ABOUTME: Mirrors the domain article shape with API documentation tags

package responses

import "time"

// ArticleResponse represents an article in API responses
type ArticleResponse struct {
	ID        int64     `json:"id" doc:"Article ID"`
	AuthorID  int64     `json:"author_id" doc:"Author user ID"`
	Title     string    `json:"title" doc:"Article title"`
	Body      string    `json:"body" doc:"Article content"`
	Excerpt   string    `json:"excerpt,omitempty" doc:"Short plain-text excerpt"`
	Slug      string    `json:"slug" doc:"URL slug"`
	Status    string    `json:"status" doc:"Publication status"`
	ViewCount int       `json:"view_count" doc:"Number of views"`
	LikeCount int       `json:"like_count" doc:"Number of likes"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update time"`
}

// ArticleListResponse represents a list of articles
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count" doc:"Number of articles returned"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID   int64  `json:"id" doc:"Tag ID"`
	Name string `json:"name" doc:"Tag name"`
}

// TagListResponse represents a list of tags
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// TagChangeResponse reports whether a tag attachment changed
type TagChangeResponse struct {
	Changed bool `json:"changed" doc:"Whether the tag attachment changed"`
}

// ReactionResponse reports the outcome of a like or unlike request
type ReactionResponse struct {
	Changed bool `json:"changed" doc:"Whether the reaction state changed"`
}

// ReactionCountResponse reports the like count for an object
type ReactionCountResponse struct {
	Count int `json:"count" doc:"Number of likes"`
}
