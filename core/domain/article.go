// ABOUTME: Article domain model represents a published or draft post
// ABOUTME: Slugs are unique and derived from the title at creation time

package domain

import "time"

// Article status values.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article represents a blog post.
type Article struct {
	ID        int64  `json:"id" db:"id"`
	AuthorID  int64  `json:"author_id" db:"author_id"`
	Title     string `json:"title" db:"title"`
	Body      string `json:"body" db:"body"`
	Slug      string `json:"slug" db:"slug"`
	Status    string `json:"status" db:"status"`
	ViewCount int    `json:"view_count" db:"view_count"`
	LikeCount int    `json:"like_count" db:"like_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsPublished reports whether the article is visible to non-authors.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
