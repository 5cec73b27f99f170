// ABOUTME: Tag domain model for labelling articles
// ABOUTME: Tags are unique by name and attached to articles through a join record

package domain

import "time"

// Tag is a label that can be attached to articles.
type Tag struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
