// ABOUTME: SQLite implementation of the comment store
// ABOUTME: Comments address their target by content type and object id

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell-api/core/domain"

	"github.com/jmoiron/sqlx"
)

// commentColumns maps update field names to their columns.
var commentColumns = map[string]string{
	"title": "title",
	"body":  "body",
}

// CommentStore persists comments in SQLite
type CommentStore struct {
	db *sqlx.DB
}

// FindByID retrieves a comment by id
func (s *CommentStore) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	err := s.db.GetContext(ctx, &comment, "SELECT * FROM comments WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("comment lookup", err)
	}
	return &comment, nil
}

// FindByTarget retrieves the comments on a target, newest first
func (s *CommentStore) FindByTarget(ctx context.Context, contentType string, objectID int64) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	err := s.db.SelectContext(ctx, &comments,
		"SELECT * FROM comments WHERE content_type = ? AND object_id = ? ORDER BY created_at DESC",
		contentType, objectID,
	)
	if err != nil {
		return nil, storeError("comment list", err)
	}
	return comments, nil
}

// Insert creates a comment and returns the stored record
func (s *CommentStore) Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO comments (user_id, title, body, content_type, object_id, parent_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		comment.UserID, comment.Title, comment.Body, comment.ContentType, comment.ObjectID, comment.ParentID, now, now,
	)
	if err != nil {
		return nil, storeError("comment insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeError("comment insert", err)
	}

	return s.FindByID(ctx, id)
}

// UpdateFields applies field changes to an existing comment. Returns nil, nil
// when the id does not exist.
func (s *CommentStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Comment, error) {
	set, args, err := buildSet(commentColumns, fields)
	if err != nil {
		return nil, err
	}
	if set == "" {
		return s.FindByID(ctx, id)
	}

	args = append(args, time.Now().UTC(), id)
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET "+set+", updated_at = ? WHERE id = ?", args...)
	if err != nil {
		return nil, storeError("comment update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("comment update", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return s.FindByID(ctx, id)
}

// DeleteByID removes a comment; returns false when the id does not exist
func (s *CommentStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return false, storeError("comment delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError("comment delete", err)
	}
	return affected > 0, nil
}
