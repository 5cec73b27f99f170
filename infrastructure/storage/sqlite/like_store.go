// ABOUTME: SQLite implementation of the like store
// ABOUTME: The unique index makes duplicate likes report false instead of failing

package sqlite

import (
	"context"
	"time"

	"inkwell-api/core/domain"

	"github.com/jmoiron/sqlx"
)

// LikeStore persists likes in SQLite
type LikeStore struct {
	db *sqlx.DB
}

// Insert records a like; returns false when the user already liked the target
func (s *LikeStore) Insert(ctx context.Context, like *domain.Like) (bool, error) {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO likes (user_id, content_type, object_id, created_at) VALUES (?, ?, ?, ?)",
		like.UserID, like.ContentType, like.ObjectID, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, storeError("like insert", err)
	}
	return true, nil
}

// Delete removes a like; returns false when no like existed
func (s *LikeStore) Delete(ctx context.Context, userID int64, contentType string, objectID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM likes WHERE user_id = ? AND content_type = ? AND object_id = ?",
		userID, contentType, objectID,
	)
	if err != nil {
		return false, storeError("like delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError("like delete", err)
	}
	return affected > 0, nil
}

// Count returns the number of likes on a target
func (s *LikeStore) Count(ctx context.Context, contentType string, objectID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM likes WHERE content_type = ? AND object_id = ?",
		contentType, objectID,
	)
	if err != nil {
		return 0, storeError("like count", err)
	}
	return count, nil
}
