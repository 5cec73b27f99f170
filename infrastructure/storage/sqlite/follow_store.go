// ABOUTME: SQLite implementation of the follow store
// ABOUTME: Follows are unique per follower/followed pair

package sqlite

import (
	"context"
	"time"

	"inkwell-api/core/domain"

	"github.com/jmoiron/sqlx"
)

// FollowStore persists follow relationships in SQLite
type FollowStore struct {
	db *sqlx.DB
}

// Insert records a follow; returns false when already following
func (s *FollowStore) Insert(ctx context.Context, followerID, followedID int64) (bool, error) {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO follows (follower_id, followed_id, created_at) VALUES (?, ?, ?)",
		followerID, followedID, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, storeError("follow insert", err)
	}
	return true, nil
}

// Delete removes a follow; returns false when not following
func (s *FollowStore) Delete(ctx context.Context, followerID, followedID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM follows WHERE follower_id = ? AND followed_id = ?",
		followerID, followedID,
	)
	if err != nil {
		return false, storeError("follow delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError("follow delete", err)
	}
	return affected > 0, nil
}

// Followers returns the users following the given user
func (s *FollowStore) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	users := []domain.User{}
	err := s.db.SelectContext(ctx, &users,
		`SELECT u.* FROM users u
		 JOIN follows f ON f.follower_id = u.id
		 WHERE f.followed_id = ? ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, storeError("follower list", err)
	}
	return users, nil
}
