// ABOUTME: SQLite implementation of the profile store
// ABOUTME: Profiles are keyed by user id; one profile per user

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell-api/core/domain"

	"github.com/jmoiron/sqlx"
)

// profileColumns maps update field names to their columns.
var profileColumns = map[string]string{
	"avatar":       "avatar",
	"phone_number": "phone_number",
	"gender":       "gender",
}

// ProfileStore persists profiles in SQLite
type ProfileStore struct {
	db *sqlx.DB
}

// FindByUserID retrieves the profile attached to a user
func (s *ProfileStore) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var profile domain.Profile
	err := s.db.GetContext(ctx, &profile, "SELECT * FROM profiles WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("profile lookup", err)
	}
	return &profile, nil
}

// Insert creates a profile for a user
func (s *ProfileStore) Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	now := time.Now().UTC()
	avatar := profile.Avatar
	if avatar == "" {
		avatar = "/profile_default.png"
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, avatar, phone_number, gender, follower_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, ?, ?)`,
		profile.UserID, avatar, profile.PhoneNumber, profile.Gender, now, now,
	)
	if err != nil {
		return nil, storeError("profile insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeError("profile insert", err)
	}

	stored := *profile
	stored.ID = id
	stored.Avatar = avatar
	stored.CreatedAt = now
	stored.UpdatedAt = now
	return &stored, nil
}

// UpdateFields applies field changes to a user's profile. Returns nil, nil
// when the user has no profile.
func (s *ProfileStore) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) (*domain.Profile, error) {
	set, args, err := buildSet(profileColumns, fields)
	if err != nil {
		return nil, err
	}
	if set == "" {
		return s.FindByUserID(ctx, userID)
	}

	args = append(args, time.Now().UTC(), userID)
	result, err := s.db.ExecContext(ctx, "UPDATE profiles SET "+set+", updated_at = ? WHERE user_id = ?", args...)
	if err != nil {
		return nil, storeError("profile update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("profile update", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return s.FindByUserID(ctx, userID)
}

// AdjustFollowerCount adds delta to the stored follower count
func (s *ProfileStore) AdjustFollowerCount(ctx context.Context, userID int64, delta int) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET follower_count = MAX(follower_count + ?, 0), updated_at = ? WHERE user_id = ?",
		delta, time.Now().UTC(), userID,
	)
	if err != nil {
		return storeError("follower count update", err)
	}
	return nil
}
