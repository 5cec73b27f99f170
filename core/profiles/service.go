// ABOUTME: Profile service handles profile reads, updates, and follow relationships
// ABOUTME: Profile reads ride the user cache path; profile writes invalidate it

package profiles

import (
	"context"
	"strconv"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"
	"inkwell-api/core/users"
)

// Service handles profile and follow operations.
type Service struct {
	users    *users.Service
	profiles interfaces.ProfileStore
	follows  interfaces.FollowStore
	deps     interfaces.Dependencies
}

// NewService creates a new profile service instance
func NewService(userSvc *users.Service, profiles interfaces.ProfileStore, follows interfaces.FollowStore, deps interfaces.Dependencies) *Service {
	return &Service{
		users:    userSvc,
		profiles: profiles,
		follows:  follows,
		deps:     deps,
	}
}

// GetProfile returns the user together with their profile.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.UserWithProfile, error) {
	result, err := s.users.GetWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, &coreerrors.NotFoundError{Resource: "profile", ID: strconv.FormatInt(userID, 10)}
	}
	return result, nil
}

// UpdateProfile applies changes to a user's profile. Only the owner may write.
func (s *Service) UpdateProfile(ctx context.Context, userID, actorID int64, changes map[string]interface{}) (*domain.Profile, error) {
	if userID != actorID {
		return nil, coreerrors.ErrForbidden
	}

	if gender, ok := changes["gender"].(string); ok {
		if gender != domain.GenderMale && gender != domain.GenderFemale {
			return nil, &coreerrors.ValidationError{Field: "gender", Message: "unknown gender value"}
		}
	}

	profile, err := s.profiles.UpdateFields(ctx, userID, changes)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &coreerrors.NotFoundError{Resource: "profile", ID: strconv.FormatInt(userID, 10)}
	}

	// The combined user+profile snapshot is now stale.
	s.users.InvalidateUser(ctx, userID)
	return profile, nil
}

// Follow records that follower follows followed. Following yourself is
// rejected; following someone twice reports false without error.
func (s *Service) Follow(ctx context.Context, followerID, followedID int64) (bool, error) {
	if followerID == followedID {
		return false, &coreerrors.ValidationError{Field: "followed_id", Message: "cannot follow yourself"}
	}

	target, err := s.users.GetByID(ctx, followedID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, &coreerrors.NotFoundError{Resource: "user", ID: strconv.FormatInt(followedID, 10)}
	}

	created, err := s.follows.Insert(ctx, followerID, followedID)
	if err != nil {
		return false, err
	}
	if !created {
		return false, nil
	}

	if err := s.profiles.AdjustFollowerCount(ctx, followedID, 1); err != nil {
		return true, err
	}
	s.users.InvalidateUser(ctx, followedID)
	return true, nil
}

// Unfollow removes a follow relationship. Unfollowing someone you do not
// follow reports false without error.
func (s *Service) Unfollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	removed, err := s.follows.Delete(ctx, followerID, followedID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	if err := s.profiles.AdjustFollowerCount(ctx, followedID, -1); err != nil {
		return true, err
	}
	s.users.InvalidateUser(ctx, followedID)
	return true, nil
}

// Followers returns the users following the given user.
func (s *Service) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	return s.follows.Followers(ctx, userID)
}
