package profiles

import (
	"context"

	"inkwell-api/core/domain"
)

// fakeUserStore is a minimal UserStore double; only lookup by id matters here.
type fakeUserStore struct {
	findByIDFunc func(ctx context.Context, id int64) (*domain.User, error)
}

func (s *fakeUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if s.findByIDFunc != nil {
		return s.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) Insert(ctx context.Context, fields map[string]interface{}) (*domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

// fakeProfileStore is a ProfileStore double that tracks follower count deltas.
type fakeProfileStore struct {
	findByUserIDFunc func(ctx context.Context, userID int64) (*domain.Profile, error)
	updateFunc       func(ctx context.Context, userID int64, fields map[string]interface{}) (*domain.Profile, error)
	adjustments      map[int64]int
}

func (s *fakeProfileStore) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	if s.findByUserIDFunc != nil {
		return s.findByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (s *fakeProfileStore) Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	return profile, nil
}

func (s *fakeProfileStore) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) (*domain.Profile, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, userID, fields)
	}
	return nil, nil
}

func (s *fakeProfileStore) AdjustFollowerCount(ctx context.Context, userID int64, delta int) error {
	if s.adjustments == nil {
		s.adjustments = make(map[int64]int)
	}
	s.adjustments[userID] += delta
	return nil
}

// fakeFollowStore is a FollowStore double backed by a pair set.
type fakeFollowStore struct {
	pairs     map[[2]int64]bool
	followers map[int64][]domain.User
}

func newFakeFollowStore() *fakeFollowStore {
	return &fakeFollowStore{
		pairs:     make(map[[2]int64]bool),
		followers: make(map[int64][]domain.User),
	}
}

func (s *fakeFollowStore) Insert(ctx context.Context, followerID, followedID int64) (bool, error) {
	key := [2]int64{followerID, followedID}
	if s.pairs[key] {
		return false, nil
	}
	s.pairs[key] = true
	return true, nil
}

func (s *fakeFollowStore) Delete(ctx context.Context, followerID, followedID int64) (bool, error) {
	key := [2]int64{followerID, followedID}
	if !s.pairs[key] {
		return false, nil
	}
	delete(s.pairs, key)
	return true, nil
}

func (s *fakeFollowStore) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	return s.followers[userID], nil
}
