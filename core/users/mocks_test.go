package users

import (
	"context"
	"errors"
	"sync"
	"time"

	"inkwell-api/core/domain"
)

// fakeCache is an in-memory Cache double that records call counts.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]fakeEntry
	gets    int
	sets    int
	deletes int
	failing bool
}

type fakeEntry struct {
	value []byte
	ttl   time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]fakeEntry)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failing {
		return nil, errors.New("cache unavailable")
	}
	entry, ok := c.entries[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return entry.value, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.failing {
		return errors.New("cache unavailable")
	}
	c.entries[key] = fakeEntry{value: value, ttl: ttl}
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func (c *fakeCache) entryTTL(key string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry.ttl, ok
}

// fakeUserStore is a UserStore double with per-method hooks and call counters.
type fakeUserStore struct {
	findByIDFunc     func(ctx context.Context, id int64) (*domain.User, error)
	findAllFunc      func(ctx context.Context) ([]domain.User, error)
	findByFilterFunc func(ctx context.Context, filters map[string]interface{}) ([]domain.User, error)
	insertFunc       func(ctx context.Context, fields map[string]interface{}) (*domain.User, error)
	updateFunc       func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error)
	deleteFunc       func(ctx context.Context, id int64) (bool, error)

	findByIDCalls     int
	findAllCalls      int
	findByFilterCalls int
}

func (s *fakeUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	s.findByIDCalls++
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
	s.findAllCalls++
	if s.findAllFunc != nil {
		return s.findAllFunc(ctx)
	}
	return nil, nil
}

func (s *fakeUserStore) FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
	s.findByFilterCalls++
	if s.findByFilterFunc != nil {
		return s.findByFilterFunc(ctx, filters)
	}
	return nil, nil
}

func (s *fakeUserStore) Insert(ctx context.Context, fields map[string]interface{}) (*domain.User, error) {
	if s.insertFunc != nil {
		return s.insertFunc(ctx, fields)
	}
	return nil, nil
}

func (s *fakeUserStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (s *fakeUserStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return false, nil
}

// fakeProfileStore is a ProfileStore double.
type fakeProfileStore struct {
	findByUserIDFunc func(ctx context.Context, userID int64) (*domain.Profile, error)
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
	return nil, nil
}

func (s *fakeProfileStore) AdjustFollowerCount(ctx context.Context, userID int64, delta int) error {
	return nil
}
