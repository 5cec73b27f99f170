// ABOUTME: User service provides cache-aside reads and write-invalidate updates
// ABOUTME: The cache is best-effort; the store is always the system of record

package users

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// allowedFilterFields is the set of predicates ListByFilter accepts.
var allowedFilterFields = map[string]bool{
	"username":  true,
	"email":     true,
	"is_staff":  true,
	"is_active": true,
}

// Service provides read-through and write-invalidate caching over the user store.
// It holds no mutable state beyond a registry of populated list keys, and is
// safe for concurrent use.
type Service struct {
	store    interfaces.UserStore
	profiles interfaces.ProfileStore
	deps     interfaces.Dependencies

	// listKeys tracks list cache keys this process has populated so write
	// paths can invalidate filtered lists without a prefix scan.
	mu       sync.Mutex
	listKeys map[string]struct{}
}

// NewService creates a new user service instance
func NewService(store interfaces.UserStore, profiles interfaces.ProfileStore, deps interfaces.Dependencies) *Service {
	return &Service{
		store:    store,
		profiles: profiles,
		deps:     deps,
		listKeys: make(map[string]struct{}),
	}
}

// GetByID returns the user with the given id, or nil when absent.
// Reads go through the cache; a miss falls back to the store and populates
// the cache. Negative results are never cached so a later creation of the
// same id is visible immediately.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	key := userKey(id)

	var cached domain.User
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	s.cacheValue(ctx, key, user)
	return user, nil
}

// GetWithProfile returns the user bundled with their profile, cached under
// its own key so the combined read has the same staleness bound.
func (s *Service) GetWithProfile(ctx context.Context, id int64) (*domain.UserWithProfile, error) {
	key := userProfileKey(id)

	var cached domain.UserWithProfile
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	profile, err := s.profiles.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &domain.UserWithProfile{User: *user, Profile: profile}
	s.cacheValue(ctx, key, result)
	return result, nil
}

// GetAll returns every user. The full list is cached only when it is small
// enough to bound cache memory; oversized results are recomputed each call.
func (s *Service) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.loadList(ctx, allUsersKey, func() ([]domain.User, error) {
		return s.store.FindAll(ctx)
	})
}

// ListByFilter returns users matching the filter predicate. Equal filter maps
// share one cache entry regardless of key order. Unsupported filter fields
// surface as an InvalidQueryError, distinguishable from a legitimately empty
// result.
func (s *Service) ListByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
	for field := range filters {
		if !allowedFilterFields[field] {
			return nil, &coreerrors.InvalidQueryError{Field: field}
		}
	}

	return s.loadList(ctx, filterKey(filters), func() ([]domain.User, error) {
		return s.store.FindByFilter(ctx, filters)
	})
}

// Create inserts a new user. A raw password in fields is replaced with a
// bcrypt hash before it reaches the store; the plaintext is never persisted
// or cached. No cache interaction is needed since the new id is not yet
// cached anywhere, but list caches may now be stale so they are dropped.
func (s *Service) Create(ctx context.Context, fields map[string]interface{}) (*domain.User, error) {
	if err := validateNewUser(fields); err != nil {
		return nil, err
	}

	fields, err := hashSecret(fields)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Insert(ctx, fields)
	if err != nil {
		return nil, err
	}

	// Every user gets a default profile at creation.
	if s.profiles != nil {
		if _, err := s.profiles.Insert(ctx, &domain.Profile{UserID: user.ID, Gender: domain.GenderMale}); err != nil && s.deps.Logger != nil {
			s.deps.Logger.Error("Failed to create default profile", map[string]interface{}{
				"user_id": user.ID,
				"error":   err.Error(),
			})
		}
	}

	s.invalidateLists(ctx)
	return user, nil
}

// Update applies field changes to a user and invalidates every cache entry
// the write could have made stale. Invalidation runs unconditionally after a
// confirmed store success, before any return.
func (s *Service) Update(ctx context.Context, id int64, changes map[string]interface{}) (*domain.User, error) {
	changes, err := hashSecret(changes)
	if err != nil {
		return nil, err
	}

	user, err := s.store.UpdateFields(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &coreerrors.NotFoundError{Resource: "user", ID: strconv.FormatInt(id, 10)}
	}

	s.InvalidateUser(ctx, id)
	return user, nil
}

// Delete removes a user from the store. Cache invalidation runs before the
// success return on every path; a stale cached user must never appear to
// exist after deletion. Returns false without error when the id is absent.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	s.InvalidateUser(ctx, id)
	return deleted, nil
}

// InvalidateUser drops the cache entries for one user plus every list cache.
// Any single-user mutation can change membership or ordering of any list.
func (s *Service) InvalidateUser(ctx context.Context, id int64) {
	s.deleteKey(ctx, userKey(id))
	s.deleteKey(ctx, userProfileKey(id))
	s.invalidateLists(ctx)
}

// loadList is the shared read-through path for list caches.
func (s *Service) loadList(ctx context.Context, key string, load func() ([]domain.User, error)) ([]domain.User, error) {
	var cached []domain.User
	if s.getCached(ctx, key, &cached) {
		return cached, nil
	}

	users, err := load()
	if err != nil {
		return nil, err
	}

	if len(users) < maxCachedListSize {
		s.cacheValue(ctx, key, users)
		s.rememberListKey(key)
	}

	return users, nil
}

// getCached reads and decodes a snapshot. Cache failures degrade to a miss;
// the operation never fails because the cache is down.
func (s *Service) getCached(ctx context.Context, key string, out interface{}) bool {
	if s.deps.Cache == nil {
		return false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Discarding undecodable cache entry", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		_ = s.deps.Cache.Delete(ctx, key)
		return false
	}

	return true
}

// cacheValue encodes and stores a snapshot with the standard TTL, swallowing
// cache errors.
func (s *Service) cacheValue(ctx context.Context, key string, value interface{}) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, cacheTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Cache populate failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *Service) deleteKey(ctx context.Context, key string) {
	if s.deps.Cache == nil {
		return
	}
	_ = s.deps.Cache.Delete(ctx, key)
}

func (s *Service) rememberListKey(key string) {
	s.mu.Lock()
	s.listKeys[key] = struct{}{}
	s.mu.Unlock()
}

// invalidateLists drops the all-users cache and every filtered list this
// process has populated.
func (s *Service) invalidateLists(ctx context.Context) {
	s.deleteKey(ctx, allUsersKey)

	s.mu.Lock()
	keys := make([]string, 0, len(s.listKeys))
	for key := range s.listKeys {
		keys = append(keys, key)
	}
	s.listKeys = make(map[string]struct{})
	s.mu.Unlock()

	for _, key := range keys {
		s.deleteKey(ctx, key)
	}
}

// hashSecret replaces a raw password field with a derived bcrypt hash. The
// input map is copied so the caller's map is never mutated.
func hashSecret(fields map[string]interface{}) (map[string]interface{}, error) {
	raw, ok := fields["password"]
	if !ok {
		return fields, nil
	}

	password, ok := raw.(string)
	if !ok || password == "" {
		return nil, &coreerrors.ValidationError{Field: "password", Message: "must be a non-empty string"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	copied := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	delete(copied, "password")
	copied["password_hash"] = string(hash)

	return copied, nil
}

// validateNewUser enforces the required registration fields.
func validateNewUser(fields map[string]interface{}) error {
	username, _ := fields["username"].(string)
	if username == "" {
		return &coreerrors.ValidationError{Field: "username", Message: "username must be set"}
	}

	email, _ := fields["email"].(string)
	if email == "" {
		return &coreerrors.ValidationError{Field: "email", Message: "email must be set"}
	}
	if !strings.Contains(email, "@") {
		return &coreerrors.ValidationError{Field: "email", Message: "invalid email address"}
	}

	return nil
}
