package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"
)

func newTestService(store *fakeUserStore, cache *fakeCache) *Service {
	return NewService(store, &fakeProfileStore{}, interfaces.Dependencies{Cache: cache})
}

func storedUser(id int64, username string) *domain.User {
	return &domain.User{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
		IsActive: true,
	}
}

func TestGetByID_ReadThroughPopulatesCache(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return storedUser(id, "alice"), nil
		},
	}
	service := newTestService(store, cache)

	user, err := service.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("GetByID returned wrong user: %+v", user)
	}

	ttl, ok := cache.entryTTL("user:42")
	if !ok {
		t.Error("first read did not populate cache at user:42")
	}
	if ttl != 300*time.Second {
		t.Errorf("cache entry TTL = %v, want 300s", ttl)
	}

	// Second read within TTL must be served from cache.
	user, err = service.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("second GetByID returned error: %v", err)
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("second GetByID returned wrong user: %+v", user)
	}
	if store.findByIDCalls != 1 {
		t.Errorf("store was queried %d times, want 1", store.findByIDCalls)
	}
}

func TestGetByID_NegativeResultsNotCached(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, nil
		},
	}
	service := newTestService(store, cache)

	user, err := service.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user != nil {
		t.Errorf("GetByID returned %+v for missing id, want nil", user)
	}
	if cache.has("user:99") {
		t.Error("negative result was cached at user:99")
	}
	if cache.sets != 0 {
		t.Errorf("cache received %d sets for a missing user, want 0", cache.sets)
	}
}

func TestGetByID_CacheFailureDegradesToStore(t *testing.T) {
	cache := newFakeCache()
	cache.failing = true
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return storedUser(id, "bob"), nil
		},
	}
	service := newTestService(store, cache)

	user, err := service.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID failed when cache was down: %v", err)
	}
	if user == nil || user.Username != "bob" {
		t.Fatalf("GetByID returned wrong user with cache down: %+v", user)
	}
}

func TestGetByID_NilCacheFallsThrough(t *testing.T) {
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return storedUser(id, "carol"), nil
		},
	}
	service := NewService(store, &fakeProfileStore{}, interfaces.Dependencies{})

	user, err := service.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user == nil {
		t.Fatal("GetByID returned nil user")
	}
}

func TestGetByID_StoreErrorPropagates(t *testing.T) {
	storeErr := &coreerrors.StoreUnavailableError{Op: "user lookup", Err: errors.New("connection refused")}
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, storeErr
		},
	}
	service := newTestService(store, newFakeCache())

	_, err := service.GetByID(context.Background(), 1)
	if !coreerrors.IsStoreUnavailable(err) {
		t.Errorf("GetByID error = %v, want StoreUnavailableError", err)
	}
}

func TestGetAll_CachesSmallResults(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		findAllFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{*storedUser(1, "a"), *storedUser(2, "b")}, nil
		},
	}
	service := newTestService(store, cache)

	users, err := service.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("GetAll returned %d users, want 2", len(users))
	}
	if !cache.has("users:all") {
		t.Error("GetAll did not populate users:all")
	}

	_, err = service.GetAll(context.Background())
	if err != nil {
		t.Fatalf("second GetAll returned error: %v", err)
	}
	if store.findAllCalls != 1 {
		t.Errorf("store was queried %d times, want 1", store.findAllCalls)
	}
}

func TestListByFilter_SizeCeilingSkipsCache(t *testing.T) {
	big := make([]domain.User, maxCachedListSize)
	for i := range big {
		big[i] = *storedUser(int64(i+1), "u")
	}

	cache := newFakeCache()
	store := &fakeUserStore{
		findByFilterFunc: func(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
			return big, nil
		},
	}
	service := newTestService(store, cache)

	filters := map[string]interface{}{"is_active": true}
	users, err := service.ListByFilter(context.Background(), filters)
	if err != nil {
		t.Fatalf("ListByFilter returned error: %v", err)
	}
	if len(users) != maxCachedListSize {
		t.Fatalf("ListByFilter returned %d users, want %d", len(users), maxCachedListSize)
	}
	if cache.sets != 0 {
		t.Errorf("oversized result was cached (%d sets), want 0", cache.sets)
	}

	// Every call recomputes from the store.
	if _, err := service.ListByFilter(context.Background(), filters); err != nil {
		t.Fatalf("second ListByFilter returned error: %v", err)
	}
	if store.findByFilterCalls != 2 {
		t.Errorf("store was queried %d times, want 2", store.findByFilterCalls)
	}
}

func TestListByFilter_CanonicalKeysShareEntry(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		findByFilterFunc: func(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
			return []domain.User{*storedUser(1, "a")}, nil
		},
	}
	service := newTestService(store, cache)

	first := map[string]interface{}{"username": "a", "is_active": true}
	second := map[string]interface{}{"is_active": true, "username": "a"}

	if _, err := service.ListByFilter(context.Background(), first); err != nil {
		t.Fatalf("first ListByFilter returned error: %v", err)
	}
	if _, err := service.ListByFilter(context.Background(), second); err != nil {
		t.Fatalf("second ListByFilter returned error: %v", err)
	}

	if store.findByFilterCalls != 1 {
		t.Errorf("equal filters fragmented the cache: %d store calls, want 1", store.findByFilterCalls)
	}
	if len(cache.entries) != 1 {
		t.Errorf("equal filters produced %d cache entries, want 1", len(cache.entries))
	}
}

func TestListByFilter_UnsupportedFieldReturnsInvalidQuery(t *testing.T) {
	service := newTestService(&fakeUserStore{}, newFakeCache())

	_, err := service.ListByFilter(context.Background(), map[string]interface{}{"shoe_size": 42})
	if !coreerrors.IsInvalidQuery(err) {
		t.Errorf("ListByFilter error = %v, want InvalidQueryError", err)
	}
}

func TestUpdate_InvalidatesCachedUser(t *testing.T) {
	current := storedUser(5, "dave")
	cache := newFakeCache()
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			copy := *current
			return &copy, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			if name, ok := fields["username"].(string); ok {
				current.Username = name
			}
			copy := *current
			return &copy, nil
		},
	}
	service := newTestService(store, cache)

	// Prime the cache with the pre-update value.
	if _, err := service.GetByID(context.Background(), 5); err != nil {
		t.Fatalf("priming GetByID returned error: %v", err)
	}
	if !cache.has("user:5") {
		t.Fatal("priming read did not cache user:5")
	}

	updated, err := service.Update(context.Background(), 5, map[string]interface{}{"username": "X"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Username != "X" {
		t.Errorf("Update returned username %q, want X", updated.Username)
	}
	if cache.has("user:5") {
		t.Error("Update left a stale user:5 cache entry")
	}
	if cache.has("users:all") {
		t.Error("Update left a stale users:all cache entry")
	}

	// The next read must miss and refetch the post-update value.
	fresh, err := service.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("post-update GetByID returned error: %v", err)
	}
	if fresh.Username != "X" {
		t.Errorf("post-update read returned %q, want X", fresh.Username)
	}
	if store.findByIDCalls != 2 {
		t.Errorf("post-update read hit the store %d times, want 2", store.findByIDCalls)
	}
}

func TestUpdate_InvalidatesFilteredLists(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		findByFilterFunc: func(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
			return []domain.User{*storedUser(1, "a")}, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			return storedUser(id, "a"), nil
		},
	}
	service := newTestService(store, cache)

	filters := map[string]interface{}{"is_staff": false}
	if _, err := service.ListByFilter(context.Background(), filters); err != nil {
		t.Fatalf("ListByFilter returned error: %v", err)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("filtered list was not cached")
	}

	if _, err := service.Update(context.Background(), 1, map[string]interface{}{"is_staff": true}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Errorf("filtered list cache survived a user write: %d entries", len(cache.entries))
	}
}

func TestUpdate_MissingUserReturnsNotFound(t *testing.T) {
	store := &fakeUserStore{
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			return nil, nil
		},
	}
	service := newTestService(store, newFakeCache())

	_, err := service.Update(context.Background(), 404, map[string]interface{}{"username": "x"})
	if !coreerrors.IsNotFound(err) {
		t.Errorf("Update error = %v, want NotFoundError", err)
	}
}

func TestDelete_InvalidatesBeforeReturning(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return storedUser(id, "gone"), nil
		},
		deleteFunc: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
	}
	service := newTestService(store, cache)

	if _, err := service.GetByID(context.Background(), 8); err != nil {
		t.Fatalf("priming GetByID returned error: %v", err)
	}
	if !cache.has("user:8") {
		t.Fatal("priming read did not cache user:8")
	}

	deleted, err := service.Delete(context.Background(), 8)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !deleted {
		t.Error("Delete returned false for existing user")
	}
	if cache.has("user:8") {
		t.Error("Delete returned success with a stale user:8 cache entry")
	}

	// A deleted user must not be resurrected by the cache.
	store.findByIDFunc = func(ctx context.Context, id int64) (*domain.User, error) {
		return nil, nil
	}
	user, err := service.GetByID(context.Background(), 8)
	if err != nil {
		t.Fatalf("post-delete GetByID returned error: %v", err)
	}
	if user != nil {
		t.Errorf("post-delete read returned %+v, want nil", user)
	}
}

func TestDelete_MissingUserStillInvalidates(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		deleteFunc: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	service := newTestService(store, cache)

	deleted, err := service.Delete(context.Background(), 12)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted {
		t.Error("Delete returned true for missing user")
	}
	// Invalidation of a non-existent key is a harmless no-op.
	if cache.deletes == 0 {
		t.Error("Delete skipped invalidation on the missing-id path")
	}
}

func TestUpdate_RawSecretNeverReachesStoreOrCache(t *testing.T) {
	const plaintext = "plaintext"
	var persisted map[string]interface{}

	cache := newFakeCache()
	store := &fakeUserStore{
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			persisted = fields
			user := storedUser(id, "eve")
			if hash, ok := fields["password_hash"].(string); ok {
				user.PasswordHash = hash
			}
			return user, nil
		},
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return storedUser(id, "eve"), nil
		},
	}
	service := newTestService(store, cache)

	if _, err := service.Update(context.Background(), 2, map[string]interface{}{"password": plaintext}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if _, ok := persisted["password"]; ok {
		t.Error("raw password field reached the store")
	}
	hash, ok := persisted["password_hash"].(string)
	if !ok || hash == "" {
		t.Fatal("store did not receive a derived password hash")
	}
	if strings.Contains(hash, plaintext) {
		t.Error("derived hash contains the plaintext password")
	}

	// Repopulate the cache and check the snapshot bytes.
	if _, err := service.GetByID(context.Background(), 2); err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	entry, ok := cache.entries["user:2"]
	if !ok {
		t.Fatal("user:2 was not cached")
	}
	if strings.Contains(string(entry.value), plaintext) {
		t.Error("cached snapshot contains the plaintext password")
	}
}

func TestCreate_HashesPasswordAndValidates(t *testing.T) {
	var persisted map[string]interface{}
	store := &fakeUserStore{
		insertFunc: func(ctx context.Context, fields map[string]interface{}) (*domain.User, error) {
			persisted = fields
			return storedUser(1, fields["username"].(string)), nil
		},
	}
	service := newTestService(store, newFakeCache())

	_, err := service.Create(context.Background(), map[string]interface{}{
		"username": "frank",
		"email":    "frank@example.com",
		"password": "s3cret",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, ok := persisted["password"]; ok {
		t.Error("raw password field reached the store on create")
	}
	if _, ok := persisted["password_hash"]; !ok {
		t.Error("create did not derive a password hash")
	}

	cases := []map[string]interface{}{
		{"email": "a@b.c", "password": "x"},
		{"username": "u", "password": "x"},
		{"username": "u", "email": "not-an-email", "password": "x"},
	}
	for _, fields := range cases {
		if _, err := service.Create(context.Background(), fields); !coreerrors.IsValidation(err) {
			t.Errorf("Create(%v) error = %v, want ValidationError", fields, err)
		}
	}
}

func TestGetWithProfile_CachesCombinedRead(t *testing.T) {
	cache := newFakeCache()
	store := &fakeUserStore{
		findByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return storedUser(id, "grace"), nil
		},
	}
	profiles := &fakeProfileStore{
		findByUserIDFunc: func(ctx context.Context, userID int64) (*domain.Profile, error) {
			return &domain.Profile{UserID: userID, Gender: domain.GenderFemale}, nil
		},
	}
	service := NewService(store, profiles, interfaces.Dependencies{Cache: cache})

	combined, err := service.GetWithProfile(context.Background(), 6)
	if err != nil {
		t.Fatalf("GetWithProfile returned error: %v", err)
	}
	if combined == nil || combined.Profile == nil {
		t.Fatalf("GetWithProfile returned incomplete result: %+v", combined)
	}
	if !cache.has("user:6:with_profile") {
		t.Error("combined read did not populate user:6:with_profile")
	}

	if _, err := service.GetWithProfile(context.Background(), 6); err != nil {
		t.Fatalf("second GetWithProfile returned error: %v", err)
	}
	if store.findByIDCalls != 1 {
		t.Errorf("store was queried %d times, want 1", store.findByIDCalls)
	}
}
