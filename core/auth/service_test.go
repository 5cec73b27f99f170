package auth

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"
	"inkwell-api/core/users"

	"golang.org/x/crypto/bcrypt"
)

func testConfig() Config {
	return Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		ResetURL:  "http://localhost/reset",
	}
}

func newTestService(store *fakeUserStore, resets *fakeResetStore, queue *fakeQueue) *Service {
	deps := interfaces.Dependencies{}
	userSvc := users.NewService(store, nil, deps)
	return NewService(store, userSvc, resets, queue, testConfig(), deps)
}

func activeUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &domain.User{
		ID:           7,
		Username:     "casey",
		Email:        "casey@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestLogin_ByEmail(t *testing.T) {
	user := activeUser("hunter2hunter2")
	store := &fakeUserStore{
		findByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "casey@example.com" {
				t.Errorf("looked up wrong email %q", email)
			}
			return user, nil
		},
		findByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			t.Error("username lookup should not run for an email login")
			return nil, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newTestService(store, newFakeResetStore(), &fakeQueue{})

	token, got, err := svc.Login(context.Background(), "casey@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if got.ID != user.ID {
		t.Errorf("got user %d, want %d", got.ID, user.ID)
	}
}

func TestLogin_ByUsername(t *testing.T) {
	user := activeUser("hunter2hunter2")
	store := &fakeUserStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			if username != "casey" {
				t.Errorf("looked up wrong username %q", username)
			}
			return user, nil
		},
		findByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			t.Error("email lookup should not run for a username login")
			return nil, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newTestService(store, newFakeResetStore(), &fakeQueue{})

	if _, _, err := svc.Login(context.Background(), "casey", "hunter2hunter2"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	user := activeUser("hunter2hunter2")
	store := &fakeUserStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newTestService(store, newFakeResetStore(), &fakeQueue{})

	_, _, err := svc.Login(context.Background(), "casey", "wrong")
	if !stderrors.Is(err, coreerrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	user := activeUser("hunter2hunter2")
	user.IsActive = false
	store := &fakeUserStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newTestService(store, newFakeResetStore(), &fakeQueue{})

	_, _, err := svc.Login(context.Background(), "casey", "hunter2hunter2")
	if !stderrors.Is(err, coreerrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestService(&fakeUserStore{}, newFakeResetStore(), &fakeQueue{})

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	if !stderrors.Is(err, coreerrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	user := activeUser("hunter2hunter2")
	store := &fakeUserStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newTestService(store, newFakeResetStore(), &fakeQueue{})

	token, _, err := svc.Login(context.Background(), "casey", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims user id = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Username != user.Username {
		t.Errorf("claims username = %q, want %q", claims.Username, user.Username)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	user := activeUser("hunter2hunter2")
	store := &fakeUserStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newTestService(store, newFakeResetStore(), &fakeQueue{})

	token, _, err := svc.Login(context.Background(), "casey", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	other := newTestService(store, newFakeResetStore(), &fakeQueue{})
	other.cfg.JWTSecret = "different-secret"

	if _, err := other.VerifyToken(token); !stderrors.Is(err, coreerrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestService(&fakeUserStore{}, newFakeResetStore(), &fakeQueue{})

	if _, err := svc.VerifyToken("not-a-token"); !stderrors.Is(err, coreerrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{
		findByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
	}
	svc := newTestService(store, newFakeResetStore(), &fakeQueue{})

	_, err := svc.Register(context.Background(), "casey", "casey@example.com", "hunter2hunter2")
	if !coreerrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRegister_HashesPasswordAndQueuesWelcome(t *testing.T) {
	var inserted map[string]interface{}
	store := &fakeUserStore{
		insertFunc: func(ctx context.Context, fields map[string]interface{}) (*domain.User, error) {
			inserted = fields
			return &domain.User{ID: 3, Username: "casey", Email: "casey@example.com"}, nil
		},
	}
	queue := &fakeQueue{}
	svc := newTestService(store, newFakeResetStore(), queue)

	user, err := svc.Register(context.Background(), "casey", "casey@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 3 {
		t.Errorf("user id = %d, want 3", user.ID)
	}

	if _, ok := inserted["password"]; ok {
		t.Error("plaintext password reached the store")
	}
	hash, ok := inserted["password_hash"].(string)
	if !ok {
		t.Fatal("expected password_hash field in insert")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2hunter2")) != nil {
		t.Error("stored hash does not match the password")
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued email, got %d", len(queue.jobs))
	}
	if queue.jobs[0].To != "casey@example.com" {
		t.Errorf("welcome email sent to %q", queue.jobs[0].To)
	}
}

func TestRequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	queue := &fakeQueue{}
	resets := newFakeResetStore()
	svc := newTestService(&fakeUserStore{}, resets, queue)

	if err := svc.RequestPasswordReset(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("expected nil error for unknown email, got %v", err)
	}
	if len(queue.jobs) != 0 {
		t.Error("no email should be queued for an unknown address")
	}
	if len(resets.tokens) != 0 {
		t.Error("no token should be stored for an unknown address")
	}
}

func TestPasswordReset_FullFlow(t *testing.T) {
	user := activeUser("oldpassword123")
	var updated map[string]interface{}
	store := &fakeUserStore{
		findByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
			updated = fields
			return user, nil
		},
	}
	queue := &fakeQueue{}
	resets := newFakeResetStore()
	svc := newTestService(store, resets, queue)

	if err := svc.RequestPasswordReset(context.Background(), user.Email); err != nil {
		t.Fatalf("RequestPasswordReset returned error: %v", err)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued email, got %d", len(queue.jobs))
	}

	// Pull the raw token out of the emailed link.
	body := queue.jobs[0].Body
	idx := strings.Index(body, "token=")
	if idx < 0 {
		t.Fatalf("reset email has no token: %q", body)
	}
	raw := body[idx+len("token="):]

	// The stored form must not be the raw token.
	if _, ok := resets.tokens[raw]; ok {
		t.Error("reset token stored in raw form")
	}

	if err := svc.ConfirmPasswordReset(context.Background(), raw, "newpassword123"); err != nil {
		t.Fatalf("ConfirmPasswordReset returned error: %v", err)
	}

	hash, ok := updated["password_hash"].(string)
	if !ok {
		t.Fatal("expected password_hash in update fields")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword123")) != nil {
		t.Error("updated hash does not match the new password")
	}

	// The token is single use.
	err := svc.ConfirmPasswordReset(context.Background(), raw, "anotherpassword1")
	if !stderrors.Is(err, coreerrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized on token reuse, got %v", err)
	}
}

func TestConfirmPasswordReset_ExpiredToken(t *testing.T) {
	resets := newFakeResetStore()
	resets.tokens[hashToken("expired-token")] = &domain.ResetToken{
		UserID:    7,
		TokenHash: hashToken("expired-token"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := newTestService(&fakeUserStore{}, resets, &fakeQueue{})

	err := svc.ConfirmPasswordReset(context.Background(), "expired-token", "newpassword123")
	if !stderrors.Is(err, coreerrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestConfirmPasswordReset_EmptyPassword(t *testing.T) {
	svc := newTestService(&fakeUserStore{}, newFakeResetStore(), &fakeQueue{})

	err := svc.ConfirmPasswordReset(context.Background(), "token", "")
	if !coreerrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
