// ABOUTME: Auth service handles registration, login, and the password reset flow
// ABOUTME: Login accepts email or username; tokens are JWTs signed with HS256

package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"
	"inkwell-api/core/users"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL bounds how long a password reset link stays valid.
const resetTokenTTL = 1 * time.Hour

// Config holds token signing settings.
type Config struct {
	// JWTSecret signs and verifies access tokens
	JWTSecret string

	// TokenTTL is the access token lifetime
	TokenTTL time.Duration

	// ResetURL is the base URL embedded in password reset emails
	ResetURL string
}

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service handles authentication operations.
type Service struct {
	store      interfaces.UserStore
	userSvc    *users.Service
	resetStore interfaces.ResetTokenStore
	tasks      interfaces.TaskQueue
	cfg        Config
	deps       interfaces.Dependencies
}

// NewService creates a new auth service instance
func NewService(store interfaces.UserStore, userSvc *users.Service, resetStore interfaces.ResetTokenStore, tasks interfaces.TaskQueue, cfg Config, deps interfaces.Dependencies) *Service {
	return &Service{
		store:      store,
		userSvc:    userSvc,
		resetStore: resetStore,
		tasks:      tasks,
		cfg:        cfg,
		deps:       deps,
	}
}

// Register creates a new account and queues a welcome email. Credential
// hashing and validation happen in the user service.
func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if password == "" {
		return nil, &coreerrors.ValidationError{Field: "password", Message: "password must be set"}
	}

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &coreerrors.ValidationError{Field: "email", Message: "email already registered"}
	}

	user, err := s.userSvc.Create(ctx, map[string]interface{}{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	s.enqueueEmail(interfaces.EmailJob{
		To:      user.Email,
		Subject: "Welcome to Inkwell",
		Body:    fmt.Sprintf("Hi %s, your account is ready.", user.Username),
	})

	return user, nil
}

// Login authenticates by email or username and returns a signed token. A
// value containing "@" is treated as an email address, anything else as a
// username.
func (s *Service) Login(ctx context.Context, login, password string) (string, *domain.User, error) {
	if login == "" || password == "" {
		return "", nil, coreerrors.ErrUnauthorized
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = s.store.FindByEmail(ctx, login)
	} else {
		user, err = s.store.FindByUsername(ctx, login)
	}
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.IsActive {
		return "", nil, coreerrors.ErrUnauthorized
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, coreerrors.ErrUnauthorized
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	// Record the login time; failure here must not fail the login.
	now := time.Now().UTC()
	if _, err := s.userSvc.Update(ctx, user.ID, map[string]interface{}{"last_login": now}); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to record last login", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	return token, user, nil
}

// VerifyToken parses and validates an access token.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, coreerrors.ErrUnauthorized
	}
	return claims, nil
}

// RequestPasswordReset generates a single-use reset token and queues the
// reset email. An unknown email is not reported to the caller.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	raw := uuid.New().String()
	token := &domain.ResetToken{
		UserID:    user.ID,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetStore.Insert(ctx, token); err != nil {
		return err
	}

	s.enqueueEmail(interfaces.EmailJob{
		To:      user.Email,
		Subject: "Password Reset Request",
		Body:    fmt.Sprintf("Reset your password: %s?token=%s", s.cfg.ResetURL, raw),
	})

	return nil
}

// ConfirmPasswordReset exchanges a valid reset token for a new password.
// The password change goes through the user service so the standard cache
// invalidation applies.
func (s *Service) ConfirmPasswordReset(ctx context.Context, rawToken, newPassword string) error {
	if newPassword == "" {
		return &coreerrors.ValidationError{Field: "password", Message: "password must be set"}
	}

	hash := hashToken(rawToken)
	token, err := s.resetStore.FindByHash(ctx, hash)
	if err != nil {
		return err
	}
	if token == nil || token.IsExpired() {
		return coreerrors.ErrUnauthorized
	}

	if _, err := s.userSvc.Update(ctx, token.UserID, map[string]interface{}{"password": newPassword}); err != nil {
		return err
	}

	// The token is single use.
	return s.resetStore.DeleteByHash(ctx, hash)
}

// issueToken signs a JWT for the given user.
func (s *Service) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// enqueueEmail hands a job to the task queue, logging but not failing on a
// full queue. Email delivery is fire and forget.
func (s *Service) enqueueEmail(job interfaces.EmailJob) {
	if s.tasks == nil {
		return
	}
	if err := s.tasks.Enqueue(job); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Error("Failed to queue email", map[string]interface{}{
			"to":      job.To,
			"subject": job.Subject,
			"error":   err.Error(),
		})
	}
}

// hashToken derives the stored form of a reset token.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
