// ABOUTME: SQLite implementation of the password reset token store
// ABOUTME: Only token hashes are stored; lookup is by hash

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell-api/core/domain"

	"github.com/jmoiron/sqlx"
)

// ResetTokenStore persists password reset tokens in SQLite
type ResetTokenStore struct {
	db *sqlx.DB
}

// Insert stores a reset token
func (s *ResetTokenStore) Insert(ctx context.Context, token *domain.ResetToken) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reset_tokens (user_id, token_hash, expires_at, created_at) VALUES (?, ?, ?, ?)",
		token.UserID, token.TokenHash, token.ExpiresAt, time.Now().UTC(),
	)
	if err != nil {
		return storeError("reset token insert", err)
	}
	return nil
}

// FindByHash retrieves a reset token by its hash
func (s *ResetTokenStore) FindByHash(ctx context.Context, tokenHash string) (*domain.ResetToken, error) {
	var token domain.ResetToken
	err := s.db.GetContext(ctx, &token, "SELECT * FROM reset_tokens WHERE token_hash = ?", tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("reset token lookup", err)
	}
	return &token, nil
}

// DeleteByHash removes a reset token
func (s *ResetTokenStore) DeleteByHash(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM reset_tokens WHERE token_hash = ?", tokenHash)
	if err != nil {
		return storeError("reset token delete", err)
	}
	return nil
}
