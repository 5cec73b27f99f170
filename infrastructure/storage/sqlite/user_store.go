// ABOUTME: SQLite implementation of the user store
// ABOUTME: Absent rows return nil, nil; database failures wrap as StoreUnavailable

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"

	"github.com/jmoiron/sqlx"
)

// userColumns maps filter/update field names to their columns.
var userColumns = map[string]string{
	"username":      "username",
	"email":         "email",
	"password_hash": "password_hash",
	"is_staff":      "is_staff",
	"is_active":     "is_active",
	"last_login":    "last_login",
}

// UserStore persists users in SQLite
type UserStore struct {
	db *sqlx.DB
}

// FindByID retrieves a user by id
func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.findOne(ctx, "SELECT * FROM users WHERE id = ?", id)
}

// FindByEmail retrieves a user by email address
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findOne(ctx, "SELECT * FROM users WHERE email = ?", email)
}

// FindByUsername retrieves a user by username
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findOne(ctx, "SELECT * FROM users WHERE username = ?", username)
}

// FindAll retrieves every user ordered by creation time
func (s *UserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := s.db.SelectContext(ctx, &users, "SELECT * FROM users ORDER BY created_at DESC"); err != nil {
		return nil, storeError("user list", err)
	}
	return users, nil
}

// FindByFilter retrieves users matching the filter predicate
func (s *UserStore) FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
	where, args, err := buildWhere(userColumns, filters)
	if err != nil {
		return nil, err
	}

	users := []domain.User{}
	query := "SELECT * FROM users" + where + " ORDER BY created_at DESC"
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, storeError("user filter", err)
	}
	return users, nil
}

// Insert creates a user from the given fields and returns the stored record
func (s *UserStore) Insert(ctx context.Context, fields map[string]interface{}) (*domain.User, error) {
	username, _ := fields["username"].(string)
	email, _ := fields["email"].(string)
	passwordHash, _ := fields["password_hash"].(string)
	isStaff, _ := fields["is_staff"].(bool)

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, is_staff, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 1, ?, ?)`,
		username, email, passwordHash, isStaff, now, now,
	)
	if err != nil {
		return nil, storeError("user insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeError("user insert", err)
	}

	return s.FindByID(ctx, id)
}

// UpdateFields applies field changes to an existing user. Returns nil, nil
// when the id does not exist.
func (s *UserStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
	set, args, err := buildSet(userColumns, fields)
	if err != nil {
		return nil, err
	}
	if set == "" {
		return s.FindByID(ctx, id)
	}

	args = append(args, time.Now().UTC(), id)
	result, err := s.db.ExecContext(ctx, "UPDATE users SET "+set+", updated_at = ? WHERE id = ?", args...)
	if err != nil {
		return nil, storeError("user update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("user update", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return s.FindByID(ctx, id)
}

// DeleteByID removes a user; returns false when the id does not exist
func (s *UserStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, storeError("user delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError("user delete", err)
	}
	return affected > 0, nil
}

func (s *UserStore) findOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("user lookup", err)
	}
	return &user, nil
}

// buildWhere renders a deterministic WHERE clause from a filter map. Unknown
// fields surface as InvalidQueryError.
func buildWhere(columns map[string]string, filters map[string]interface{}) (string, []interface{}, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		if _, ok := columns[k]; !ok {
			return "", nil, &coreerrors.InvalidQueryError{Field: k}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	clause := " WHERE "
	args := make([]interface{}, 0, len(keys))
	for i, k := range keys {
		if i > 0 {
			clause += " AND "
		}
		clause += columns[k] + " = ?"
		args = append(args, filters[k])
	}

	return clause, args, nil
}

// buildSet renders a deterministic SET clause from a changes map. Unknown
// fields surface as InvalidQueryError.
func buildSet(columns map[string]string, fields map[string]interface{}) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := columns[k]; !ok {
			return "", nil, &coreerrors.InvalidQueryError{Field: k}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := ""
	args := make([]interface{}, 0, len(keys))
	for i, k := range keys {
		if i > 0 {
			set += ", "
		}
		set += columns[k] + " = ?"
		args = append(args, fields[k])
	}

	return set, args, nil
}
