// ABOUTME: SQLite implementation of the tag store
// ABOUTME: Article tagging goes through a join table with a composite key

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"inkwell-api/core/domain"

	"github.com/jmoiron/sqlx"
)

// TagStore persists tags in SQLite
type TagStore struct {
	db *sqlx.DB
}

// FindAll retrieves every tag
func (s *TagStore) FindAll(ctx context.Context) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	if err := s.db.SelectContext(ctx, &tags, "SELECT * FROM tags ORDER BY name"); err != nil {
		return nil, storeError("tag list", err)
	}
	return tags, nil
}

// FindByName retrieves a tag by name
func (s *TagStore) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := s.db.GetContext(ctx, &tag, "SELECT * FROM tags WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("tag lookup", err)
	}
	return &tag, nil
}

// FindByArticle retrieves the tags attached to an article
func (s *TagStore) FindByArticle(ctx context.Context, articleID int64) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	err := s.db.SelectContext(ctx, &tags,
		`SELECT t.* FROM tags t
		 JOIN article_tags at ON at.tag_id = t.id
		 WHERE at.article_id = ? ORDER BY t.name`,
		articleID,
	)
	if err != nil {
		return nil, storeError("article tag list", err)
	}
	return tags, nil
}

// Insert creates a tag and returns the stored record
func (s *TagStore) Insert(ctx context.Context, name string) (*domain.Tag, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, "INSERT INTO tags (name, created_at) VALUES (?, ?)", name, now)
	if err != nil {
		return nil, storeError("tag insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeError("tag insert", err)
	}

	return &domain.Tag{ID: id, Name: name, CreatedAt: now}, nil
}

// TagArticle attaches a tag; returns false when already attached
func (s *TagStore) TagArticle(ctx context.Context, articleID, tagID int64) (bool, error) {
	_, err := s.db.ExecContext(ctx, "INSERT INTO article_tags (article_id, tag_id) VALUES (?, ?)", articleID, tagID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, storeError("tag attach", err)
	}
	return true, nil
}

// UntagArticle detaches a tag; returns false when it was not attached
func (s *TagStore) UntagArticle(ctx context.Context, articleID, tagID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM article_tags WHERE article_id = ? AND tag_id = ?", articleID, tagID)
	if err != nil {
		return false, storeError("tag detach", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError("tag detach", err)
	}
	return affected > 0, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
