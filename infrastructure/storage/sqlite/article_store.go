// ABOUTME: SQLite implementation of the article store
// ABOUTME: View counts are bumped atomically in SQL to avoid read-modify-write races

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell-api/core/domain"

	"github.com/jmoiron/sqlx"
)

// articleColumns maps filter/update field names to their columns.
var articleColumns = map[string]string{
	"title":     "title",
	"body":      "body",
	"status":    "status",
	"author_id": "author_id",
}

// ArticleStore persists articles in SQLite
type ArticleStore struct {
	db *sqlx.DB
}

// FindByID retrieves an article by id
func (s *ArticleStore) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	return s.findOne(ctx, "SELECT * FROM articles WHERE id = ?", id)
}

// FindBySlug retrieves an article by slug
func (s *ArticleStore) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.findOne(ctx, "SELECT * FROM articles WHERE slug = ?", slug)
}

// FindByFilter retrieves articles matching the filter predicate
func (s *ArticleStore) FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.Article, error) {
	where, args, err := buildWhere(articleColumns, filters)
	if err != nil {
		return nil, err
	}

	articles := []domain.Article{}
	query := "SELECT * FROM articles" + where + " ORDER BY created_at DESC"
	if err := s.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, storeError("article filter", err)
	}
	return articles, nil
}

// Insert creates an article and returns the stored record
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (author_id, title, body, slug, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		article.AuthorID, article.Title, article.Body, article.Slug, article.Status, now, now,
	)
	if err != nil {
		return nil, storeError("article insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeError("article insert", err)
	}

	return s.FindByID(ctx, id)
}

// UpdateFields applies field changes to an existing article. Returns nil, nil
// when the id does not exist.
func (s *ArticleStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Article, error) {
	set, args, err := buildSet(articleColumns, fields)
	if err != nil {
		return nil, err
	}
	if set == "" {
		return s.FindByID(ctx, id)
	}

	args = append(args, time.Now().UTC(), id)
	result, err := s.db.ExecContext(ctx, "UPDATE articles SET "+set+", updated_at = ? WHERE id = ?", args...)
	if err != nil {
		return nil, storeError("article update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("article update", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return s.FindByID(ctx, id)
}

// DeleteByID removes an article; returns false when the id does not exist
func (s *ArticleStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return false, storeError("article delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError("article delete", err)
	}
	return affected > 0, nil
}

// IncrementViewCount bumps the view counter without racing concurrent reads
func (s *ArticleStore) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "UPDATE articles SET view_count = view_count + 1 WHERE id = ?", id)
	if err != nil {
		return storeError("view count update", err)
	}
	return nil
}

func (s *ArticleStore) findOne(ctx context.Context, query string, arg interface{}) (*domain.Article, error) {
	var article domain.Article
	err := s.db.GetContext(ctx, &article, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("article lookup", err)
	}
	return &article, nil
}
