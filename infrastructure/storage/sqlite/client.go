// ABOUTME: SQLite-backed durable storage for all domain entities
// ABOUTME: Opens the database, applies the schema, and hands out typed stores

package sqlite

import (
	"fmt"

	coreerrors "inkwell-api/core/errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Client owns the database handle shared by the typed stores.
type Client struct {
	db       *sqlx.DB
	filePath string
}

// NewClient opens (or creates) the SQLite database at filePath.
func NewClient(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "inkwell.db"
	}

	db, err := sqlx.Open("sqlite3", filePath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the tables if they don't exist
func (c *Client) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL DEFAULT '',
			is_staff INTEGER NOT NULL DEFAULT 0,
			is_active INTEGER NOT NULL DEFAULT 1,
			last_login TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			avatar TEXT NOT NULL DEFAULT '/profile_default.png',
			phone_number TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT 'male',
			follower_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS articles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			author_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL UNIQUE,
			body TEXT NOT NULL DEFAULT '',
			slug TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'draft',
			view_count INTEGER NOT NULL DEFAULT 0,
			like_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL,
			content_type TEXT NOT NULL,
			object_id INTEGER NOT NULL,
			parent_id INTEGER REFERENCES comments(id) ON DELETE CASCADE,
			like_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_comments_target ON comments(content_type, object_id);

		CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS article_tags (
			article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
			tag_id INTEGER NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			PRIMARY KEY (article_id, tag_id)
		);

		CREATE TABLE IF NOT EXISTS likes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content_type TEXT NOT NULL,
			object_id INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, content_type, object_id)
		);

		CREATE TABLE IF NOT EXISTS follows (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			follower_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			followed_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (follower_id, followed_id)
		);

		CREATE TABLE IF NOT EXISTS reset_tokens (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token_hash TEXT NOT NULL UNIQUE,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := c.db.Exec(schema)
	return err
}

// Users returns the user store backed by this client.
func (c *Client) Users() *UserStore { return &UserStore{db: c.db} }

// Profiles returns the profile store backed by this client.
func (c *Client) Profiles() *ProfileStore { return &ProfileStore{db: c.db} }

// Articles returns the article store backed by this client.
func (c *Client) Articles() *ArticleStore { return &ArticleStore{db: c.db} }

// Comments returns the comment store backed by this client.
func (c *Client) Comments() *CommentStore { return &CommentStore{db: c.db} }

// Tags returns the tag store backed by this client.
func (c *Client) Tags() *TagStore { return &TagStore{db: c.db} }

// Likes returns the like store backed by this client.
func (c *Client) Likes() *LikeStore { return &LikeStore{db: c.db} }

// Follows returns the follow store backed by this client.
func (c *Client) Follows() *FollowStore { return &FollowStore{db: c.db} }

// ResetTokens returns the reset token store backed by this client.
func (c *Client) ResetTokens() *ResetTokenStore { return &ResetTokenStore{db: c.db} }

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// storeError wraps a database failure so callers can classify it.
func storeError(op string, err error) error {
	return &coreerrors.StoreUnavailableError{Op: op, Err: err}
}
