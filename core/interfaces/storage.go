// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"inkwell-api/core/domain"
)

// UserStore defines the interface for durable user persistence.
// Lookup methods return (nil, nil) when no record matches; errors are
// reserved for store failures.
type UserStore interface {
	// FindByID retrieves a user by id
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// FindByEmail retrieves a user by email address
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByUsername retrieves a user by username
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindAll retrieves every user, store-defined ordering
	FindAll(ctx context.Context) ([]domain.User, error)

	// FindByFilter retrieves users matching the filter predicate
	FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.User, error)

	// Insert creates a user from the given fields and returns the stored record
	Insert(ctx context.Context, fields map[string]interface{}) (*domain.User, error)

	// UpdateFields applies field changes to an existing user
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error)

	// DeleteByID removes a user; returns false when the id does not exist
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// ProfileStore defines the interface for profile persistence
type ProfileStore interface {
	// FindByUserID retrieves the profile attached to a user
	FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error)

	// Insert creates a profile for a user
	Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// UpdateFields applies field changes to a user's profile
	UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) (*domain.Profile, error)

	// AdjustFollowerCount adds delta to the stored follower count
	AdjustFollowerCount(ctx context.Context, userID int64, delta int) error
}

// ArticleStore defines the interface for article persistence
type ArticleStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.Article, error)
	Insert(ctx context.Context, article *domain.Article) (*domain.Article, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Article, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// IncrementViewCount bumps the view counter without racing concurrent reads
	IncrementViewCount(ctx context.Context, id int64) error
}

// CommentStore defines the interface for comment persistence
type CommentStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindByTarget(ctx context.Context, contentType string, objectID int64) ([]domain.Comment, error)
	Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Comment, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// TagStore defines the interface for tag persistence
type TagStore interface {
	FindAll(ctx context.Context) ([]domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	FindByArticle(ctx context.Context, articleID int64) ([]domain.Tag, error)
	Insert(ctx context.Context, name string) (*domain.Tag, error)

	// TagArticle attaches a tag; returns false when already attached
	TagArticle(ctx context.Context, articleID, tagID int64) (bool, error)

	// UntagArticle detaches a tag; returns false when it was not attached
	UntagArticle(ctx context.Context, articleID, tagID int64) (bool, error)
}

// LikeStore defines the interface for like persistence
type LikeStore interface {
	// Insert records a like; returns false when the user already liked the target
	Insert(ctx context.Context, like *domain.Like) (bool, error)

	// Delete removes a like; returns false when no like existed
	Delete(ctx context.Context, userID int64, contentType string, objectID int64) (bool, error)

	// Count returns the number of likes on a target
	Count(ctx context.Context, contentType string, objectID int64) (int, error)
}

// FollowStore defines the interface for follow persistence
type FollowStore interface {
	// Insert records a follow; returns false when already following
	Insert(ctx context.Context, followerID, followedID int64) (bool, error)

	// Delete removes a follow; returns false when not following
	Delete(ctx context.Context, followerID, followedID int64) (bool, error)

	// Followers returns the users following the given user
	Followers(ctx context.Context, userID int64) ([]domain.User, error)
}

// ResetTokenStore defines the interface for password reset token persistence
type ResetTokenStore interface {
	Insert(ctx context.Context, token *domain.ResetToken) error
	FindByHash(ctx context.Context, tokenHash string) (*domain.ResetToken, error)
	DeleteByHash(ctx context.Context, tokenHash string) error
}
