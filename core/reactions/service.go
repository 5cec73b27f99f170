// ABOUTME: Reaction service handles likes on articles and comments
// ABOUTME: A user may like a target once; duplicates report false, not an error

package reactions

import (
	"context"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"
)

// Service handles like operations.
type Service struct {
	store interfaces.LikeStore
	deps  interfaces.Dependencies
}

// NewService creates a new reaction service instance
func NewService(store interfaces.LikeStore, deps interfaces.Dependencies) *Service {
	return &Service{
		store: store,
		deps:  deps,
	}
}

// Like records a reaction. Returns false when the user already liked the target.
func (s *Service) Like(ctx context.Context, userID int64, contentType string, objectID int64) (bool, error) {
	if !domain.ValidContentType(contentType) {
		return false, &coreerrors.ValidationError{Field: "content_type", Message: "unknown content type"}
	}

	return s.store.Insert(ctx, &domain.Like{
		UserID:      userID,
		ContentType: contentType,
		ObjectID:    objectID,
	})
}

// Unlike removes a reaction. Returns false when no like existed.
func (s *Service) Unlike(ctx context.Context, userID int64, contentType string, objectID int64) (bool, error) {
	if !domain.ValidContentType(contentType) {
		return false, &coreerrors.ValidationError{Field: "content_type", Message: "unknown content type"}
	}

	return s.store.Delete(ctx, userID, contentType, objectID)
}

// Count returns the number of likes on a target.
func (s *Service) Count(ctx context.Context, contentType string, objectID int64) (int, error) {
	if !domain.ValidContentType(contentType) {
		return 0, &coreerrors.ValidationError{Field: "content_type", Message: "unknown content type"}
	}

	return s.store.Count(ctx, contentType, objectID)
}
