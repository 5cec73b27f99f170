// ABOUTME: Comment service handles polymorphic comments and threaded replies
// ABOUTME: Comments target an article or another comment by content type and id

package comments

import (
	"context"
	"strconv"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"
)

// Service handles comment operations.
type Service struct {
	store interfaces.CommentStore
	deps  interfaces.Dependencies
}

// NewService creates a new comment service instance
func NewService(store interfaces.CommentStore, deps interfaces.Dependencies) *Service {
	return &Service{
		store: store,
		deps:  deps,
	}
}

// Add creates a comment on the given target. A non-nil parentID makes this a
// reply; the parent must exist.
func (s *Service) Add(ctx context.Context, userID int64, contentType string, objectID int64, parentID *int64, title, body string) (*domain.Comment, error) {
	if body == "" {
		return nil, &coreerrors.ValidationError{Field: "body", Message: "body must be set"}
	}
	if !domain.ValidContentType(contentType) {
		return nil, &coreerrors.ValidationError{Field: "content_type", Message: "unknown content type"}
	}

	if parentID != nil {
		parent, err := s.store.FindByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, &coreerrors.NotFoundError{Resource: "comment", ID: strconv.FormatInt(*parentID, 10)}
		}
	}

	comment := &domain.Comment{
		UserID:      userID,
		Title:       title,
		Body:        body,
		ContentType: contentType,
		ObjectID:    objectID,
		ParentID:    parentID,
	}
	return s.store.Insert(ctx, comment)
}

// ListFor returns the comments on a target, newest first (store ordering).
func (s *Service) ListFor(ctx context.Context, contentType string, objectID int64) ([]domain.Comment, error) {
	if !domain.ValidContentType(contentType) {
		return nil, &coreerrors.ValidationError{Field: "content_type", Message: "unknown content type"}
	}
	return s.store.FindByTarget(ctx, contentType, objectID)
}

// Update edits a comment. Only the author may write.
func (s *Service) Update(ctx context.Context, id, actorID int64, changes map[string]interface{}) (*domain.Comment, error) {
	comment, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, &coreerrors.NotFoundError{Resource: "comment", ID: strconv.FormatInt(id, 10)}
	}
	if comment.UserID != actorID {
		return nil, coreerrors.ErrForbidden
	}

	updated, err := s.store.UpdateFields(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &coreerrors.NotFoundError{Resource: "comment", ID: strconv.FormatInt(id, 10)}
	}
	return updated, nil
}

// Delete removes a comment. Only the author may delete; a missing comment
// reports false without error.
func (s *Service) Delete(ctx context.Context, id, actorID int64) (bool, error) {
	comment, err := s.store.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}
	if comment.UserID != actorID {
		return false, coreerrors.ErrForbidden
	}

	return s.store.DeleteByID(ctx, id)
}
