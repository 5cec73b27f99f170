// ABOUTME: Tag service handles tag creation and listing
// ABOUTME: Tags are unique by name; creating an existing tag returns it

package tags

import (
	"context"
	"strings"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"
)

// Service handles tag operations.
type Service struct {
	store interfaces.TagStore
	deps  interfaces.Dependencies
}

// NewService creates a new tag service instance
func NewService(store interfaces.TagStore, deps interfaces.Dependencies) *Service {
	return &Service{
		store: store,
		deps:  deps,
	}
}

// Create adds a tag, returning the existing record when the name is taken.
func (s *Service) Create(ctx context.Context, name string) (*domain.Tag, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return nil, &coreerrors.ValidationError{Field: "name", Message: "name must be set"}
	}

	existing, err := s.store.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.store.Insert(ctx, name)
}

// List returns every tag.
func (s *Service) List(ctx context.Context) ([]domain.Tag, error) {
	return s.store.FindAll(ctx)
}
