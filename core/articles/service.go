// ABOUTME: Article service handles post CRUD, slugs, view counts, and tagging
// ABOUTME: Only the author may modify an article; reads bump the view counter

package articles

import (
	"context"
	"strconv"
	"strings"

	"inkwell-api/core/domain"
	coreerrors "inkwell-api/core/errors"
	"inkwell-api/core/interfaces"

	"github.com/google/uuid"
)

// allowedFilterFields is the set of predicates List accepts.
var allowedFilterFields = map[string]bool{
	"status":    true,
	"author_id": true,
}

// Service handles article operations.
type Service struct {
	store interfaces.ArticleStore
	tags  interfaces.TagStore
	deps  interfaces.Dependencies
}

// NewService creates a new article service instance
func NewService(store interfaces.ArticleStore, tags interfaces.TagStore, deps interfaces.Dependencies) *Service {
	return &Service{
		store: store,
		tags:  tags,
		deps:  deps,
	}
}

// Create inserts a new article for the given author. The slug is derived from
// the title, with a random suffix when the natural slug is taken.
func (s *Service) Create(ctx context.Context, authorID int64, title, body, status string) (*domain.Article, error) {
	if title == "" {
		return nil, &coreerrors.ValidationError{Field: "title", Message: "title must be set"}
	}
	if status == "" {
		status = domain.ArticleStatusDraft
	}
	if status != domain.ArticleStatusDraft && status != domain.ArticleStatusPublished {
		return nil, &coreerrors.ValidationError{Field: "status", Message: "status must be draft or published"}
	}

	slug, err := s.uniqueSlug(ctx, title)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
		Slug:     slug,
		Status:   status,
	}
	return s.store.Insert(ctx, article)
}

// GetByID returns an article by id, or a NotFoundError when absent.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: strconv.FormatInt(id, 10)}
	}
	return article, nil
}

// GetBySlug returns an article by slug and records the view. A failed view
// count bump is logged, never surfaced.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: slug}
	}

	if err := s.store.IncrementViewCount(ctx, article.ID); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Failed to bump view count", map[string]interface{}{
				"article_id": article.ID,
				"error":      err.Error(),
			})
		}
	} else {
		article.ViewCount++
	}

	return article, nil
}

// List returns articles matching the filter predicate.
func (s *Service) List(ctx context.Context, filters map[string]interface{}) ([]domain.Article, error) {
	for field := range filters {
		if !allowedFilterFields[field] {
			return nil, &coreerrors.InvalidQueryError{Field: field}
		}
	}
	return s.store.FindByFilter(ctx, filters)
}

// Update applies changes to an article. Only the author may write.
func (s *Service) Update(ctx context.Context, id, actorID int64, changes map[string]interface{}) (*domain.Article, error) {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != actorID {
		return nil, coreerrors.ErrForbidden
	}

	if status, ok := changes["status"].(string); ok {
		if status != domain.ArticleStatusDraft && status != domain.ArticleStatusPublished {
			return nil, &coreerrors.ValidationError{Field: "status", Message: "status must be draft or published"}
		}
	}

	updated, err := s.store.UpdateFields(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: strconv.FormatInt(id, 10)}
	}
	return updated, nil
}

// Delete removes an article. Only the author may delete; a missing article
// reports false without error.
func (s *Service) Delete(ctx context.Context, id, actorID int64) (bool, error) {
	article, err := s.store.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if article == nil {
		return false, nil
	}
	if article.AuthorID != actorID {
		return false, coreerrors.ErrForbidden
	}

	return s.store.DeleteByID(ctx, id)
}

// AttachTag labels an article, creating the tag on first use. Only the author
// may tag.
func (s *Service) AttachTag(ctx context.Context, articleID, actorID int64, tagName string) (bool, error) {
	article, err := s.GetByID(ctx, articleID)
	if err != nil {
		return false, err
	}
	if article.AuthorID != actorID {
		return false, coreerrors.ErrForbidden
	}

	tag, err := s.tags.FindByName(ctx, tagName)
	if err != nil {
		return false, err
	}
	if tag == nil {
		tag, err = s.tags.Insert(ctx, tagName)
		if err != nil {
			return false, err
		}
	}

	return s.tags.TagArticle(ctx, articleID, tag.ID)
}

// DetachTag removes a label from an article.
func (s *Service) DetachTag(ctx context.Context, articleID, actorID int64, tagName string) (bool, error) {
	article, err := s.GetByID(ctx, articleID)
	if err != nil {
		return false, err
	}
	if article.AuthorID != actorID {
		return false, coreerrors.ErrForbidden
	}

	tag, err := s.tags.FindByName(ctx, tagName)
	if err != nil {
		return false, err
	}
	if tag == nil {
		return false, nil
	}

	return s.tags.UntagArticle(ctx, articleID, tag.ID)
}

// TagsFor returns the tags attached to an article.
func (s *Service) TagsFor(ctx context.Context, articleID int64) ([]domain.Tag, error) {
	return s.tags.FindByArticle(ctx, articleID)
}

// uniqueSlug derives a URL slug from the title, suffixing a short random
// fragment when the natural slug already exists.
func (s *Service) uniqueSlug(ctx context.Context, title string) (string, error) {
	slug := Slugify(title)

	existing, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return slug, nil
	}

	suffix := strings.Split(uuid.New().String(), "-")[0]
	return slug + "-" + suffix, nil
}
