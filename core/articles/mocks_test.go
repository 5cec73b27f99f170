package articles

import (
	"context"

	"inkwell-api/core/domain"
)

// fakeArticleStore is an ArticleStore double with per-method hooks.
type fakeArticleStore struct {
	findByIDFunc     func(ctx context.Context, id int64) (*domain.Article, error)
	findBySlugFunc   func(ctx context.Context, slug string) (*domain.Article, error)
	findByFilterFunc func(ctx context.Context, filters map[string]interface{}) ([]domain.Article, error)
	insertFunc       func(ctx context.Context, article *domain.Article) (*domain.Article, error)
	updateFunc       func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Article, error)
	deleteFunc       func(ctx context.Context, id int64) (bool, error)
	incrementFunc    func(ctx context.Context, id int64) error

	incrementCalls int
}

func (s *fakeArticleStore) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	if s.findByIDFunc != nil {
		return s.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *fakeArticleStore) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if s.findBySlugFunc != nil {
		return s.findBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (s *fakeArticleStore) FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.Article, error) {
	if s.findByFilterFunc != nil {
		return s.findByFilterFunc(ctx, filters)
	}
	return nil, nil
}

func (s *fakeArticleStore) Insert(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if s.insertFunc != nil {
		return s.insertFunc(ctx, article)
	}
	article.ID = 1
	return article, nil
}

func (s *fakeArticleStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Article, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (s *fakeArticleStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return false, nil
}

func (s *fakeArticleStore) IncrementViewCount(ctx context.Context, id int64) error {
	s.incrementCalls++
	if s.incrementFunc != nil {
		return s.incrementFunc(ctx, id)
	}
	return nil
}

// fakeTagStore is a TagStore double backed by maps.
type fakeTagStore struct {
	tags     map[string]*domain.Tag
	attached map[int64]map[int64]bool
	nextID   int64
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{
		tags:     make(map[string]*domain.Tag),
		attached: make(map[int64]map[int64]bool),
		nextID:   1,
	}
}

func (s *fakeTagStore) FindAll(ctx context.Context) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(s.tags))
	for _, tag := range s.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (s *fakeTagStore) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	return s.tags[name], nil
}

func (s *fakeTagStore) FindByArticle(ctx context.Context, articleID int64) ([]domain.Tag, error) {
	var out []domain.Tag
	for _, tag := range s.tags {
		if s.attached[articleID][tag.ID] {
			out = append(out, *tag)
		}
	}
	return out, nil
}

func (s *fakeTagStore) Insert(ctx context.Context, name string) (*domain.Tag, error) {
	tag := &domain.Tag{ID: s.nextID, Name: name}
	s.nextID++
	s.tags[name] = tag
	return tag, nil
}

func (s *fakeTagStore) TagArticle(ctx context.Context, articleID, tagID int64) (bool, error) {
	if s.attached[articleID] == nil {
		s.attached[articleID] = make(map[int64]bool)
	}
	if s.attached[articleID][tagID] {
		return false, nil
	}
	s.attached[articleID][tagID] = true
	return true, nil
}

func (s *fakeTagStore) UntagArticle(ctx context.Context, articleID, tagID int64) (bool, error) {
	if !s.attached[articleID][tagID] {
		return false, nil
	}
	delete(s.attached[articleID], tagID)
	return true, nil
}
