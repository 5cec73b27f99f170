package auth

import (
	"context"

	"inkwell-api/core/domain"
	"inkwell-api/core/interfaces"
)

// fakeUserStore is a UserStore double with per-method hooks.
type fakeUserStore struct {
	findByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	findByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	insertFunc         func(ctx context.Context, fields map[string]interface{}) (*domain.User, error)
	updateFunc         func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error)
}

func (s *fakeUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if s.findByIDFunc != nil {
		return s.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFunc != nil {
		return s.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (s *fakeUserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.findByUsernameFunc != nil {
		return s.findByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (s *fakeUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) FindByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.User, error) {
	return nil, nil
}

func (s *fakeUserStore) Insert(ctx context.Context, fields map[string]interface{}) (*domain.User, error) {
	if s.insertFunc != nil {
		return s.insertFunc(ctx, fields)
	}
	return nil, nil
}

func (s *fakeUserStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*domain.User, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (s *fakeUserStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

// fakeResetStore is a ResetTokenStore double backed by a map keyed on hash.
type fakeResetStore struct {
	tokens map[string]*domain.ResetToken
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{tokens: make(map[string]*domain.ResetToken)}
}

func (s *fakeResetStore) Insert(ctx context.Context, token *domain.ResetToken) error {
	s.tokens[token.TokenHash] = token
	return nil
}

func (s *fakeResetStore) FindByHash(ctx context.Context, tokenHash string) (*domain.ResetToken, error) {
	return s.tokens[tokenHash], nil
}

func (s *fakeResetStore) DeleteByHash(ctx context.Context, tokenHash string) error {
	delete(s.tokens, tokenHash)
	return nil
}

// fakeQueue records enqueued email jobs.
type fakeQueue struct {
	jobs []interfaces.EmailJob
	err  error
}

func (q *fakeQueue) Enqueue(job interfaces.EmailJob) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}
