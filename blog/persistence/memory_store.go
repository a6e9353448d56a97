package persistence

import (
	"context"
	"sync"

	"github.com/adaptivekitchen/studio-site/blog/domain"
)

var _ domain.PostStore = (*MemoryStore)(nil)

// MemoryStore keeps the dynamic collection in process memory. Used for tests
// and for local development without a backing service.
type MemoryStore struct {
	mu       sync.RWMutex
	posts    []domain.Post
	revision domain.Revision
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadAll(ctx context.Context) ([]domain.Post, domain.Revision, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, &domain.StoreError{Op: "load", Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out, s.revision, nil
}

func (s *MemoryStore) SaveAll(ctx context.Context, posts []domain.Post, base domain.Revision) error {
	if err := ctx.Err(); err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if base != s.revision {
		return &domain.StoreError{Op: "save", Err: domain.ErrConflict}
	}

	s.posts = make([]domain.Post, len(posts))
	copy(s.posts, posts)
	s.revision++
	return nil
}
