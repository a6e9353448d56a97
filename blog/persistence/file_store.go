package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adaptivekitchen/studio-site/blog/domain"
)

var _ domain.PostStore = (*FileStore)(nil)

// FileStore persists the dynamic collection as a single JSON file. Writes go
// through a temp file and rename so a crash mid-write never leaves a partial
// collection behind. The mutex serializes access within this process; the
// revision check catches writers in other processes.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) LoadAll(ctx context.Context) ([]domain.Post, domain.Revision, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, &domain.StoreError{Op: "load", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	env, err := s.read()
	if err != nil {
		return nil, 0, &domain.StoreError{Op: "load", Err: err}
	}
	if env.Posts == nil {
		env.Posts = []domain.Post{}
	}
	return env.Posts, env.Revision, nil
}

func (s *FileStore) SaveAll(ctx context.Context, posts []domain.Post, base domain.Revision) error {
	if err := ctx.Err(); err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}
	if current.Revision != base {
		return &domain.StoreError{Op: "save", Err: domain.ErrConflict}
	}

	data, err := encodeCollection(posts, base+1)
	if err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}

	if err := s.writeAtomic(data); err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}
	return nil
}

// read returns the stored envelope, or an empty one at revision 0 when the
// file has not been created yet.
func (s *FileStore) read() (collectionEnvelope, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return collectionEnvelope{SchemaVersion: collectionSchemaVersion}, nil
	}
	if err != nil {
		return collectionEnvelope{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return decodeCollection(data)
}

func (s *FileStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection file: %w", err)
	}
	return nil
}
