package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/adaptivekitchen/studio-site/shared/db"
)

var _ domain.PostStore = (*SQLiteStore)(nil)

// SQLiteStore persists the dynamic collection as a single keyed row in the
// collections table. The revision column backs the optimistic check: the
// UPDATE only matches when the stored revision equals the caller's base, so
// a concurrent writer surfaces as zero rows affected rather than a lost
// update.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// NewSQLiteStore creates a SQLiteStore from a standard sql.DB that has had
// migrations applied.
func NewSQLiteStore(sqlDB *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:  sqlDB,
		key: collectionKey,
	}
}

const loadCollectionQuery = `
	SELECT revision, data FROM collections WHERE key = ?
`

func (s *SQLiteStore) LoadAll(ctx context.Context) ([]domain.Post, domain.Revision, error) {
	var (
		revision domain.Revision
		data     string
	)
	err := s.db.QueryRowContext(ctx, loadCollectionQuery, s.key).Scan(&revision, &data)
	if err == sql.ErrNoRows {
		return []domain.Post{}, 0, nil
	}
	if err != nil {
		return nil, 0, &domain.StoreError{Op: "load", Err: fmt.Errorf("failed to load collection: %w", err)}
	}

	posts := make([]domain.Post, 0)
	if err := json.Unmarshal([]byte(data), &posts); err != nil {
		return nil, 0, &domain.StoreError{Op: "load", Err: fmt.Errorf("failed to decode collection: %w", err)}
	}
	return posts, revision, nil
}

const insertCollectionQuery = `
	INSERT INTO collections (key, revision, data, updated_at)
	VALUES (?, ?, ?, ?)
`

const updateCollectionQuery = `
	UPDATE collections
	SET revision = ?, data = ?, updated_at = ?
	WHERE key = ? AND revision = ?
`

func (s *SQLiteStore) SaveAll(ctx context.Context, posts []domain.Post, base domain.Revision) error {
	if posts == nil {
		posts = []domain.Post{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return &domain.StoreError{Op: "save", Err: fmt.Errorf("failed to encode collection: %w", err)}
	}

	now := time.Now().UTC()
	err = db.RunInTransaction(ctx, s.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, s.db)

		var current domain.Revision
		err := executor.QueryRowContext(txCtx, `SELECT revision FROM collections WHERE key = ?`, s.key).Scan(&current)
		if err == sql.ErrNoRows {
			if base != 0 {
				return domain.ErrConflict
			}
			_, err := executor.ExecContext(txCtx, insertCollectionQuery, s.key, base+1, string(data), now)
			if err != nil {
				return fmt.Errorf("failed to insert collection: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read collection revision: %w", err)
		}

		if current != base {
			return domain.ErrConflict
		}

		res, err := executor.ExecContext(txCtx, updateCollectionQuery, base+1, string(data), now, s.key, base)
		if err != nil {
			return fmt.Errorf("failed to update collection: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check update result: %w", err)
		}
		if affected == 0 {
			return domain.ErrConflict
		}
		return nil
	})

	if err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}
	return nil
}
