package persistence

import (
	"context"
	"errors"

	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/go-redis/redis/v8"
)

var _ domain.PostStore = (*RedisStore)(nil)

// RedisStore persists the dynamic collection as a JSON envelope under a single
// key. SaveAll runs a WATCH/MULTI check-and-set against the envelope revision,
// so a concurrent writer that lands first causes a conflict instead of a lost
// update.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		key:    collectionKey,
	}
}

func (s *RedisStore) LoadAll(ctx context.Context) ([]domain.Post, domain.Revision, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Post{}, 0, nil
	}
	if err != nil {
		return nil, 0, &domain.StoreError{Op: "load", Err: err}
	}

	env, err := decodeCollection(data)
	if err != nil {
		return nil, 0, &domain.StoreError{Op: "load", Err: err}
	}
	if env.Posts == nil {
		env.Posts = []domain.Post{}
	}
	return env.Posts, env.Revision, nil
}

func (s *RedisStore) SaveAll(ctx context.Context, posts []domain.Post, base domain.Revision) error {
	payload, err := encodeCollection(posts, base+1)
	if err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}

	txf := func(tx *redis.Tx) error {
		current := domain.Revision(0)

		data, err := tx.Get(ctx, s.key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			// never written; base must be 0
		case err != nil:
			return err
		default:
			env, err := decodeCollection(data)
			if err != nil {
				return err
			}
			current = env.Revision
		}

		if current != base {
			return domain.ErrConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, payload, 0)
			return nil
		})
		return err
	}

	err = s.client.Watch(ctx, txf, s.key)
	if errors.Is(err, redis.TxFailedErr) {
		// another writer touched the key between WATCH and EXEC
		err = domain.ErrConflict
	}
	if err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}
	return nil
}
