package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLazyInit(t *testing.T) {
	store := NewMemoryStore()

	posts, rev, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, posts)
	require.Equal(t, domain.Revision(0), rev)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := []domain.Post{{ID: "p1", Title: "One"}, {ID: "p2", Title: "Two"}}
	require.NoError(t, store.SaveAll(ctx, in, 0))

	posts, rev, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Revision(1), rev)
	require.Equal(t, in, posts)

	// mutating the returned slice must not affect the store
	posts[0].Title = "Mutated"
	again, _, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "One", again[0].Title)
}

func TestMemoryStoreConflict(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []domain.Post{{ID: "p1"}}, 0))

	// a second writer using the stale base revision must be rejected
	err := store.SaveAll(ctx, []domain.Post{{ID: "p2"}}, 0)
	require.True(t, errors.Is(err, domain.ErrConflict), "got %v", err)

	var se *domain.StoreError
	require.True(t, errors.As(err, &se))

	posts, rev, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Revision(1), rev)
	require.Len(t, posts, 1)
	require.Equal(t, "p1", posts[0].ID)
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	store := NewMemoryStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := store.LoadAll(ctx)
	require.Error(t, err)

	err = store.SaveAll(ctx, nil, 0)
	require.Error(t, err)
}
