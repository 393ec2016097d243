package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart", []byte(`[{"id":"item1","quantity":2}]`)))

	data, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"item1","quantity":2}]`, string(data))

	require.NoError(t, store.Set(ctx, "cart", []byte(`[]`)))
	data, err = store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.Get(context.Background(), "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user", []byte(`{"id":"admin"}`)))
	require.NoError(t, store.Delete(ctx, "user"))
	require.NoError(t, store.Delete(ctx, "user"))

	_, err := store.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "cart", []byte(`[{"id":"item4","quantity":1}]`)))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Get(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"item4","quantity":1}]`, string(data))
}
