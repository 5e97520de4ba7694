package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulikov/stockpile/internal/client/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Get before any Set returns ErrKeyNotFound
	_, err := store.Get(ctx, "user")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	err = store.Set(ctx, "user", []byte(`{"id":"u-1"}`))
	require.NoError(t, err)

	got, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"u-1"}`), got)

	// Overwrite replaces the previous value
	err = store.Set(ctx, "user", []byte(`{"id":"u-2"}`))
	require.NoError(t, err)

	got, err = store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"u-2"}`), got)

	err = store.Delete(ctx, "user")
	require.NoError(t, err)

	_, err = store.Get(ctx, "user")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Deleting an absent key is not an error
	err = store.Delete(ctx, "user")
	assert.NoError(t, err)
}

func TestStorage_Clear(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, "user", []byte("u")))
	require.NoError(t, store.Set(ctx, "token", []byte("t")))
	require.NoError(t, store.Set(ctx, "theme", []byte("dark")))

	require.NoError(t, store.Clear(ctx))

	for _, key := range []string{"user", "token", "theme"} {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrKeyNotFound, "key %q should be gone", key)
	}

	// Storage stays usable after a wipe
	require.NoError(t, store.Set(ctx, "theme", []byte("light")))

	got, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("light"), got)
}

func TestStorage_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, "user", []byte("original")))

	got, err := store.Get(ctx, "user")
	require.NoError(t, err)

	// Mutating the returned slice must not affect the stored value
	got[0] = 'X'

	again, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
