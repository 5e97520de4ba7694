package session

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulikov/stockpile/internal/client/storage"
	"github.com/akulikov/stockpile/internal/client/storage/boltdb"
	"github.com/akulikov/stockpile/internal/models"
)

func createTestStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "session_test.db")

	kv, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})

	return New(kv, slog.Default()), kv
}

func TestStore_UserRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
	}{
		{
			name: "all fields set",
			user: &models.User{
				ID:        "user-1",
				FirstName: "Grace",
				LastName:  "Hopper",
				Email:     "grace@example.com",
				ImageURL:  "https://cdn.example.com/u/1.png",
				CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "optional fields omitted",
			user: &models.User{
				ID:        "user-2",
				FirstName: "Alan",
				LastName:  "Turing",
				Email:     "alan@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, _ := createTestStore(t)

			assert.Nil(t, store.User(ctx))

			store.SetUser(ctx, tt.user)

			got := store.User(ctx)
			require.NotNil(t, got)
			assert.Equal(t, tt.user, got)

			store.DeleteUser(ctx)
			assert.Nil(t, store.User(ctx))
		})
	}
}

func TestStore_UserCorruptData(t *testing.T) {
	ctx := context.Background()
	store, kv := createTestStore(t)

	// Unreadable stored value must yield nil, not an error
	require.NoError(t, kv.Set(ctx, "user", []byte("not json")))

	assert.Nil(t, store.User(ctx))
}

func TestStore_Token(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t)

	assert.Empty(t, store.Token(ctx))

	store.SetToken(ctx, "session-token-123")
	assert.Equal(t, "session-token-123", store.Token(ctx))

	store.DeleteToken(ctx)
	assert.Empty(t, store.Token(ctx))
}

func TestStore_Theme(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t)

	assert.Empty(t, store.Theme(ctx))

	store.SetTheme(ctx, "dark")
	assert.Equal(t, "dark", store.Theme(ctx))

	store.SetTheme(ctx, "light")
	assert.Equal(t, "light", store.Theme(ctx))
}

func TestStore_ClientIDStable(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t)

	first := store.ClientID(ctx)
	require.NotEmpty(t, first)

	// Same id on every subsequent read
	assert.Equal(t, first, store.ClientID(ctx))
	assert.Equal(t, first, store.ClientID(ctx))
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t)

	store.SetUser(ctx, &models.User{ID: "u-1", Email: "a@b.c"})
	store.SetToken(ctx, "tok")
	store.SetTheme(ctx, "dark")

	store.Clear(ctx)

	assert.Nil(t, store.User(ctx))
	assert.Empty(t, store.Token(ctx))
	assert.Empty(t, store.Theme(ctx))
}

// failingKV simulates a broken storage backend.
type failingKV struct{}

var errBroken = errors.New("disk on fire")

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) { return nil, errBroken }
func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	return errBroken
}
func (f *failingKV) Delete(ctx context.Context, key string) error { return errBroken }
func (f *failingKV) Clear(ctx context.Context) error              { return errBroken }

func TestStore_StorageFailureIsSilent(t *testing.T) {
	ctx := context.Background()
	store := New(&failingKV{}, slog.Default())

	// None of these may panic or surface an error
	assert.Nil(t, store.User(ctx))
	store.SetUser(ctx, &models.User{ID: "u-1"})
	store.DeleteUser(ctx)
	assert.Empty(t, store.Token(ctx))
	store.SetToken(ctx, "tok")
	store.DeleteToken(ctx)
	assert.Empty(t, store.Theme(ctx))
	store.SetTheme(ctx, "dark")
	store.Clear(ctx)

	// Client id still gets generated even when it cannot be persisted
	assert.NotEmpty(t, store.ClientID(ctx))
}
