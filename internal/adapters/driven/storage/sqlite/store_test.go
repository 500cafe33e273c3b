package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store := newTestStore(t)

	assert.Contains(t, store.Path(), "profiles.db")
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profile := domain.Profile{
		ID:        "p1",
		Name:      "alice",
		Token:     "T",
		Secret:    "S",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, profile))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "T", got.Token)
	assert.Equal(t, "S", got.Secret)
	assert.WithinDuration(t, profile.CreatedAt, got.CreatedAt, time.Second)
}

func TestStore_Save_UpdatesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profile := domain.Profile{ID: "p1", Name: "alice", Token: "T1", Secret: "S1", CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, profile))

	profile.Token = "T2"
	profile.Secret = "S2"
	require.NoError(t, store.Save(ctx, profile))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Token)

	profiles, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_GetByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Profile{ID: "p1", Name: "alice", Token: "T", Secret: "S", CreatedAt: time.Now()}))

	got, err := store.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)

	_, err = store.GetByName(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_List_OrderedByCreation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, domain.Profile{ID: "p2", Name: "second", Token: "T", Secret: "S", CreatedAt: now.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, domain.Profile{ID: "p1", Name: "first", Token: "T", Secret: "S", CreatedAt: now}))

	profiles, err := store.List(ctx)

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "first", profiles[0].Name)
	assert.Equal(t, "second", profiles[1].Name)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Profile{ID: "p1", Name: "alice", Token: "T", Secret: "S", CreatedAt: time.Now()}))

	require.NoError(t, store.Delete(ctx, "p1"))

	_, err := store.Get(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
