package keys

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

func TestFileStore_Load_MissingFile(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load()

	assert.ErrorIs(t, err, domain.ErrNoConsumerKeys)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	saved := domain.Keys{
		ConsumerKey:       "ck",
		ConsumerSecret:    "cs",
		AccessToken:       "at",
		AccessTokenSecret: "as",
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileStore_Save_RestrictsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save(domain.Keys{ConsumerKey: "ck", ConsumerSecret: "cs"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_Load_MissingConsumerPair(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keys.toml"), []byte("access_token = \"at\"\n"), 0600))

	_, err = store.Load()

	assert.ErrorIs(t, err, domain.ErrNoConsumerKeys)
}

func TestFileStore_Load_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keys.toml"), []byte("not toml ["), 0600))

	_, err = store.Load()

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoConsumerKeys)
}

func TestNewFileStore_DefaultsToHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := NewFileStore("")

	require.NoError(t, err)
	assert.Contains(t, store.Path(), ".plurk")
}
