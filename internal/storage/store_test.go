package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("emissions", []byte(`{"days":{}}`)))

	blob, err := store.Load("emissions")
	require.NoError(t, err)
	assert.Equal(t, `{"days":{}}`, string(blob))
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("theme", []byte("light")))
	require.NoError(t, store.Save("theme", []byte("dark")))

	blob, err := store.Load("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", string(blob))
}

func TestFileStoreMiss(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("never-written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreInvalidKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	tests := []string{"", "a/b", "../escape", "a b"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, store.Save(key, []byte("x")), ErrInvalidKey)
			_, err := store.Load(key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("emissions", []byte("{}")))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreSaveFailureIsPersistenceError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions do not apply to root")
	}

	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	// Make the directory read-only so the write fails.
	require.NoError(t, os.Chmod(dir, 0500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0750) })

	saveErr := store.Save("emissions", []byte("{}"))
	require.Error(t, saveErr)

	var perr *PersistenceError
	assert.ErrorAs(t, saveErr, &perr)
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()

	_, err := store.Load("emissions")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save("emissions", []byte("abc")))
	blob, err := store.Load("emissions")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(blob))

	// Mutating the returned slice must not affect the stored value.
	blob[0] = 'x'
	again, err := store.Load("emissions")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
