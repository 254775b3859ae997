package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)

	_, found, err := f.Get(ctx, "crm_units")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, f.Set(ctx, "crm_units", []byte(`[{"id":"1"}]`)))
	raw, found, err := f.Get(ctx, "crm_units")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"1"}]`, string(raw))

	_, statErr := os.Stat(filepath.Join(dir, "crm_units.json"))
	assert.NoError(t, statErr)

	require.NoError(t, f.Delete(ctx, "crm_units"))
	require.NoError(t, f.Delete(ctx, "crm_units"))
	_, found, err = f.Get(ctx, "crm_units")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileBackend_KeysAreSanitized(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "../escape:key", []byte("1")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".._escape_key.json", entries[0].Name())
}
