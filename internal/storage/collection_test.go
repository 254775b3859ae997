package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordID(r record) string { return r.ID }

func newTestCollection(t *testing.T, backend Backend, defaults []record) *Collection[record] {
	t.Helper()
	return NewCollection(context.Background(), NewStore(backend, "", nil), "records", defaults, recordID)
}

func TestCollection_HydratesFromStoreOrDefaults(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	c := newTestCollection(t, backend, []record{{ID: "seed"}})
	assert.Equal(t, []record{{ID: "seed"}}, c.All())

	require.NoError(t, backend.Set(ctx, "records", []byte(`[{"id":"stored","name":"x"}]`)))
	c = newTestCollection(t, backend, []record{{ID: "seed"}})
	assert.Equal(t, []record{{ID: "stored", Name: "x"}}, c.All())
}

func TestCollection_PrependAndAppendOrder(t *testing.T) {
	ctx := context.Background()
	c := newTestCollection(t, NewMemoryBackend(), []record{{ID: "b"}})

	require.NoError(t, c.Prepend(ctx, record{ID: "a"}))
	require.NoError(t, c.Append(ctx, record{ID: "c"}))

	assert.Equal(t, []record{{ID: "a"}, {ID: "b"}, {ID: "c"}}, c.All())
}

func TestCollection_EveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	c := newTestCollection(t, backend, nil)

	require.NoError(t, c.Prepend(ctx, record{ID: "1", Name: "one"}))
	reloaded := newTestCollection(t, backend, nil)
	assert.Equal(t, c.All(), reloaded.All())

	_, found, err := c.Update(ctx, "1", func(r *record) { r.Name = "uno" })
	require.NoError(t, err)
	require.True(t, found)
	reloaded = newTestCollection(t, backend, nil)
	assert.Equal(t, "uno", reloaded.All()[0].Name)
}

func TestCollection_UpdateUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{MemoryBackend: NewMemoryBackend(), writeErr: errors.New("must not write")}
	c := newTestCollection(t, backend, []record{{ID: "1"}})

	_, found, err := c.Update(ctx, "nope", func(r *record) { r.Name = "x" })
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []record{{ID: "1"}}, c.All())
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newTestCollection(t, NewMemoryBackend(), []record{{ID: "1"}, {ID: "2"}})

	removed, err := c.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)
	afterFirst := c.All()

	removed, err = c.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, afterFirst, c.All())
}

func TestCollection_FailedSaveKeepsMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{MemoryBackend: NewMemoryBackend()}
	c := newTestCollection(t, backend, []record{{ID: "1"}})

	backend.writeErr = errors.New("quota exceeded")
	err := c.Prepend(ctx, record{ID: "2"})
	require.Error(t, err)
	assert.Equal(t, []record{{ID: "1"}}, c.All())
}

func TestCollection_FindAndFilter(t *testing.T) {
	c := newTestCollection(t, NewMemoryBackend(), []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}, {ID: "3", Name: "a"}})

	got, ok := c.Find("2")
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)

	_, ok = c.Find("9")
	assert.False(t, ok)

	assert.Equal(t, []record{{ID: "1", Name: "a"}, {ID: "3", Name: "a"}}, c.Filter(func(r record) bool { return r.Name == "a" }))
}
