package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type failingBackend struct {
	*MemoryBackend
	readErr  error
	writeErr error
}

func (f *failingBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	return f.MemoryBackend.Get(ctx, key)
}

func (f *failingBackend) Set(ctx context.Context, key string, value []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.MemoryBackend.Set(ctx, key, value)
}

func TestLoad_AbsentKeyReturnsDefault(t *testing.T) {
	s := NewStore(NewMemoryBackend(), "", nil)
	def := []record{{ID: "1", Name: "seed"}}

	got := Load(context.Background(), s, "missing", def)
	assert.Equal(t, def, got)
}

func TestLoad_CorruptValueFailsOpen(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(context.Background(), "crm_areas", []byte("{not json")))
	s := NewStore(backend, "", nil)

	got := Load(context.Background(), s, "crm_areas", []record{{ID: "default"}})
	assert.Equal(t, []record{{ID: "default"}}, got)
}

func TestLoad_ReadErrorFailsOpen(t *testing.T) {
	backend := &failingBackend{MemoryBackend: NewMemoryBackend(), readErr: errors.New("disk gone")}
	s := NewStore(backend, "", nil)

	got := Load(context.Background(), s, "k", "fallback")
	assert.Equal(t, "fallback", got)
}

func TestSave_OverwritesAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryBackend(), "", nil)

	require.NoError(t, Save(ctx, s, "k", []record{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, Save(ctx, s, "k", []record{{ID: "3"}}))

	got := Load[[]record](ctx, s, "k", nil)
	assert.Equal(t, []record{{ID: "3"}}, got)
}

func TestSave_PropagatesWriteError(t *testing.T) {
	quota := errors.New("quota exceeded")
	backend := &failingBackend{MemoryBackend: NewMemoryBackend(), writeErr: quota}
	s := NewStore(backend, "", nil)

	err := Save(context.Background(), s, "k", []record{{ID: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, quota)
}

func TestStore_PrefixIsAppliedToKeys(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	s := NewStore(backend, "tenant-a:", nil)

	require.NoError(t, Save(ctx, s, "crm_leads", []record{}))
	assert.Equal(t, []string{"tenant-a:crm_leads"}, backend.Keys())

	require.NoError(t, s.Remove(ctx, "crm_leads"))
	assert.Empty(t, backend.Keys())
}
