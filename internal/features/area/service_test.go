package area

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type brokenBackend struct {
	*storage.MemoryBackend
}

func (brokenBackend) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func newTestService(t *testing.T, backend storage.Backend) (*AreaServiceImpl, *events.Bus) {
	t.Helper()
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	tick, seq := 0, 0
	bus := events.NewBus(nil)
	svc := &AreaServiceImpl{
		Repo:   NewAreaRepository(storage.NewStore(backend, "", nil)),
		Events: bus,
		Clock: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
		NewID: func() string {
			seq++
			return "area-" + strconv.Itoa(seq)
		},
		Logger: zap.NewNop(),
	}
	return svc, bus
}

func TestAreaService_SeedsDefaults(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryBackend())

	areas := svc.ListAreas()
	require.Len(t, areas, 5)
	assert.Equal(t, "1", areas[0].ID)
	assert.Equal(t, "New Cairo", areas[0].Name)
}

func TestAreaService_AddArea(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	svc, bus := newTestService(t, backend)
	changes, stop := bus.Subscribe(4)
	defer stop()

	first, err := svc.AddArea(ctx, models.AreaInput{Name: "Maadi", City: "Cairo"})
	require.NoError(t, err)
	second, err := svc.AddArea(ctx, models.AreaInput{Name: "Zamalek", City: "Cairo"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))

	areas := svc.ListAreas()
	require.Len(t, areas, 7)
	assert.Equal(t, second.ID, areas[0].ID)
	assert.Equal(t, first.ID, areas[1].ID)

	reloaded := NewAreaRepository(storage.NewStore(backend, "", nil))
	assert.Equal(t, areas, reloaded.FindAll())

	change := <-changes
	assert.Equal(t, models.CollectionAreas, change.Collection)
	assert.Equal(t, events.ActionCreate, change.Action)
	assert.Equal(t, first.ID, change.RecordID)
}

func TestAreaService_UpdateArea(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryBackend())

	city := "Giza"
	updated, found, err := svc.UpdateArea(ctx, "2", models.AreaPatch{City: &city})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Giza", updated.City)
	assert.Equal(t, "Sheikh Zayed", updated.Name)

	_, found, err = svc.UpdateArea(ctx, "missing", models.AreaPatch{City: &city})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAreaService_DeleteAreaTwice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryBackend())

	removed, err := svc.DeleteArea(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)
	after := svc.ListAreas()

	removed, err = svc.DeleteArea(ctx, "1")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, after, svc.ListAreas())
}

func TestAreaService_SaveFailureIsReturned(t *testing.T) {
	svc, _ := newTestService(t, brokenBackend{storage.NewMemoryBackend()})

	_, err := svc.AddArea(context.Background(), models.AreaInput{Name: "x", City: "y"})
	require.Error(t, err)
	assert.Len(t, svc.ListAreas(), 5)
}
