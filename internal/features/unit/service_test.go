package unit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/features/area"
	"go-estate-crm/internal/features/project"
	"go-estate-crm/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *UnitServiceImpl {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryBackend(), "", nil)
	clock := func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	log := zap.NewNop()
	areas := area.NewAreaService(area.NewAreaRepository(store), events.Nop{}, clock, uuid.NewString, log)
	projects := project.NewProjectService(project.NewProjectRepository(store), areas, events.Nop{}, clock, uuid.NewString, log)
	return &UnitServiceImpl{
		Repo:           NewUnitRepository(store),
		ProjectService: projects,
		Events:         events.Nop{},
		Clock:          clock,
		NewID:          uuid.NewString,
		Logger:         log,
	}
}

func TestUnitService_AddUnitCopiesProjectFields(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.AddUnit(context.Background(), models.UnitInput{
		ProjectID:  "4",
		UnitNumber: "T2-101",
		Size:       120,
		Price:      2500000,
		OwnerName:  "Owner",
		OwnerPhone: "+20 100 000 1111",
	})
	require.NoError(t, err)

	assert.Equal(t, "Zed Towers", u.ProjectName)
	assert.Equal(t, "3", u.AreaID)
	assert.Equal(t, "Sheikh Zayed", u.AreaName)
	assert.Equal(t, models.UnitStatusAvailable, u.Status)
	assert.Equal(t, models.FinishingFullyFinished, u.FinishingStatus)
	assert.Equal(t, models.PaymentCash, u.PaymentMethod)
	assert.NotNil(t, u.Photos)
	assert.Equal(t, u.ID, svc.ListUnits()[0].ID)
}

func TestUnitService_AddUnitUnknownProject(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.AddUnit(context.Background(), models.UnitInput{ProjectID: "gone", UnitNumber: "1"})
	require.NoError(t, err)
	assert.Empty(t, u.ProjectName)
	assert.Empty(t, u.AreaID)
	assert.Empty(t, u.AreaName)
}

func TestUnitService_PhotosAreCopied(t *testing.T) {
	svc := newTestService(t)
	photos := []string{"data:image/png;base64,AAAA"}

	u, err := svc.AddUnit(context.Background(), models.UnitInput{ProjectID: "1", UnitNumber: "1", Photos: photos})
	require.NoError(t, err)
	photos[0] = "changed"

	stored, ok := svc.GetUnit(u.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"data:image/png;base64,AAAA"}, stored.Photos)
}

func TestUnitFilter(t *testing.T) {
	svc := newTestService(t)

	ids := func(units []models.Unit) []string {
		out := []string{}
		for _, u := range units {
			out = append(out, u.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter UnitFilter
		want   []string
	}{
		{"no filter", UnitFilter{}, []string{"1", "2", "3", "4", "5"}},
		{"all keyword", UnitFilter{AreaID: FilterAll, PaymentMethod: FilterAll}, []string{"1", "2", "3", "4", "5"}},
		{"area", UnitFilter{AreaID: "1"}, []string{"1", "3"}},
		{"payment", UnitFilter{PaymentMethod: "installments"}, []string{"2", "3", "5"}},
		{"min size", UnitFilter{MinSize: 185}, []string{"1", "2", "4"}},
		{"size range", UnitFilter{MinSize: 140, MaxSize: 150}, []string{"3", "5"}},
		{"combined", UnitFilter{AreaID: "1", PaymentMethod: "cash"}, []string{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(svc.FilterUnits(tt.filter)))
		})
	}
}

func TestUnitController_ListUnitsParsesQuery(t *testing.T) {
	app := fiber.New()
	app.Get("/api/units", NewUnitController(newTestService(t)).ListUnits)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/units?areaId=1&minSize=150", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var units []models.Unit
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&units))
	require.Len(t, units, 1)
	assert.Equal(t, "B7-205", units[0].UnitNumber)
}
