package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/config"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/features/area"
	"go-estate-crm/internal/features/lead"
	"go-estate-crm/internal/features/project"
	"go-estate-crm/internal/features/settings"
	"go-estate-crm/internal/features/unit"
	"go-estate-crm/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type signedIn struct{}

func (signedIn) Current() *models.User {
	return &models.User{ID: "admin-1", Role: models.RoleAdmin, IsActive: true}
}

func newTestService(t *testing.T) (InsightService, area.AreaService) {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryBackend(), "", nil)
	clock := func() time.Time { return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) }
	log := zap.NewNop()

	areas := area.NewAreaService(area.NewAreaRepository(store), events.Nop{}, clock, uuid.NewString, log)
	projects := project.NewProjectService(project.NewProjectRepository(store), areas, events.Nop{}, clock, uuid.NewString, log)
	units := unit.NewUnitService(unit.NewUnitRepository(store), projects, events.Nop{}, clock, uuid.NewString, log)
	reps := settings.NewSettingsService(settings.NewSettingsRepository(store), events.Nop{}, clock, uuid.NewString, log)
	leads := lead.NewLeadService(lead.NewLeadRepository(store), areas, projects, reps, events.Nop{}, clock, uuid.NewString,
		&config.Config{DefaultRegion: "EG"}, log)

	return NewInsightService(areas, projects, units, leads, reps), areas
}

func TestInsightService_DeletedAreaLeavesDanglingReferences(t *testing.T) {
	svc, areas := newTestService(t)
	assert.Empty(t, svc.DanglingReferences())

	removed, err := areas.DeleteArea(context.Background(), "5")
	require.NoError(t, err)
	require.True(t, removed)

	dangling := svc.DanglingReferences()
	require.Len(t, dangling, 3)
	for _, d := range dangling {
		assert.Equal(t, "areaId", d.Field)
		assert.Equal(t, "5", d.RefID)
	}

	for _, row := range svc.AreaInsights() {
		assert.NotEqual(t, "5", row.AreaID)
	}
}

func TestInsightApi_Dashboard(t *testing.T) {
	svc, _ := newTestService(t)
	app := fiber.New()
	NewInsightApi(NewInsightController(svc), signedIn{}).Setup(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/insights/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.DashboardStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 6, stats.TotalLeads)
	assert.Equal(t, 3, stats.ActiveProjects)
	assert.Equal(t, 5, stats.AreasCovered)
	assert.Equal(t, 4, stats.AvailableUnits)
	assert.Len(t, stats.RecentLeads, 5)
	require.NotEmpty(t, stats.TopAreas)
	assert.Equal(t, "1", stats.TopAreas[0].AreaID)
}
