package lead

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
	"go-estate-crm/internal/features/project"
	"go-estate-crm/internal/features/settings"
	"go-estate-crm/internal/middleware"
	"go-estate-crm/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) LeadService {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryBackend(), "", nil)
	clock := func() time.Time { return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) }
	log := zap.NewNop()
	areas := area.NewAreaService(area.NewAreaRepository(store), events.Nop{}, clock, uuid.NewString, log)
	projects := project.NewProjectService(project.NewProjectRepository(store), areas, events.Nop{}, clock, uuid.NewString, log)
	reps := settings.NewSettingsService(settings.NewSettingsRepository(store), events.Nop{}, clock, uuid.NewString, log)
	return NewLeadService(NewLeadRepository(store), areas, projects, reps, events.Nop{}, clock, uuid.NewString,
		&config.Config{DefaultRegion: "EG"}, log)
}

func TestLeadService_AddLeadResolvesNames(t *testing.T) {
	svc := newTestService(t)
	budget := 3000000.0

	l, err := svc.AddLead(context.Background(), models.LeadInput{
		Name:       "Hany",
		Phone:      "+20 100 000 0001",
		AreaID:     "3",
		ProjectID:  "4",
		AssignedTo: "sales-2",
		Budget:     &budget,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sheikh Zayed", l.AreaName)
	assert.Equal(t, "Zed Towers", l.ProjectName)
	assert.Equal(t, "Sara Sales", l.AssignedToName)
	assert.Equal(t, models.LeadStatusNew, l.Status)
	assert.Equal(t, models.FollowUpPending, l.FollowUp)
	require.NotNil(t, l.Budget)
	assert.Equal(t, budget, *l.Budget)
	assert.Equal(t, l.ID, svc.ListLeads()[0].ID)
}

func TestLeadService_AddLeadKeepsSuppliedNameOnMiss(t *testing.T) {
	svc := newTestService(t)

	l, err := svc.AddLead(context.Background(), models.LeadInput{
		Name:        "Hany",
		Phone:       "1",
		ProjectID:   "gone",
		ProjectName: "Typed By Hand",
		AreaID:      "gone",
	})
	require.NoError(t, err)
	assert.Equal(t, "Typed By Hand", l.ProjectName)
	assert.Empty(t, l.AreaName)
}

func TestLeadService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	status := models.LeadStatusClosed
	l, found, err := svc.UpdateLead(ctx, "2", models.LeadPatch{Status: &status})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.LeadStatusClosed, l.Status)
	assert.Equal(t, "Sara Hassan", l.Name)

	removed, err := svc.DeleteLead(ctx, "2")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = svc.DeleteLead(ctx, "2")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, svc.ListLeads(), 5)
}

func TestWhatsAppLink(t *testing.T) {
	withProject := models.Lead{Name: "Sara", Phone: "+20 112 987 6543", ProjectName: "Madinaty"}
	link := WhatsAppLink(withProject, "EG")
	assert.Contains(t, link, "https://wa.me/201129876543?text=")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "Madinaty")
	assert.Contains(t, link, "%20")

	noProject := models.Lead{Name: "Omar", Phone: "0100 555 6666"}
	assert.Contains(t, Greeting(noProject), "عقاراتنا")
	assert.Contains(t, WhatsAppLink(noProject, "EG"), "https://wa.me/201005556666?text=")
}

func TestLeadController_ListFiltersByRole(t *testing.T) {
	svc := newTestService(t)
	ctrl := NewLeadController(svc)

	withUser := func(u *models.User) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals(middleware.CurrentUserKey, u)
			return c.Next()
		}
	}

	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"admin", &models.User{ID: "admin-1", Role: models.RoleAdmin}, 6},
		{"sales", &models.User{ID: "sales-2", Role: models.RoleSales}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/api/leads", withUser(tt.user), ctrl.ListLeads)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/leads", nil))
			require.NoError(t, err)
			var leads []models.Lead
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&leads))
			assert.Len(t, leads, tt.want)
		})
	}
}
