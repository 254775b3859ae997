package settings

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SettingsApi struct {
	Controller *SettingsController
	Gate       middleware.SessionGate
}

func NewSettingsApi(controller *SettingsController, gate middleware.SessionGate) api.Route {
	return &SettingsApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (a *SettingsApi) Setup(app *fiber.App) {
	app.Get("/api/options", middleware.RequireSession(a.Gate), a.Controller.GetOptions)

	group := app.Group("/api/settings", middleware.RequireAdmin(a.Gate))

	group.Get("/lead-sources", a.Controller.GetLeadSources)
	group.Post("/lead-sources", a.Controller.AddLeadSource)
	group.Delete("/lead-sources/:id", a.Controller.RemoveLeadSource)

	group.Get("/unit-types", a.Controller.GetUnitTypes)
	group.Post("/unit-types", a.Controller.AddUnitType)
	group.Delete("/unit-types/:id", a.Controller.RemoveUnitType)

	group.Get("/sales-reps", a.Controller.GetSalesReps)
	group.Post("/sales-reps", a.Controller.AddSalesRep)
	group.Delete("/sales-reps/:id", a.Controller.RemoveSalesRep)
	group.Post("/sales-reps/:id/toggle", a.Controller.ToggleSalesRep)
}
