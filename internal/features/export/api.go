package export

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	Controller *ExportController
	Gate       middleware.SessionGate
}

func NewExportApi(controller *ExportController, gate middleware.SessionGate) api.Route {
	return &ExportApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (a *ExportApi) Setup(app *fiber.App) {
	group := app.Group("/api/export", middleware.RequireSession(a.Gate))

	group.Get("/leads.xlsx", a.Controller.ExportLeads)
	group.Get("/units.xlsx", a.Controller.ExportUnits)
}
