package unit

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UnitApi struct {
	Controller *UnitController
	Gate       middleware.SessionGate
}

func NewUnitApi(controller *UnitController, gate middleware.SessionGate) api.Route {
	return &UnitApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (a *UnitApi) Setup(app *fiber.App) {
	group := app.Group("/api/units", middleware.RequireSession(a.Gate))

	group.Get("/", a.Controller.ListUnits)
	group.Post("/", a.Controller.CreateUnit)
	group.Patch("/:id", a.Controller.UpdateUnit)
	group.Delete("/:id", a.Controller.DeleteUnit)
}
