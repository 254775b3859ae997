package area

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AreaApi struct {
	Controller *AreaController
	Gate       middleware.SessionGate
}

func NewAreaApi(controller *AreaController, gate middleware.SessionGate) api.Route {
	return &AreaApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (a *AreaApi) Setup(app *fiber.App) {
	group := app.Group("/api/areas", middleware.RequireSession(a.Gate))

	group.Get("/", a.Controller.ListAreas)
	group.Post("/", a.Controller.CreateArea)
	group.Patch("/:id", a.Controller.UpdateArea)
	group.Delete("/:id", a.Controller.DeleteArea)
}
