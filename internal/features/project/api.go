package project

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProjectApi struct {
	Controller *ProjectController
	Gate       middleware.SessionGate
}

func NewProjectApi(controller *ProjectController, gate middleware.SessionGate) api.Route {
	return &ProjectApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (a *ProjectApi) Setup(app *fiber.App) {
	group := app.Group("/api/projects", middleware.RequireSession(a.Gate))

	group.Get("/", a.Controller.ListProjects)
	group.Post("/", a.Controller.CreateProject)
	group.Patch("/:id", a.Controller.UpdateProject)
	group.Delete("/:id", a.Controller.DeleteProject)

	app.Get("/api/areas/:id/projects", middleware.RequireSession(a.Gate), a.Controller.ListAreaProjects)
}
