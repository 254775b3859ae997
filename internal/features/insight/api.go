package insight

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InsightApi struct {
	Controller *InsightController
	Gate       middleware.SessionGate
}

func NewInsightApi(controller *InsightController, gate middleware.SessionGate) api.Route {
	return &InsightApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (a *InsightApi) Setup(app *fiber.App) {
	group := app.Group("/api/insights", middleware.RequireSession(a.Gate))

	group.Get("/areas", a.Controller.GetAreaInsights)
	group.Get("/dashboard", a.Controller.GetDashboard)
	group.Get("/dangling", a.Controller.GetDanglingReferences)
}
