package lead

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LeadApi struct {
	Controller *LeadController
	Gate       middleware.SessionGate
}

func NewLeadApi(controller *LeadController, gate middleware.SessionGate) api.Route {
	return &LeadApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (a *LeadApi) Setup(app *fiber.App) {
	group := app.Group("/api/leads", middleware.RequireSession(a.Gate))

	group.Get("/", a.Controller.ListLeads)
	group.Post("/", a.Controller.CreateLead)
	group.Get("/:id", a.Controller.GetLead)
	group.Patch("/:id", a.Controller.UpdateLead)
	group.Delete("/:id", a.Controller.DeleteLead)
	group.Get("/:id/whatsapp", a.Controller.WhatsApp)
}
