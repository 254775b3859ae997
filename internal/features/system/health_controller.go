package system

import (
	"go-estate-crm/internal/config"
	"go-estate-crm/internal/events"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	Config *config.Config
	Bus    *events.Bus
}

func NewHealthController(cfg *config.Config, bus *events.Bus) *HealthController {
	return &HealthController{Config: cfg, Bus: bus}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"store":       h.Config.StoreDriver,
		"environment": h.Config.Environment,
		"subscribers": h.Bus.SubscriberCount(),
	})
}
