package system

import (
	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WebSocketApi struct {
	Controller *WebSocketController
	Gate       middleware.SessionGate
}

func NewWebSocketApi(controller *WebSocketController, gate middleware.SessionGate) api.Route {
	return &WebSocketApi{
		Controller: controller,
		Gate:       gate,
	}
}

func (h *WebSocketApi) Setup(app *fiber.App) {
	app.Use("/api/ws", middleware.RequireSession(h.Gate), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/api/ws/insights", websocket.New(h.Controller.HandleInsights))
}
