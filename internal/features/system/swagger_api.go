package system

import (
	"go-estate-crm/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

type SwaggerApi struct {
	Handler fiber.Handler
}

func NewSwaggerApi() api.Route {
	return &SwaggerApi{
		Handler: swagger.New(swagger.Config{
			Title:        "Estate CRM API",
			DeepLinking:  true,
			DocExpansion: "list",
		}),
	}
}

func (h *SwaggerApi) Setup(app *fiber.App) {
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html", fiber.StatusMovedPermanently)
	})
	app.Get("/swagger/*", h.Handler)
}
