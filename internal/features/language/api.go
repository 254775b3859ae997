package language

import (
	"go-estate-crm/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type LanguageApi struct {
	Controller *LanguageController
}

func NewLanguageApi(controller *LanguageController) api.Route {
	return &LanguageApi{Controller: controller}
}

// Setup registers the language routes. They are public, like the login page's language switch.
func (a *LanguageApi) Setup(app *fiber.App) {
	group := app.Group("/api/language")

	group.Get("/", a.Controller.GetLanguage)
	group.Put("/", a.Controller.SetLanguage)
	group.Get("/translate/:key", a.Controller.Translate)
}
