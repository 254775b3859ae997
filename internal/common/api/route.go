package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature's Api and collected through the fx "routes" group.
type Route interface {
	Setup(app *fiber.App)
}
