package middleware

import (
	"go-estate-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the fiber.Locals key holding the session user.
const CurrentUserKey = "currentUser"

// SessionGate is the part of the session service the middleware needs.
type SessionGate interface {
	Current() *models.User
}

// RequireSession rejects requests while nobody is logged in and stores the
// session user in the request locals.
func RequireSession(gate SessionGate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := gate.Current()
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Login required",
			})
		}
		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}

// RequireAdmin lets only admin sessions through.
func RequireAdmin(gate SessionGate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := gate.Current()
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Login required",
			})
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied: Admin role required",
			})
		}
		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}

// UserFrom returns the user RequireSession stored, or nil.
func UserFrom(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(CurrentUserKey).(*models.User)
	return user
}
