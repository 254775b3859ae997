package api

import (
	"go-estate-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// Notification is the outcome shape the client shows as a toast.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Data        any    `json:"data,omitempty"`
}

func Notify(c *fiber.Ctx, status int, title, description string, data any) error {
	return c.Status(status).JSON(Notification{
		Title:       title,
		Description: description,
		Data:        data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ParseAndValidate decodes the JSON body into dst and runs its validate tags.
// It writes the 400 response itself and returns ok=false when the body is rejected.
func ParseAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Missing or invalid fields",
			"fields": utils.ValidationErrors(err),
		})
	}
	return true, nil
}
