package middleware

import (
	"strings"

	"go-estate-crm/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORSMiddleware allows the configured front-end origins to call the API with credentials.
// Credentials are not allowed together with a wildcard origin.
func CORSMiddleware(cfg *config.Config) fiber.Handler {
	origins := strings.Join(cfg.CORSOrigins, ",")
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,X-Requested-With",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: origins != "*",
	})
}
