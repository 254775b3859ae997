package main

import (
	"context"
	"fmt"
	"log"

	_ "go-estate-crm/docs" // Import swagger docs
	common_api "go-estate-crm/internal/common/api"
	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/config"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/features/area"
	"go-estate-crm/internal/features/auth"
	"go-estate-crm/internal/features/export"
	"go-estate-crm/internal/features/insight"
	"go-estate-crm/internal/features/language"
	"go-estate-crm/internal/features/lead"
	"go-estate-crm/internal/features/project"
	"go-estate-crm/internal/features/settings"
	"go-estate-crm/internal/features/system"
	"go-estate-crm/internal/features/unit"
	"go-estate-crm/internal/logger"
	"go-estate-crm/internal/middleware"
	"go-estate-crm/internal/storage"
	"go-estate-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// @title           Estate CRM API
// @version         1.0
// @description     Leads, projects, areas and units for a real-estate sales team.
// @host            localhost:8080
// @BasePath        /

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware(cfg))

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route, log *zap.Logger) {
	log.Info("Registering routes", zap.Int("count", len(routes)))
	for _, route := range routes {
		log.Debug("Setting up route", zap.String("type", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`, ``),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				logger.Info("HTTP server listening", zap.String("addr", port))
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// NewClock hands out one monotonic clock so createdAt never goes backwards.
func NewClock() models.Clock {
	return utils.NewMonotonicClock(nil).Now
}

func NewIDGenerator() models.IDGenerator {
	return utils.NewID
}

func NewPublisher(bus *events.Bus) events.Publisher {
	return bus
}

func NewSessionGate(sessions auth.SessionService) middleware.SessionGate {
	return sessions
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Persistent store
			storage.NewBackend,
			storage.NewStoreFromConfig,

			// Shared plumbing
			events.NewBus,
			NewPublisher,
			NewClock,
			NewIDGenerator,

			// Initialize Repository
			area.NewAreaRepository,
			project.NewProjectRepository,
			unit.NewUnitRepository,
			lead.NewLeadRepository,
			settings.NewSettingsRepository,
			auth.NewSessionRepository,

			// Initialize Service
			area.NewAreaService,
			project.NewProjectService,
			unit.NewUnitService,
			lead.NewLeadService,
			settings.NewSettingsService,
			auth.NewSessionService,
			NewSessionGate,
			insight.NewInsightService,
			language.NewLanguageService,
			export.NewExportService,

			// Initialize Controller
			area.NewAreaController,
			project.NewProjectController,
			unit.NewUnitController,
			lead.NewLeadController,
			settings.NewSettingsController,
			auth.NewAuthController,
			insight.NewInsightController,
			language.NewLanguageController,
			export.NewExportController,
			system.NewWebSocketController,
			system.NewHealthController,

			// Initialize Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(area.NewAreaApi),
			AsRoute(project.NewProjectApi),
			AsRoute(unit.NewUnitApi),
			AsRoute(lead.NewLeadApi),
			AsRoute(settings.NewSettingsApi),
			AsRoute(insight.NewInsightApi),
			AsRoute(language.NewLanguageApi),
			AsRoute(export.NewExportApi),
			AsRoute(system.NewWebSocketApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
