package routes

import (
	"time"

	"github.com/acamposr/event-surveys-api/internal/application/identity"
	"github.com/acamposr/event-surveys-api/internal/application/usecases"
	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
	"github.com/acamposr/event-surveys-api/internal/infrastructure/platform"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/handlers"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, platformClient *platform.Client) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	overrideRepo := repositories.NewOverrideRepository(db)

	// 20 confirmaciones/minuto/IP, burst 5; suficiente para un usuario
	// real, frena reintentos en loop del front
	completeLimiter := middleware.NewIPRateLimiter(20, 5, 5*time.Minute)

	// Identity
	sessions := identity.NewProvider(platformClient)
	resolver := identity.NewResolver()

	// Use Cases
	catalogUseCase := usecases.NewCatalogUseCase(platformClient)
	statusUseCase := usecases.NewStatusUseCase(overrideRepo)
	completionUseCase := usecases.NewCompletionUseCase(platformClient, overrideRepo, statusUseCase)
	statisticsUseCase := usecases.NewStatisticsUseCase(platformClient)

	// Handlers
	surveyHandler := handlers.NewSurveyHandler(catalogUseCase, statusUseCase, sessions, resolver)
	completionHandler := handlers.NewCompletionHandler(completionUseCase, sessions, resolver)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsUseCase)

	api := app.Group("/api/v1", middleware.BearerToken())

	surveys := api.Group("/surveys")
	surveys.Get("/", surveyHandler.GetSurveys)
	surveys.Post("/:id/open", middleware.RequireBearer(), completionHandler.OpenSurveyForm)
	surveys.Post("/:id/complete", middleware.RequireBearer(), middleware.RateLimitByIP(completeLimiter), completionHandler.CompleteSurvey)
	surveys.Get("/:id/statistics", middleware.RequireBearer(), statisticsHandler.GetSurveyStatistics)
}
