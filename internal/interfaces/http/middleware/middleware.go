package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

func SetupMiddlewares(app *fiber.App) {
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Request id para correlacionar logs con el front
	app.Use(func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals(CtxRequestID, requestID)
		c.Set("X-Request-Id", requestID)
		return c.Next()
	})
}
