package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/acamposr/event-surveys-api/internal/infrastructure/database"
	"github.com/acamposr/event-surveys-api/internal/infrastructure/platform"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/middleware"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Cliente hacia el backend de la plataforma de eventos
	platformURL := os.Getenv("PLATFORM_API_URL")
	if platformURL == "" {
		log.Fatal("❌ PLATFORM_API_URL is not defined in the environment")
	}
	timeout := 15 * time.Second
	if raw := os.Getenv("PLATFORM_API_TIMEOUT"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}
	platformClient := platform.NewClient(platformURL, timeout)

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, platformClient)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
