package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/config"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/database"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/metrics"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/interfaces/http/routes"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	slog.SetDefault(logger)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	cfg := config.Load()

	// Initialize database
	db, err := database.SetupDatabase(cfg)
	if err != nil {
		slog.Error("error setting up database", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Prefork desabilitado, causa instabilidade no container
		Prefork:      false,
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second, // exportações grandes
		IdleTimeout:  120 * time.Second,
	})

	middleware.SetupMiddlewares(app, cfg.CORSAllowOrigins)

	routes.SetupRoutes(app, db, cfg, metrics.New())

	slog.Info("server is running", "port", cfg.Port, "timezone", cfg.Timezone)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
