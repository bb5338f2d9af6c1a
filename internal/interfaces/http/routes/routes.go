package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/config"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/filters"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/repositories"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/export"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/metrics"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/interfaces/http/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config, m *metrics.Metrics) {
	setupRoutes(app, db, cfg, m, time.Now)
}

func setupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config, m *metrics.Metrics, clock func() time.Time) {
	app.Use(middleware.PerformanceLogger(m))

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

	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	h := handlers.NewHandlers(newUseCases(db, cfg, clock), m)

	groups := middleware.SetupRouteGroups(app, middleware.AdminAuth(cfg.JWTSecret))

	// Formulário público
	groups.Public.Get("/form/options", h.Survey.GetFormOptions)
	groups.Public.Get("/schools", h.School.GetSchools)
	groups.Public.Post("/surveys", h.Survey.Submit)
	groups.Public.Post("/surveys/steps/:step/validate", h.Survey.ValidateStep)

	// Respostas (admin); export antes de :id
	groups.Admin.Get("/surveys", h.Survey.GetSurveys)
	groups.Admin.Get("/surveys/export", h.Export.Export)
	groups.Admin.Get("/surveys/:id", h.Survey.GetSurvey)
	groups.Admin.Patch("/surveys/:id/status", h.Survey.UpdateStatus)

	groups.Admin.Get("/dashboard", h.Dashboard.GetDashboard)

	// Escolas (admin)
	groups.Admin.Get("/schools", h.School.GetAllSchools)
	groups.Admin.Post("/schools", h.School.CreateSchool)
	groups.Admin.Put("/schools/:id", h.School.RenameSchool)
	groups.Admin.Delete("/schools/:id", h.School.DeleteSchool)
}

func newUseCases(db *gorm.DB, cfg config.Config, clock func() time.Time) *usecases.UseCases {
	// Repositories
	surveyRepo := repositories.NewSurveyRepository(db)
	schoolRepo := repositories.NewSchoolRepository(db)

	engine := filters.NewEngine(cfg.Location, clock)
	validator := usecases.NewIntakeValidator(cfg.Location, clock)

	return &usecases.UseCases{
		Surveys:   usecases.NewSurveyUseCase(surveyRepo, schoolRepo, engine, validator),
		Schools:   usecases.NewSchoolUseCase(schoolRepo),
		Dashboard: usecases.NewDashboardUseCase(surveyRepo, engine, cfg.Dashboard),
		Export:    usecases.NewExportUseCase(surveyRepo, engine, export.NewRenderer(cfg.Location)),
	}
}
