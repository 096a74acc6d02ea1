package routes

import (
	"catprep/backend/config"
	"catprep/backend/controllers"
	"catprep/backend/middleware"
	"catprep/backend/questionbank"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, bank *questionbank.Loader) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Get("/api/user/activity", authMiddleware, userController.GetUserActivity)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetProgressOverview)

	// Tests routes
	testsController := controllers.NewTestsController(db, cfg, bank)
	app.Get("/api/tests/catalog", testsController.GetCatalog)
	tests := app.Group("/api/tests", authMiddleware)
	tests.Get("/history", testsController.GetHistory)
	tests.Post("/:id/submit", testsController.SubmitTest)
	tests.Get("/:id/result", testsController.GetTestResult)
	tests.Get("/:id/review", testsController.GetReview)

	// Analytics routes
	analyticsController := controllers.NewAnalyticsController(db, cfg)
	analytics := app.Group("/api/analytics", authMiddleware)
	analytics.Get("/:id/swot", analyticsController.GetSwot)
	analytics.Get("/:id/rankings", analyticsController.GetRankings)
	analytics.Get("/:id/topics", analyticsController.GetTopics)

	// Admin routes
	adminTests := app.Group("/api/admin/tests", adminMiddleware)
	adminTests.Get("/:id/analytics", analyticsController.GetTestAnalytics)
}
