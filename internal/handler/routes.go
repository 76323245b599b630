package handler

import (
	"lingua-progress/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes mounts the API on app.
func RegisterRoutes(app *fiber.App, progressHandler *ProgressHandler, healthHandler *HealthHandler) {
	validator := middleware.NewValidationMiddleware()

	app.Get("/health", healthHandler.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	progressGroup := apiGroup.Group("/UserTestProgress")
	progressGroup.Put("/UpdateIsCorrect/:id", validator.ValidateUpdateIsCorrect(), progressHandler.UpdateIsCorrect)
}
