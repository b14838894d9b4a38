package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
	"placement-backend/internal/services"
)

func SetupRoutesReport(app *fiber.App, svc *services.StatusService, adminOnly fiber.Handler) {
	app.Get("/report/export", adminOnly, controllers.ExportReportHandler(svc))
}
