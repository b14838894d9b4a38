package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
	"placement-backend/internal/services"
)

func SetupRoutesStatus(app *fiber.App, svc *services.StatusService, adminOnly fiber.Handler) {
	status := app.Group("/statuses", adminOnly)

	status.Get("/", controllers.ListStatusesHandler(svc))
	status.Post("/", controllers.SaveStatusHandler(svc))
	status.Delete("/:record_id", controllers.DeleteStatusHandler(svc))
}
