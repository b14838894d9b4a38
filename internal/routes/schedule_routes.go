package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
	"placement-backend/internal/services"
)

func SetupRoutesSchedule(app *fiber.App, svc *services.ScheduleService, adminOnly fiber.Handler) {
	schedule := app.Group("/schedules")

	schedule.Get("/", controllers.ListSchedulesHandler(svc))

	schedule.Post("/", adminOnly, controllers.CreateScheduleHandler(svc))
	schedule.Put("/:event_id", adminOnly, controllers.UpdateScheduleHandler(svc))
	schedule.Delete("/:event_id", adminOnly, controllers.DeleteScheduleHandler(svc))
}
