package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
	"placement-backend/internal/services"
)

func SetupRoutesForm(app *fiber.App, svc *services.FormService, adminOnly fiber.Handler) {
	form := app.Group("/forms")

	form.Get("/", controllers.ListFormsHandler(svc))

	form.Post("/", adminOnly, controllers.CreateFormHandler(svc))
	form.Post("/upload", adminOnly, controllers.UploadFormHandler(svc))
	form.Put("/:form_id", adminOnly, controllers.UpdateFormHandler(svc))
	form.Delete("/:form_id", adminOnly, controllers.DeleteFormHandler(svc))
}
