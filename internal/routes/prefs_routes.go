package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
	"placement-backend/internal/store"
)

func SetupRoutesPreferences(app *fiber.App, st *store.Store) {
	app.Get("/preferences", controllers.GetPreferencesHandler(st))
	app.Put("/preferences", controllers.SetPreferencesHandler(st))
}
