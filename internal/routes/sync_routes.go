package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
	"placement-backend/internal/syncer"
)

func SetupRoutesSync(app *fiber.App, gw *syncer.Gateway, adminOnly fiber.Handler) {
	syncGroup := app.Group("/sync", adminOnly)

	syncGroup.Post("/refresh", controllers.RefreshHandler(gw))
	syncGroup.Get("/status", controllers.SyncStatusHandler(gw))
}
