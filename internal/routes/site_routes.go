package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
	"placement-backend/internal/services"
)

func SetupRoutesSite(app *fiber.App, svc *services.SiteService, adminOnly fiber.Handler) {
	site := app.Group("/sites")

	// Students browse sites without logging in.
	site.Get("/", controllers.ListSitesHandler(svc))

	// Mutations are admin-panel only.
	site.Post("/", adminOnly, controllers.CreateSiteHandler(svc))
	site.Put("/:site_id", adminOnly, controllers.UpdateSiteHandler(svc))
	site.Delete("/:site_id", adminOnly, controllers.DeleteSiteHandler(svc))
}
