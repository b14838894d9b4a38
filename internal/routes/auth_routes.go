package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/internal/controllers"
)

func SetupAuth(app *fiber.App, secret string, passphraseHashes [][]byte) {
	app.Post("/auth/login", controllers.LoginHandler(secret, passphraseHashes))
}
