package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"placement-backend/dto"
)

// LoginHandler godoc
// @Summary Admin login
// @Description Exchange an admin passphrase for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Passphrase"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func LoginHandler(secret string, passphraseHashes [][]byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}

		ok := false
		for _, hash := range passphraseHashes {
			if bcrypt.CompareHashAndPassword(hash, []byte(body.Passphrase)) == nil {
				ok = true
				break
			}
		}
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid passphrase"})
		}

		claims := jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(72 * time.Hour).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		t, err := token.SignedString([]byte(secret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "could not sign token"})
		}

		return c.JSON(dto.LoginResponse{AccessToken: t})
	}
}
