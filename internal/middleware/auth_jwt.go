package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type AdminClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AdminOnly rejects requests that do not carry a valid admin token.
// This backs the portal's passphrase gate: it keeps casual visitors out
// of the admin panel but is not a real access-control boundary (the
// passphrases are a shared allow-list, not per-user credentials).
func AdminOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims AdminClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		if claims.Role != "admin" {
			return fiber.NewError(fiber.StatusUnauthorized, "not an admin token")
		}

		c.Locals("role", claims.Role)
		return c.Next()
	}
}
