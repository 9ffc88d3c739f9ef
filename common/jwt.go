package common

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.scnd.dev/open/grove/type/predefine"
)

// Jwt guards mutating routes with a bearer token when a secret is configured.
// Without a secret the middleware passes everything through.
func Jwt(config *Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		if config.JwtSecret == nil {
			return c.Next()
		}

		// * extract bearer token
		header := c.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		// * parse claims
		claims := new(predefine.LoginClaims)
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			return []byte(*config.JwtSecret), nil
		})
		if err != nil || !parsed.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
