package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

const identityKey = "auth_identity"

// AuthRequired is a Fiber middleware that resolves the bearer token to a
// tenant identity. The authenticator is whichever login flow the deployment
// selected; the middleware does not care which. Missing, malformed and
// expired tokens all answer 401 but are logged apart.
func AuthRequired(auth services.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication token not provided",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization header format must be 'Bearer <token>'",
			})
		}

		identity, err := auth.Authenticate(parts[1])
		if err != nil {
			log.Printf("Authentication failed: %v", err)
			message := "invalid token"
			if errors.Is(err, services.ErrTokenExpired) {
				message = "token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": message,
			})
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFrom returns the identity stored by AuthRequired, or nil when the
// request did not pass through it.
func IdentityFrom(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(identityKey).(*services.Identity)
	return identity
}
