package test_utils

import (
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// MockJWTMiddleware menggantikan middleware Protected di test handler:
// claims langsung disimpan di Locals tanpa token.
func MockJWTMiddleware(uid, email, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(utils.ClaimsLocalKey, &utils.JwtClaims{
			UID:   uid,
			Email: email,
			Role:  role,
		})
		return c.Next()
	}
}
