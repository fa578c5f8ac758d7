// internal/middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// SeedTokenHeader adalah header alternatif untuk memicu seed tanpa JWT admin (bootstrap).
const SeedTokenHeader = "X-Seed-Token"

// TokenValidator memvalidasi token akses. *utils.JWTManager memenuhi interface ini.
type TokenValidator interface {
	Validate(token string) (*utils.JwtClaims, error)
}

// Protected memastikan request membawa token JWT yang valid dan menyimpan
// claims di c.Locals(utils.ClaimsLocalKey).
func Protected(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// --- 1. Ekstrak Token ---
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			zlog.Warn().Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt without token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: "Unauthorized: token tidak ditemukan",
			})
		}

		// --- 2. Validasi Token JWT ---
		claims, err := validator.Validate(tokenString)
		if err != nil {
			zlog.Warn().Err(err).Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt with invalid token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: "Unauthorized: token tidak valid",
			})
		}

		// --- 3. Simpan Claims ke Locals ---
		c.Locals(utils.ClaimsLocalKey, claims)
		zlog.Debug().Str("uid", claims.UID).Str("role", claims.Role).Msg("JWT authenticated, proceeding")
		return c.Next()
	}
}

// Authorize memeriksa peran di claims. Wajib dijalankan setelah Protected.
// Peran di token hanya saringan awal; service tetap memeriksa profil aktif.
func Authorize(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.ClaimsLocalKey).(*utils.JwtClaims)
		if !ok {
			zlog.Error().Str("path", c.Path()).Str("ip", c.IP()).Msg("User claims not found in context during authorization. Ensure Protected middleware runs first.")
			return c.Status(fiber.StatusForbidden).JSON(models.Response{
				Success: false, Message: "Forbidden: peran pengguna tidak diketahui",
			})
		}

		for _, role := range allowedRoles {
			if strings.EqualFold(claims.Role, role) {
				zlog.Debug().Str("uid", claims.UID).Str("role", claims.Role).Msg("Authorization successful, proceeding")
				return c.Next()
			}
		}

		zlog.Warn().Str("uid", claims.UID).Str("user_role", claims.Role).Strs("required_roles", allowedRoles).Str("path", c.Path()).Msg("Authorization failed: User role not permitted")
		return c.Status(fiber.StatusForbidden).JSON(models.Response{
			Success: false, Message: "Forbidden: hak akses tidak mencukupi",
		})
	}
}

// SeedTrigger mengizinkan JWT admin atau header X-Seed-Token yang cocok dengan token
// konfigurasi. Token kosong berarti jalur header dinonaktifkan.
func SeedTrigger(validator TokenValidator, seedToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if header := c.Get(SeedTokenHeader); header != "" {
			if seedToken != "" && subtle.ConstantTimeCompare([]byte(header), []byte(seedToken)) == 1 {
				zlog.Info().Str("ip", c.IP()).Msg("Seed triggered with seed token")
				return c.Next()
			}
			zlog.Warn().Str("ip", c.IP()).Msg("Seed trigger rejected: invalid seed token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: "Unauthorized: seed token tidak valid",
			})
		}

		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: "Unauthorized: token tidak ditemukan",
			})
		}
		claims, err := validator.Validate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: "Unauthorized: token tidak valid",
			})
		}
		if claims.Role != string(models.RoleAdmin) {
			zlog.Warn().Str("uid", claims.UID).Str("role", claims.Role).Msg("Seed trigger rejected: not admin")
			return c.Status(fiber.StatusForbidden).JSON(models.Response{
				Success: false, Message: "Forbidden: hanya admin yang dapat menjalankan seed",
			})
		}
		c.Locals(utils.ClaimsLocalKey, claims)
		return c.Next()
	}
}
