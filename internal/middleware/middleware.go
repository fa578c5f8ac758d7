// internal/middleware/middleware.go
package middleware

import (
	"strings"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"  // Middleware untuk kompresi response (Gzip)
	"github.com/gofiber/fiber/v2/middleware/cors"      // Middleware untuk Cross-Origin Resource Sharing
	"github.com/gofiber/fiber/v2/middleware/limiter"   // Middleware untuk membatasi rate request
	"github.com/gofiber/fiber/v2/middleware/recover"   // Middleware untuk menangkap panic
	"github.com/gofiber/fiber/v2/middleware/requestid" // Middleware untuk menambahkan ID unik ke request
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// streamPrefix: response SSE tidak boleh dikompresi atau di-buffer.
const streamPrefix = "/api/v1/stream"

// SetupGlobalMiddleware mendaftarkan middleware standar untuk semua request.
// Urutan pendaftaran middleware penting.
func SetupGlobalMiddleware(app *fiber.App, allowOrigins string, m *metrics.Metrics) {
	// --- 1. Recover Middleware (Paling Awal) ---
	app.Use(recover.New())
	zlog.Info().Msg("Recover middleware registered")

	// --- 2. Request ID Middleware ---
	app.Use(requestid.New())
	zlog.Info().Msg("RequestID middleware registered")

	// --- 3. CORS Middleware ---
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + SeedTokenHeader,
	}))
	zlog.Info().Str("origins", allowOrigins).Msg("CORS middleware registered")

	// --- 4. Rate Limiter Middleware ---
	app.Use(limiter.New(limiter.Config{
		Max:               200,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), streamPrefix)
		},
	}))
	zlog.Info().Msg("Rate limiter middleware registered")

	// --- 5. Metrics Middleware ---
	app.Use(m.Middleware())
	zlog.Info().Msg("Metrics middleware registered")

	// --- 6. Logger Request Middleware (Custom Zerolog) ---
	app.Use(RequestLogger())
	zlog.Info().Msg("Request logger middleware registered")

	// --- 7. Compression Middleware ---
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), streamPrefix)
		},
	}))
	zlog.Info().Msg("Compress middleware registered")
}

// RequestLogger mencatat setiap request dengan level sesuai status.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		statusCode := c.Response().StatusCode()

		requestID, _ := c.Locals("requestid").(string)

		var logEvent *zerolog.Event
		switch {
		case err != nil:
			// ErrorHandler global yang akan menulis response.
			logEvent = zlog.Warn().Err(err)
		case statusCode >= 500:
			logEvent = zlog.Error()
		case statusCode >= 400:
			logEvent = zlog.Warn()
		default:
			logEvent = zlog.Info()
		}

		logEvent = logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent))
		if requestID != "" {
			logEvent = logEvent.Str("request_id", requestID)
		}
		logEvent.Msg("Request handled")
		return err
	}
}
