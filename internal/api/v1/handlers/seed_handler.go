package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/database"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/metrics"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

type SeedHandler struct {
	SeedService service.SeedService
	Metrics     *metrics.Metrics
}

func NewSeedHandler(seedService service.SeedService, m *metrics.Metrics) *SeedHandler {
	return &SeedHandler{SeedService: seedService, Metrics: m}
}

// RunSeed godoc
// @Summary Jalankan seeding
// @Description Provisioning idempoten: pengguna, peran, destinasi, profil, referensi, kerangka data kunjungan, dan pengaturan.
// @Description Aman dijalankan berulang. Dapat dipicu admin atau header X-Seed-Token.
// @Tags Seed
// @Produce json
// @Param X-Seed-Token header string false "Token seeding"
// @Success 200 {object} models.Response{data=models.SeedReport}
// @Failure 401 {object} models.Response "Token tidak valid"
// @Failure 500 {object} models.Response{data=models.SeedReport} "Seeding gagal"
// @Router /seed [post]
func (h *SeedHandler) RunSeed(c *fiber.Ctx) error {
	report, err := h.SeedService.Run(c.Context())
	h.Metrics.SeedRun(err == nil)
	if err != nil {
		// Detail error tetap di log dan transcript; pesan respons tidak memuat teks database.
		zlog.Error().Err(err).Msg("Handler: seed run failed")
		return c.Status(http.StatusInternalServerError).JSON(models.Response{
			Success: false, Message: apperrors.UserMessage(err), Data: report,
		})
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Seeding selesai", Data: report,
	})
}

type HealthHandler struct {
	DB database.Pinger
}

func NewHealthHandler(db database.Pinger) *HealthHandler {
	return &HealthHandler{DB: db}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.Response
// @Failure 503 {object} models.Response "Database tidak dapat dihubungi"
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		zlog.Warn().Err(err).Msg("Health check: database ping failed")
		return c.Status(http.StatusServiceUnavailable).JSON(models.Response{
			Success: false, Message: "Database tidak dapat dihubungi",
		})
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "OK", Data: fiber.Map{"time": time.Now().UTC()},
	})
}
