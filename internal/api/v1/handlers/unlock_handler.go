package handlers

import (
	"net/http"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/metrics"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

type UnlockHandler struct {
	UnlockService service.UnlockService
	Metrics       *metrics.Metrics
	Validate      *validator.Validate
}

// NewUnlockHandler: m boleh nil (metrik dimatikan).
func NewUnlockHandler(unlockService service.UnlockService, m *metrics.Metrics) *UnlockHandler {
	return &UnlockHandler{
		UnlockService: unlockService,
		Metrics:       m,
		Validate:      validator.New(),
	}
}

// SubmitRequest godoc
// @Summary Ajukan permintaan buka kunci (Pengelola)
// @Description Membuat permintaan berstatus pending untuk periode yang terkunci.
// @Tags Unlock Requests
// @Accept json
// @Produce json
// @Param request body models.SubmitUnlockInput true "Periode dan alasan"
// @Success 201 {object} models.Response{data=models.UnlockRequest}
// @Failure 400 {object} models.Response "Validasi gagal"
// @Failure 403 {object} models.Response "Destinasi di luar penugasan"
// @Failure 409 {object} models.Response "Periode tidak terkunci atau sudah ada permintaan pending"
// @Security ApiKeyAuth
// @Router /unlock-requests [post]
func (h *UnlockHandler) SubmitRequest(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	input := new(models.SubmitUnlockInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	req, err := h.UnlockService.Submit(c.Context(), claims.UID, input)
	if err != nil {
		return respondError(c, err)
	}
	h.Metrics.UnlockSubmitted()

	zlog.Info().Str("request_id", req.ID).Str("destination_id", req.DestinationID).
		Int("year", req.Year).Int("month", req.Month).Msg("Handler: unlock request submitted")
	return c.Status(http.StatusCreated).JSON(models.Response{
		Success: true, Message: "Permintaan buka kunci berhasil diajukan", Data: req,
	})
}

// ListRequests godoc
// @Summary Daftar permintaan buka kunci
// @Description Admin melihat semua permintaan; pengelola hanya destinasi yang ditugaskan.
// @Tags Unlock Requests
// @Produce json
// @Param destinationId query string false "Filter destinasi"
// @Param status query string false "pending | approved | rejected"
// @Param page query int false "Nomor halaman" default(1)
// @Param limit query int false "Jumlah per halaman" default(20) maximum(100)
// @Success 200 {object} utils.PaginatedResponseGeneric
// @Security ApiKeyAuth
// @Router /unlock-requests [get]
func (h *UnlockHandler) ListRequests(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	pagination := utils.ParsePaginationParams(c)
	filter := models.UnlockFilter{
		DestinationID: c.Query("destinationId"),
		Status:        models.UnlockStatus(c.Query("status")),
	}

	list, total, err := h.UnlockService.List(c.Context(), claims.UID, filter, pagination.Limit, pagination.Offset)
	if err != nil {
		return respondError(c, err)
	}
	meta := utils.BuildPaginationMeta(total, pagination.Limit, pagination.Page)
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Daftar permintaan buka kunci berhasil dimuat", list, meta))
}

// DecideRequest godoc
// @Summary Setujui atau tolak permintaan (Admin)
// @Description Persetujuan membuka kunci periode terkait. Permintaan yang sudah diputuskan tidak bisa diubah.
// @Tags Admin - Unlock Requests
// @Accept json
// @Produce json
// @Param requestId path string true "Id permintaan"
// @Param decision body models.DecideUnlockInput true "approved | rejected"
// @Success 200 {object} models.Response{data=models.UnlockRequest}
// @Failure 404 {object} models.Response "Permintaan tidak ditemukan"
// @Failure 409 {object} models.Response "Permintaan sudah diputuskan"
// @Security ApiKeyAuth
// @Router /admin/unlock-requests/{requestId}/decision [patch]
func (h *UnlockHandler) DecideRequest(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	input := new(models.DecideUnlockInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	req, err := h.UnlockService.Decide(c.Context(), c.Params("requestId"), input.Decision, claims.UID)
	if err != nil {
		return respondError(c, err)
	}

	message := "Permintaan buka kunci disetujui"
	if req.Status == models.UnlockRejected {
		message = "Permintaan buka kunci ditolak"
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: message, Data: req})
}
