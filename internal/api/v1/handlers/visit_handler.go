package handlers

import (
	"net/http"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

type VisitHandler struct {
	VisitService service.VisitService
	Validate     *validator.Validate
}

func NewVisitHandler(visitService service.VisitService) *VisitHandler {
	return &VisitHandler{
		VisitService: visitService,
		Validate:     validator.New(),
	}
}

// ListVisits godoc
// @Summary Data kunjungan satu destinasi per tahun
// @Tags Visits
// @Produce json
// @Param destId path string true "Id destinasi"
// @Param year query int false "Tahun (default tahun berjalan)"
// @Success 200 {object} models.Response{data=[]models.VisitData}
// @Failure 403 {object} models.Response "Destinasi di luar penugasan"
// @Security ApiKeyAuth
// @Router /destinations/{destId}/visits [get]
func (h *VisitHandler) ListVisits(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	year := c.QueryInt("year", time.Now().Year())

	list, err := h.VisitService.ListByDestination(c.Context(), claims.UID, c.Params("destId"), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Data kunjungan berhasil dimuat", Data: list,
	})
}

// GetVisit godoc
// @Summary Data kunjungan satu periode
// @Tags Visits
// @Produce json
// @Param destId path string true "Id destinasi"
// @Param year path int true "Tahun"
// @Param month path int true "Bulan (1-12)"
// @Success 200 {object} models.Response{data=models.VisitData}
// @Failure 404 {object} models.Response "Data tidak ditemukan"
// @Security ApiKeyAuth
// @Router /destinations/{destId}/visits/{year}/{month} [get]
func (h *VisitHandler) GetVisit(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	year, month, err := periodParams(c)
	if err != nil {
		return badRequest(c, "Tahun atau bulan tidak valid")
	}

	v, err := h.VisitService.Get(c.Context(), claims.UID, c.Params("destId"), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Data kunjungan berhasil dimuat", Data: v,
	})
}

// UpdateVisit godoc
// @Summary Simpan data kunjungan
// @Description Total dihitung ulang di server. Periode terkunci hanya bisa diubah admin.
// @Tags Visits
// @Accept json
// @Produce json
// @Param destId path string true "Id destinasi"
// @Param year path int true "Tahun"
// @Param month path int true "Bulan (1-12)"
// @Param visit body models.UpdateVisitInput true "Jumlah kunjungan"
// @Success 200 {object} models.Response{data=models.VisitData}
// @Failure 400 {object} models.Response "Validasi gagal"
// @Failure 409 {object} models.Response "Periode terkunci"
// @Security ApiKeyAuth
// @Router /destinations/{destId}/visits/{year}/{month} [put]
func (h *VisitHandler) UpdateVisit(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	year, month, err := periodParams(c)
	if err != nil {
		return badRequest(c, "Tahun atau bulan tidak valid")
	}
	input := new(models.UpdateVisitInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	v, err := h.VisitService.Update(c.Context(), claims.UID, c.Params("destId"), year, month, input)
	if err != nil {
		return respondError(c, err)
	}
	zlog.Info().Str("visit_id", v.ID).Str("actor", claims.UID).Int("total", v.Total).Msg("Handler: visit data saved")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Data kunjungan berhasil disimpan", Data: v,
	})
}

// SetLock godoc
// @Summary Kunci atau buka kunci periode (Admin)
// @Tags Admin - Visits
// @Accept json
// @Produce json
// @Param destId path string true "Id destinasi"
// @Param year path int true "Tahun"
// @Param month path int true "Bulan (1-12)"
// @Param lock body models.SetLockInput true "Status kunci"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response "Data tidak ditemukan"
// @Security ApiKeyAuth
// @Router /admin/destinations/{destId}/visits/{year}/{month}/lock [patch]
func (h *VisitHandler) SetLock(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	year, month, err := periodParams(c)
	if err != nil {
		return badRequest(c, "Tahun atau bulan tidak valid")
	}
	input := new(models.SetLockInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	if err := h.VisitService.SetLock(c.Context(), claims.UID, c.Params("destId"), year, month, *input.Locked); err != nil {
		return respondError(c, err)
	}
	message := "Periode berhasil dibuka"
	if *input.Locked {
		message = "Periode berhasil dikunci"
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: message})
}
