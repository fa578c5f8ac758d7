package handlers

import (
	"net/http"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	ReportService  service.ReportService
	SummaryService service.SummaryService
	Validate       *validator.Validate
}

func NewReportHandler(reportService service.ReportService, summaryService service.SummaryService) *ReportHandler {
	return &ReportHandler{
		ReportService:  reportService,
		SummaryService: summaryService,
		Validate:       validator.New(),
	}
}

// YearlyReport godoc
// @Summary Rekap tahunan
// @Description Total per bulan, per destinasi, dan negara asal wisman teratas.
// @Tags Reports
// @Produce json
// @Param year query int false "Tahun (default tahun berjalan)"
// @Success 200 {object} models.Response{data=models.YearlyReport}
// @Failure 400 {object} models.Response "Tahun tidak valid"
// @Security ApiKeyAuth
// @Router /reports/yearly [get]
func (h *ReportHandler) YearlyReport(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	year := c.QueryInt("year", time.Now().Year())

	report, err := h.ReportService.Yearly(c.Context(), claims.UID, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Rekap tahunan berhasil dimuat", Data: report,
	})
}

// GenerateSummary godoc
// @Summary Ringkasan naratif satu periode
// @Description Ringkasan dibuat oleh model bahasa dari data kunjungan periode tersebut.
// @Tags Reports
// @Accept json
// @Produce json
// @Param summary body models.SummaryInput true "Destinasi dan periode"
// @Success 200 {object} models.Response{data=models.SummaryResult}
// @Failure 502 {object} models.Response "Gagal membuat ringkasan"
// @Failure 503 {object} models.Response "Fitur ringkasan tidak aktif"
// @Security ApiKeyAuth
// @Router /summaries [post]
func (h *ReportHandler) GenerateSummary(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	input := new(models.SummaryInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	result, err := h.SummaryService.Generate(c.Context(), claims.UID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Ringkasan berhasil dibuat", Data: result,
	})
}
