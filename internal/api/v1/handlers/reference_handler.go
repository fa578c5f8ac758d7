package handlers

import (
	"net/http"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler melayani data referensi: kategori, negara, dan pengaturan aplikasi.
type ReferenceHandler struct {
	ReferenceService service.ReferenceService
	Validate         *validator.Validate
}

func NewReferenceHandler(referenceService service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		ReferenceService: referenceService,
		Validate:         validator.New(),
	}
}

// ListCategories godoc
// @Summary Daftar kategori destinasi
// @Tags Reference
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Category}
// @Security ApiKeyAuth
// @Router /categories [get]
func (h *ReferenceHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.ReferenceService.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Daftar kategori berhasil dimuat", Data: list,
	})
}

// CreateCategory godoc
// @Summary Tambah kategori (Admin)
// @Tags Admin - Reference
// @Accept json
// @Produce json
// @Param category body models.CreateCategoryInput true "Nama kategori"
// @Success 201 {object} models.Response{data=models.Category}
// @Failure 409 {object} models.Response "Kategori sudah ada"
// @Security ApiKeyAuth
// @Router /admin/categories [post]
func (h *ReferenceHandler) CreateCategory(c *fiber.Ctx) error {
	input := new(models.CreateCategoryInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	cat, err := h.ReferenceService.CreateCategory(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(models.Response{
		Success: true, Message: "Kategori berhasil ditambahkan", Data: cat,
	})
}

// ListCountries godoc
// @Summary Daftar negara asal wisman
// @Tags Reference
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Country}
// @Security ApiKeyAuth
// @Router /countries [get]
func (h *ReferenceHandler) ListCountries(c *fiber.Ctx) error {
	list, err := h.ReferenceService.ListCountries(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Daftar negara berhasil dimuat", Data: list,
	})
}

// GetSettings godoc
// @Summary Pengaturan aplikasi
// @Tags Reference
// @Produce json
// @Success 200 {object} models.Response{data=models.AppSettings}
// @Security ApiKeyAuth
// @Router /settings [get]
func (h *ReferenceHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.ReferenceService.GetSettings(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Pengaturan berhasil dimuat", Data: settings,
	})
}

// UpdateSettings godoc
// @Summary Ubah pengaturan aplikasi (Admin)
// @Tags Admin - Reference
// @Accept json
// @Produce json
// @Param settings body models.UpdateSettingsInput true "Pengaturan"
// @Success 200 {object} models.Response{data=models.AppSettings}
// @Security ApiKeyAuth
// @Router /admin/settings [put]
func (h *ReferenceHandler) UpdateSettings(c *fiber.Ctx) error {
	input := new(models.UpdateSettingsInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	settings, err := h.ReferenceService.UpdateSettings(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Pengaturan berhasil disimpan", Data: settings,
	})
}
