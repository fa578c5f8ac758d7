package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

type DestinationHandler struct {
	DestinationService service.DestinationService
	Validate           *validator.Validate
}

func NewDestinationHandler(destinationService service.DestinationService) *DestinationHandler {
	return &DestinationHandler{
		DestinationService: destinationService,
		Validate:           validator.New(),
	}
}

// ListDestinations godoc
// @Summary Daftar destinasi
// @Tags Destinations
// @Produce json
// @Param status query string false "aktif | nonaktif"
// @Param category query string false "Nama kategori"
// @Success 200 {object} models.Response{data=[]models.Destination}
// @Failure 400 {object} models.Response "Filter tidak valid"
// @Security ApiKeyAuth
// @Router /destinations [get]
func (h *DestinationHandler) ListDestinations(c *fiber.Ctx) error {
	filter := models.DestinationFilter{
		Status:   models.Status(c.Query("status")),
		Category: c.Query("category"),
	}
	list, err := h.DestinationService.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Daftar destinasi berhasil dimuat", Data: list,
	})
}

// GetDestination godoc
// @Summary Detail destinasi
// @Tags Destinations
// @Produce json
// @Param destId path string true "Id destinasi (slug)"
// @Success 200 {object} models.Response{data=models.Destination}
// @Failure 404 {object} models.Response "Destinasi tidak ditemukan"
// @Security ApiKeyAuth
// @Router /destinations/{destId} [get]
func (h *DestinationHandler) GetDestination(c *fiber.Ctx) error {
	d, err := h.DestinationService.Get(c.Context(), c.Params("destId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Destinasi berhasil dimuat", Data: d,
	})
}

// CreateDestination godoc
// @Summary Tambah destinasi (Admin)
// @Description Id destinasi dibentuk dari slug nama.
// @Tags Admin - Destinations
// @Accept json
// @Produce json
// @Param destination body models.CreateDestinationInput true "Data destinasi"
// @Success 201 {object} models.Response{data=models.Destination}
// @Failure 400 {object} models.Response{data=map[string]string} "Validasi gagal"
// @Failure 409 {object} models.Response "Destinasi sudah ada"
// @Security ApiKeyAuth
// @Router /admin/destinations [post]
func (h *DestinationHandler) CreateDestination(c *fiber.Ctx) error {
	input := new(models.CreateDestinationInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	d, err := h.DestinationService.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(models.Response{
		Success: true, Message: "Destinasi berhasil ditambahkan", Data: d,
	})
}

// UpdateDestination godoc
// @Summary Ubah destinasi (Admin)
// @Tags Admin - Destinations
// @Accept json
// @Produce json
// @Param destId path string true "Id destinasi"
// @Param destination body models.UpdateDestinationInput true "Field yang diubah"
// @Success 200 {object} models.Response{data=models.Destination}
// @Failure 404 {object} models.Response "Destinasi tidak ditemukan"
// @Security ApiKeyAuth
// @Router /admin/destinations/{destId} [patch]
func (h *DestinationHandler) UpdateDestination(c *fiber.Ctx) error {
	input := new(models.UpdateDestinationInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	d, err := h.DestinationService.Update(c.Context(), c.Params("destId"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Destinasi berhasil diperbarui", Data: d,
	})
}

// UploadImage godoc
// @Summary Unggah gambar destinasi (Admin)
// @Description Gambar diperkecil (maks 1600x1600), dikonversi ke webp, lalu disimpan di object storage.
// @Tags Admin - Destinations
// @Accept multipart/form-data
// @Produce json
// @Param destId path string true "Id destinasi"
// @Param image formData file true "Berkas gambar (jpeg, png, gif, webp)"
// @Success 200 {object} models.Response{data=models.Destination}
// @Failure 400 {object} models.Response "Berkas tidak valid"
// @Failure 503 {object} models.Response "Penyimpanan gambar belum dikonfigurasi"
// @Security ApiKeyAuth
// @Router /admin/destinations/{destId}/image [post]
func (h *DestinationHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "Berkas 'image' wajib diunggah")
	}
	if fh.Size > storage.MaxUploadBytes {
		return badRequest(c, fmt.Sprintf("Ukuran berkas maksimal %d MB", storage.MaxUploadBytes>>20))
	}

	f, err := fh.Open()
	if err != nil {
		zlog.Error().Err(err).Msg("Handler: failed to open uploaded file")
		return badRequest(c, "Berkas tidak dapat dibaca")
	}
	defer f.Close()
	raw, err := io.ReadAll(io.LimitReader(f, storage.MaxUploadBytes+1))
	if err != nil {
		return badRequest(c, "Berkas tidak dapat dibaca")
	}

	d, err := h.DestinationService.UploadImage(c.Context(), c.Params("destId"), raw)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Gambar destinasi berhasil diunggah", Data: d,
	})
}
