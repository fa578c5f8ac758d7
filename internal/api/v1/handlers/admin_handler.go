// internal/api/v1/handlers/admin_handler.go
package handlers

import (
	"net/http"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

type AdminHandler struct {
	UserService service.UserService
	Validate    *validator.Validate
}

func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{
		UserService: userService,
		Validate:    validator.New(),
	}
}

// -------------------------------------------------------------------------
// User Management
// -------------------------------------------------------------------------

// GetAllUsers godoc
// @Summary Daftar pengguna (Admin)
// @Description Mengambil daftar pengguna dengan paginasi.
// @Tags Admin - Users Management
// @Produce json
// @Param page query int false "Nomor halaman" default(1)
// @Param limit query int false "Jumlah per halaman" default(20) maximum(100)
// @Success 200 {object} utils.PaginatedResponseGeneric "Daftar pengguna"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 403 {object} models.Response "Bukan admin"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (h *AdminHandler) GetAllUsers(c *fiber.Ctx) error {
	pagination := utils.ParsePaginationParams(c)

	users, totalCount, err := h.UserService.ListUsers(c.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		return respondError(c, err)
	}

	meta := utils.BuildPaginationMeta(totalCount, pagination.Limit, pagination.Page)
	zlog.Info().Int("page", pagination.Page).Int("returned_count", len(users)).Int("total_count", totalCount).
		Msg("Successfully retrieved paginated users for admin request")
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Daftar pengguna berhasil dimuat", users, meta))
}

// CreateUser godoc
// @Summary Buat pengguna (Admin)
// @Description Membuat akun identitas dan profil. Tanpa password, password sementara acak dikembalikan sekali.
// @Tags Admin - Users Management
// @Accept json
// @Produce json
// @Param user body models.CreateUserInput true "Data pengguna"
// @Success 201 {object} models.Response{data=models.CreateUserResult}
// @Failure 400 {object} models.Response{data=map[string]string} "Validasi gagal"
// @Failure 409 {object} models.Response "Email sudah terdaftar"
// @Security ApiKeyAuth
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	input := new(models.CreateUserInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	result, err := h.UserService.CreateUser(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(models.Response{
		Success: true, Message: "Pengguna berhasil dibuat", Data: result,
	})
}

// ChangeRole godoc
// @Summary Ubah peran pengguna (Admin)
// @Tags Admin - Users Management
// @Accept json
// @Produce json
// @Param uid path string true "UID pengguna"
// @Param role body models.UpdateRoleInput true "Peran baru"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response "Validasi gagal"
// @Failure 404 {object} models.Response "Pengguna tidak ditemukan"
// @Security ApiKeyAuth
// @Router /admin/users/{uid}/role [patch]
func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	input := new(models.UpdateRoleInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	if err := h.UserService.ChangeRole(c.Context(), claims.UID, c.Params("uid"), input.Role); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Peran pengguna berhasil diubah"})
}

// ChangeStatus godoc
// @Summary Ubah status pengguna (Admin)
// @Tags Admin - Users Management
// @Accept json
// @Produce json
// @Param uid path string true "UID pengguna"
// @Param status body models.UpdateStatusInput true "Status baru"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response "Validasi gagal"
// @Security ApiKeyAuth
// @Router /admin/users/{uid}/status [patch]
func (h *AdminHandler) ChangeStatus(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}
	input := new(models.UpdateStatusInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	if err := h.UserService.ChangeStatus(c.Context(), claims.UID, c.Params("uid"), input.Status); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Status pengguna berhasil diubah"})
}

// AssignDestinations godoc
// @Summary Tugaskan destinasi ke pengelola (Admin)
// @Tags Admin - Users Management
// @Accept json
// @Produce json
// @Param uid path string true "UID pengguna"
// @Param destinations body models.AssignDestinationsInput true "Daftar id destinasi"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response "Destinasi tidak ditemukan"
// @Security ApiKeyAuth
// @Router /admin/users/{uid}/destinations [patch]
func (h *AdminHandler) AssignDestinations(c *fiber.Ctx) error {
	input := new(models.AssignDestinationsInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	if err := h.UserService.AssignDestinations(c.Context(), c.Params("uid"), input.DestinationIDs); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Destinasi berhasil ditugaskan"})
}
