// internal/api/v1/handlers/auth_handler.go
package handlers

import (
	"net/http"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

type AuthHandler struct {
	AuthService service.AuthService
	Validate    *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
		Validate:    validator.New(),
	}
}

// Login godoc
// @Summary Login
// @Description Verifikasi email dan password lalu menerbitkan token JWT.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param login body models.LoginInput true "Kredensial"
// @Success 200 {object} models.Response{data=models.LoginResponse} "Login berhasil"
// @Failure 400 {object} models.Response{data=map[string]string} "Validasi gagal"
// @Failure 401 {object} models.Response "Email atau password salah"
// @Failure 403 {object} models.Response "Akun dinonaktifkan"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input := new(models.LoginInput)
	if handled, err := bindBody(c, h.Validate, input); handled {
		return err
	}

	resp, err := h.AuthService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	zlog.Info().Str("uid", resp.User.UID).Msg("Handler: Login successful")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Login berhasil", Data: resp,
	})
}

// Me godoc
// @Summary Akun saat ini
// @Description Mengembalikan identitas (uid, email, status verifikasi) beserta profil aplikasi.
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response{data=models.MeResponse}
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 404 {object} models.Response "Identitas tidak ditemukan"
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok, err := currentClaims(c)
	if !ok {
		return err
	}

	me, err := h.AuthService.Me(c.Context(), claims.UID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Akun berhasil dimuat", Data: me,
	})
}
