// internal/api/v1/handlers/error_handler.go
package handlers

import (
	"errors"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler custom untuk Fiber
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	var ve validator.ValidationErrors
	var ae *apperrors.Error
	switch {
	case errors.As(err, &e):
		code = e.Code
		message = e.Message
	case errors.As(err, &ve):
		code = fiber.StatusBadRequest
		message = "Validasi gagal"
	case errors.As(err, &ae):
		code = apperrors.HTTPStatus(ae.Kind)
		message = apperrors.UserMessage(err)
	}

	log.Error().Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status_sent", code).
		Msg("Error occurred during request processing")

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(code).JSON(models.Response{
		Success: false,
		Message: message,
	})
}

// respondError memetakan error service ke response HTTP: sentinel service lebih dulu,
// lalu Kind taksonomi. Error asing menjadi 500 tanpa detail.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Terjadi kesalahan internal, silakan coba lagi"

	var ae *apperrors.Error
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = fiber.StatusUnauthorized, service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrAccountDisabled):
		status, message = fiber.StatusForbidden, service.ErrAccountDisabled.Error()
	case errors.Is(err, service.ErrSummaryUnavailable):
		status, message = fiber.StatusServiceUnavailable, service.ErrSummaryUnavailable.Error()
	case errors.Is(err, service.ErrSummaryGenerationFailed):
		status, message = fiber.StatusBadGateway, service.ErrSummaryGenerationFailed.Error()
	case errors.Is(err, service.ErrImageStorageDisabled):
		status, message = fiber.StatusServiceUnavailable, service.ErrImageStorageDisabled.Error()
	case errors.As(err, &ae):
		status = apperrors.HTTPStatus(ae.Kind)
		message = apperrors.UserMessage(err)
	}

	evt := log.Warn()
	if status >= fiber.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).Str("method", c.Method()).Str("path", c.Path()).Int("status", status).Msg("Handler: request failed")

	return c.Status(status).JSON(models.Response{Success: false, Message: message})
}

// bindBody mengisi dst dari body JSON dan memvalidasinya. Bila gagal, response 400
// sudah ditulis dan handled bernilai true; handler cukup mengembalikan err.
func bindBody(c *fiber.Ctx, v *validator.Validate, dst interface{}) (handled bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		log.Warn().Err(err).Str("path", c.Path()).Msg("Failed to parse request body")
		return true, c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Body request tidak valid",
		})
	}
	if err := v.Struct(dst); err != nil {
		log.Warn().Err(err).Str("path", c.Path()).Msg("Request body validation failed")
		return true, c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Validasi gagal", Data: utils.FormatValidationErrors(err),
		})
	}
	return false, nil
}

// currentClaims mengambil claims dari middleware Protected; tanpa claims response 401 ditulis.
func currentClaims(c *fiber.Ctx) (*utils.JwtClaims, bool, error) {
	claims, err := utils.ClaimsFromCtx(c)
	if err != nil {
		return nil, false, c.Status(fiber.StatusUnauthorized).JSON(models.Response{
			Success: false, Message: "Unauthorized: sesi tidak valid",
		})
	}
	return claims, true, nil
}

// periodParams membaca :year dan :month dari path.
func periodParams(c *fiber.Ctx) (year, month int, err error) {
	if year, err = utils.ParseIntParam(c, "year"); err != nil {
		return 0, 0, err
	}
	if month, err = utils.ParseIntParam(c, "month"); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: message})
}
