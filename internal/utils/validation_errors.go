// internal/utils/validation_errors.go
package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors mengubah validator.ValidationErrors menjadi map
// field -> pesan bahasa Indonesia untuk response API.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Data input tidak valid atau formatnya salah."
		return errorsMap
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required":
			errorsMap[field] = fmt.Sprintf("%s wajib diisi.", field)
		case "email":
			errorsMap[field] = fmt.Sprintf("%s harus berupa alamat email yang valid.", field)
		case "oneof":
			errorsMap[field] = fmt.Sprintf("%s harus salah satu dari: %s.", field, fieldErr.Param())
		case "min", "gte":
			errorsMap[field] = fmt.Sprintf("%s minimal %s.", field, fieldErr.Param())
		case "max", "lte":
			errorsMap[field] = fmt.Sprintf("%s maksimal %s.", field, fieldErr.Param())
		default:
			errorsMap[field] = fmt.Sprintf("Validasi field '%s' gagal pada aturan '%s'.", field, fieldErr.Tag())
		}
	}
	return errorsMap
}
