package service

import (
	"context"
	"errors"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	zlog "github.com/rs/zerolog/log"
)

// Kesalahan non-taksonomi yang dipetakan khusus oleh handler.
var (
	ErrInvalidCredentials      = errors.New("email atau password salah")
	ErrAccountDisabled         = errors.New("akun dinonaktifkan")
	ErrSummaryUnavailable      = errors.New("layanan ringkasan naratif belum dikonfigurasi")
	ErrSummaryGenerationFailed = errors.New("gagal membuat ringkasan naratif, silakan coba lagi")
	ErrImageStorageDisabled    = errors.New("penyimpanan gambar belum dikonfigurasi")
)

// loadActor membaca profil pemanggil. Profil yang tidak ada atau nonaktif
// diperlakukan sebagai AuthorizationError.
func loadActor(ctx context.Context, users repository.UserRepository, op, uid string) (*models.User, error) {
	actor, err := users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			zlog.Warn().Str("uid", uid).Str("op", op).Msg("Service: actor profile not found")
			return nil, apperrors.Authorization(op, "profil pengguna tidak ditemukan")
		}
		return nil, err
	}
	if !actor.IsActive() {
		return nil, apperrors.Authorization(op, "akun tidak aktif")
	}
	return actor, nil
}

// requireScope memastikan actor boleh mengakses destinasi: admin selalu,
// pengelola hanya destinasi yang ditugaskan.
func requireScope(actor *models.User, op, destinationID string) error {
	if actor.IsActiveAdmin() || (actor.IsActivePengelola() && actor.Manages(destinationID)) {
		return nil
	}
	return apperrors.Authorization(op, "destinasi tidak termasuk dalam tugas Anda")
}

func requireAdmin(actor *models.User, op string) error {
	if !actor.IsActiveAdmin() {
		return apperrors.Authorization(op, "hanya admin yang dapat melakukan operasi ini")
	}
	return nil
}

func validMonth(month int) bool { return month >= 1 && month <= 12 }
