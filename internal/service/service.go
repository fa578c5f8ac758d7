// internal/service/service.go
package service

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
)

// File ini mendefinisikan kontrak Service Layer: aturan bisnis yang melibatkan
// lebih dari satu repository, transaksi, atau kolaborator eksternal.
// Semua kegagalan dikembalikan sebagai *apperrors.Error kecuali disebut lain.

// UnlockService mengelola siklus hidup permintaan buka kunci:
// pending -> approved | rejected. Status terminal tidak bisa berubah lagi.
type UnlockService interface {
	// Submit membuat permintaan pending untuk record kunjungan yang terkunci.
	Submit(ctx context.Context, actorUID string, input *models.SubmitUnlockInput) (*models.UnlockRequest, error)

	// Decide menyetujui atau menolak permintaan. Persetujuan membuka kunci record
	// kunjungan di transaksi yang sama, sebelum status permintaan ditulis.
	Decide(ctx context.Context, requestID string, decision models.UnlockStatus, processedBy string) (*models.UnlockRequest, error)

	// List: admin melihat semua, pengelola hanya destinasi yang ditugaskan.
	List(ctx context.Context, actorUID string, filter models.UnlockFilter, limit, offset int) ([]models.UnlockRequest, int, error)
}

// SeedService menjalankan provisioning idempoten dari katalog.
type SeedService interface {
	Run(ctx context.Context) (*models.SeedReport, error)
}

type VisitService interface {
	Get(ctx context.Context, actorUID, destinationID string, year, month int) (*models.VisitData, error)
	ListByDestination(ctx context.Context, actorUID, destinationID string, year int) ([]models.VisitData, error)

	// ListYear mengambil semua record tahun tertentu yang boleh dilihat actor.
	ListYear(ctx context.Context, actorUID string, year int) ([]models.VisitData, error)
	Update(ctx context.Context, actorUID, destinationID string, year, month int, input *models.UpdateVisitInput) (*models.VisitData, error)
	SetLock(ctx context.Context, actorUID, destinationID string, year, month int, locked bool) error

	// LockElapsedPeriods mengunci semua record yang periodenya sudah berakhir.
	LockElapsedPeriods(ctx context.Context, now time.Time) (int64, error)
}

type ReportService interface {
	Yearly(ctx context.Context, actorUID string, year int) (*models.YearlyReport, error)
}

type SummaryService interface {
	Generate(ctx context.Context, actorUID string, input *models.SummaryInput) (*models.SummaryResult, error)
}

type AuthService interface {
	Login(ctx context.Context, input *models.LoginInput) (*models.LoginResponse, error)
	Me(ctx context.Context, uid string) (*models.MeResponse, error)
}

// UserService berisi operasi admin atas akun pengguna.
type UserService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error)
	CreateUser(ctx context.Context, input *models.CreateUserInput) (*models.CreateUserResult, error)
	ChangeRole(ctx context.Context, actorUID, uid string, role models.Role) error
	ChangeStatus(ctx context.Context, actorUID, uid string, status models.Status) error
	AssignDestinations(ctx context.Context, uid string, destinationIDs []string) error
}

type DestinationService interface {
	List(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error)
	Get(ctx context.Context, id string) (*models.Destination, error)
	Create(ctx context.Context, input *models.CreateDestinationInput) (*models.Destination, error)
	Update(ctx context.Context, id string, input *models.UpdateDestinationInput) (*models.Destination, error)
	UploadImage(ctx context.Context, id string, raw []byte) (*models.Destination, error)
}

type ReferenceService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input *models.CreateCategoryInput) (*models.Category, error)
	ListCountries(ctx context.Context) ([]models.Country, error)
	GetSettings(ctx context.Context) (*models.AppSettings, error)
	UpdateSettings(ctx context.Context, input *models.UpdateSettingsInput) (*models.AppSettings, error)
}

// ====================================================================================
// Kolaborator eksternal
// ====================================================================================

// NarrativeGenerator membuat ringkasan naratif dari data kunjungan terstruktur.
type NarrativeGenerator interface {
	Generate(ctx context.Context, input models.NarrativeInput) (string, error)
}

// ImageStore menyimpan objek gambar dan mengembalikan URL publiknya.
type ImageStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// TokenIssuer menerbitkan token akses untuk identitas yang berhasil login.
type TokenIssuer interface {
	Generate(uid, email, role string) (string, time.Time, error)
}
