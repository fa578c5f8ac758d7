// internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
)

// File ini mendefinisikan kontrak Data Access Layer. Implementasi PostgreSQL ada di *_repo.go,
// mock untuk test service ada di sub-paket mocks.
//
// Semua error yang dikembalikan implementasi sudah diterjemahkan ke *apperrors.Error
// (lihat storeErr), lengkap dengan operasi dan path resource.

// TxManager menjalankan fn di dalam satu transaksi database. Commit jika fn
// mengembalikan nil, rollback jika error atau panic.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// ====================================================================================
// User (profil aplikasi)
// ====================================================================================

type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*models.User, error)

	// GetAll mengembalikan satu halaman pengguna dan total keseluruhan.
	GetAll(ctx context.Context, limit, offset int) ([]models.User, int, error)

	Create(ctx context.Context, user *models.User) error

	UpdateRole(ctx context.Context, uid string, role models.Role) error
	UpdateStatus(ctx context.Context, uid string, status models.Status) error
	UpdateAssignedDestinations(ctx context.Context, uid string, destinationIDs []string) error

	// UpsertProfileTx menulis profil dengan semantik merge: status yang sudah ada tidak ditimpa.
	UpsertProfileTx(ctx context.Context, tx pgx.Tx, user *models.User) error
}

// ====================================================================================
// Destination
// ====================================================================================

type DestinationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	GetAll(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error)
	Create(ctx context.Context, d *models.Destination) error
	Update(ctx context.Context, d *models.Destination) error
	UpdateImage(ctx context.Context, id, imageURL string) error

	// ExistingIDs mengembalikan subset ids yang benar-benar ada.
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)

	// UpsertTx menulis field katalog saja; image_url tidak disentuh saat konflik.
	UpsertTx(ctx context.Context, tx pgx.Tx, d *models.Destination) error
}

// ====================================================================================
// VisitData
// ====================================================================================

type VisitRepository interface {
	GetByKey(ctx context.Context, destinationID string, year, month int) (*models.VisitData, error)

	// ListByYear mengambil record tahun tertentu. destinationIDs nil = semua destinasi.
	ListByYear(ctx context.Context, year int, destinationIDs []string) ([]models.VisitData, error)

	ListByDestination(ctx context.Context, destinationID string, year int) ([]models.VisitData, error)

	// Update menyimpan hitungan kunjungan. Total harus sudah dihitung ulang oleh pemanggil.
	Update(ctx context.Context, v *models.VisitData) error

	SetLocked(ctx context.Context, destinationID string, year, month int, locked bool) error
	SetLockedTx(ctx context.Context, tx pgx.Tx, destinationID string, year, month int, locked bool) error

	// LockElapsed mengunci record yang periodenya sudah berakhir per now,
	// kecuali yang kuncinya dibuka pada atau setelah unlockedBefore.
	LockElapsed(ctx context.Context, now, unlockedBefore time.Time) (int64, error)

	// ExistingIDsTx membaca id record untuk rentang tahun [yearFrom, yearTo] sekaligus.
	ExistingIDsTx(ctx context.Context, tx pgx.Tx, yearFrom, yearTo int) (map[string]struct{}, error)

	// CreateTx membuat record baru; false jika id sudah ada (tidak ada yang ditimpa).
	CreateTx(ctx context.Context, tx pgx.Tx, v *models.VisitData) (bool, error)
}

// ====================================================================================
// UnlockRequest
// ====================================================================================

type UnlockRequestRepository interface {
	Create(ctx context.Context, req *models.UnlockRequest) error
	GetByID(ctx context.Context, id string) (*models.UnlockRequest, error)

	// GetByIDForUpdateTx mengunci baris permintaan (SELECT ... FOR UPDATE).
	GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id string) (*models.UnlockRequest, error)

	HasPending(ctx context.Context, destinationID string, year, month int) (bool, error)

	List(ctx context.Context, filter models.UnlockFilter, limit, offset int) ([]models.UnlockRequest, int, error)

	// UpdateStatusTx hanya berhasil bila status saat ini masih pending;
	// selain itu mengembalikan InvalidStateError.
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id string, status models.UnlockStatus, processedBy string, processedAt time.Time) error
}

// ====================================================================================
// Referensi
// ====================================================================================

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	ExistingNamesTx(ctx context.Context, tx pgx.Tx) ([]string, error)
	CreateTx(ctx context.Context, tx pgx.Tx, c *models.Category) error
}

type CountryRepository interface {
	GetAll(ctx context.Context) ([]models.Country, error)
	UpsertTx(ctx context.Context, tx pgx.Tx, c *models.Country) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Update(ctx context.Context, s *models.AppSettings) error
	UpsertTx(ctx context.Context, tx pgx.Tx, s *models.AppSettings) error
}
