package service

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	zlog "github.com/rs/zerolog/log"
)

// DefaultUnlockGrace adalah masa tenggang record yang kuncinya dibuka sebelum
// job penguncian boleh menguncinya lagi.
const DefaultUnlockGrace = 7 * 24 * time.Hour

type visitServiceImpl struct {
	users       repository.UserRepository
	visits      repository.VisitRepository
	unlockGrace time.Duration
}

type VisitOption func(*visitServiceImpl)

// WithUnlockGrace mengatur masa tenggang setelah kunci dibuka. Nilai <= 0 diabaikan.
func WithUnlockGrace(d time.Duration) VisitOption {
	return func(s *visitServiceImpl) {
		if d > 0 {
			s.unlockGrace = d
		}
	}
}

func NewVisitService(users repository.UserRepository, visits repository.VisitRepository, opts ...VisitOption) VisitService {
	s := &visitServiceImpl{users: users, visits: visits, unlockGrace: DefaultUnlockGrace}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *visitServiceImpl) Get(ctx context.Context, actorUID, destinationID string, year, month int) (*models.VisitData, error) {
	const op = "visits.get"
	if !validMonth(month) {
		return nil, apperrors.Validation(op, "bulan harus di antara 1 dan 12")
	}
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, err
	}
	if err := requireScope(actor, op, destinationID); err != nil {
		return nil, err
	}
	return s.visits.GetByKey(ctx, destinationID, year, month)
}

func (s *visitServiceImpl) ListByDestination(ctx context.Context, actorUID, destinationID string, year int) ([]models.VisitData, error) {
	const op = "visits.list"
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, err
	}
	if err := requireScope(actor, op, destinationID); err != nil {
		return nil, err
	}
	return s.visits.ListByDestination(ctx, destinationID, year)
}

func (s *visitServiceImpl) ListYear(ctx context.Context, actorUID string, year int) ([]models.VisitData, error) {
	const op = "visits.list"
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleAdmin {
		return s.visits.ListByYear(ctx, year, nil)
	}
	if len(actor.AssignedDestinations) == 0 {
		return []models.VisitData{}, nil
	}
	return s.visits.ListByYear(ctx, year, actor.AssignedDestinations)
}

func (s *visitServiceImpl) Update(ctx context.Context, actorUID, destinationID string, year, month int, input *models.UpdateVisitInput) (*models.VisitData, error) {
	const op = "visits.update"
	if !validMonth(month) {
		return nil, apperrors.Validation(op, "bulan harus di antara 1 dan 12")
	}
	// --- 1. Hak akses ---
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, err
	}
	if err := requireScope(actor, op, destinationID); err != nil {
		return nil, err
	}

	// --- 2. Record harus ada dan (untuk pengelola) tidak terkunci ---
	visit, err := s.visits.GetByKey(ctx, destinationID, year, month)
	if err != nil {
		return nil, err
	}
	// Admin boleh mengubah record terkunci (override administratif).
	if visit.Locked && actor.Role != models.RoleAdmin {
		return nil, apperrors.InvalidState(op, "data periode ini terkunci, ajukan permintaan buka kunci terlebih dahulu")
	}

	// --- 3. Terapkan input, validasi, hitung ulang total ---
	visit.Wisnus = input.Wisnus
	visit.Wisman = input.Wisman
	visit.WismanDetails = input.WismanDetails
	if visit.WismanDetails == nil {
		visit.WismanDetails = []models.WismanDetail{}
	}
	visit.EventVisitors = input.EventVisitors
	visit.HistoricalVisitors = input.HistoricalVisitors
	if err := visit.CheckCounts(); err != nil {
		return nil, apperrors.Validation(op, err.Error())
	}
	visit.Recalculate()
	visit.LastUpdatedBy = actorUID

	// --- 4. Simpan ---
	if err := s.visits.Update(ctx, visit); err != nil {
		return nil, err
	}
	zlog.Info().Str("visit_id", visit.ID).Str("uid", actorUID).Int("total", visit.TotalVisitors).Msg("Service: visit data updated")
	return visit, nil
}

func (s *visitServiceImpl) SetLock(ctx context.Context, actorUID, destinationID string, year, month int, locked bool) error {
	const op = "visits.set_lock"
	if !validMonth(month) {
		return apperrors.Validation(op, "bulan harus di antara 1 dan 12")
	}
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return err
	}
	if err := requireAdmin(actor, op); err != nil {
		return err
	}
	if err := s.visits.SetLocked(ctx, destinationID, year, month, locked); err != nil {
		return err
	}
	zlog.Info().Str("destination_id", destinationID).Int("year", year).Int("month", month).
		Bool("locked", locked).Str("uid", actorUID).Msg("Service: visit lock overridden")
	return nil
}

func (s *visitServiceImpl) LockElapsedPeriods(ctx context.Context, now time.Time) (int64, error) {
	// Kunci yang dibuka lewat permintaan yang disetujui (atau override admin)
	// tidak langsung ditutup lagi oleh job ini.
	n, err := s.visits.LockElapsed(ctx, now, now.Add(-s.unlockGrace))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		zlog.Info().Int64("locked", n).Dur("unlock_grace", s.unlockGrace).Msg("Service: elapsed visit periods locked")
	}
	return n, nil
}
