package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"
)

const (
	decideMaxAttempts       = 3
	defaultDecideRetryDelay = 200 * time.Millisecond
)

type unlockServiceImpl struct {
	tx           repository.TxManager
	users        repository.UserRepository
	destinations repository.DestinationRepository
	visits       repository.VisitRepository
	requests     repository.UnlockRequestRepository
	decisions    *events.DecisionBus
	retryDelay   time.Duration
	now          func() time.Time
}

type UnlockOption func(*unlockServiceImpl)

// WithDecideRetryDelay mengatur jeda dasar antar percobaan ulang Decide (linear: delay * percobaan).
func WithDecideRetryDelay(d time.Duration) UnlockOption {
	return func(s *unlockServiceImpl) { s.retryDelay = d }
}

// WithClock mengganti sumber waktu, dipakai di test.
func WithClock(now func() time.Time) UnlockOption {
	return func(s *unlockServiceImpl) { s.now = now }
}

func NewUnlockService(
	tx repository.TxManager,
	users repository.UserRepository,
	destinations repository.DestinationRepository,
	visits repository.VisitRepository,
	requests repository.UnlockRequestRepository,
	decisions *events.DecisionBus,
	opts ...UnlockOption,
) UnlockService {
	s := &unlockServiceImpl{
		tx:           tx,
		users:        users,
		destinations: destinations,
		visits:       visits,
		requests:     requests,
		decisions:    decisions,
		retryDelay:   defaultDecideRetryDelay,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *unlockServiceImpl) Submit(ctx context.Context, actorUID string, input *models.SubmitUnlockInput) (*models.UnlockRequest, error) {
	const op = "unlock.submit"

	// --- 1. Validasi input, sebelum menyentuh store ---
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, apperrors.Validation(op, "alasan permintaan wajib diisi")
	}
	if !validMonth(input.Month) {
		return nil, apperrors.Validation(op, "bulan harus di antara 1 dan 12")
	}

	// --- 2. Hak akses: pengelola aktif yang ditugaskan di destinasi ---
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, err
	}
	if !actor.IsActivePengelola() || !actor.Manages(input.DestinationID) {
		zlog.Warn().Str("uid", actorUID).Str("destination_id", input.DestinationID).Msg("Service: unlock submit by non-assigned user")
		return nil, apperrors.Authorization(op, "hanya pengelola destinasi ini yang dapat mengajukan permintaan")
	}

	// --- 3. Destinasi dan record kunjungan harus ada, dan record harus terkunci ---
	if _, err := s.destinations.GetByID(ctx, input.DestinationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validation(op, "destinasi tidak ditemukan")
		}
		return nil, err
	}
	visit, err := s.visits.GetByKey(ctx, input.DestinationID, input.Year, input.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validation(op, "data kunjungan periode ini tidak ditemukan")
		}
		return nil, err
	}
	if !visit.Locked {
		return nil, apperrors.Validation(op, "data kunjungan periode ini tidak terkunci")
	}

	// --- 4. Satu permintaan pending per periode ---
	pending, err := s.requests.HasPending(ctx, input.DestinationID, input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.Conflict(op, "sudah ada permintaan buka kunci yang menunggu untuk periode ini")
	}

	req := &models.UnlockRequest{
		ID:            uuid.NewString(),
		DestinationID: input.DestinationID,
		Year:          input.Year,
		Month:         input.Month,
		Reason:        reason,
		Status:        models.UnlockPending,
		RequestedBy:   actorUID,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		// Index unik parsial menangkap balapan dua pengajuan bersamaan.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict(op, "sudah ada permintaan buka kunci yang menunggu untuk periode ini")
		}
		return nil, err
	}

	zlog.Info().Str("request_id", req.ID).Str("destination_id", req.DestinationID).
		Int("year", req.Year).Int("month", req.Month).Str("uid", actorUID).Msg("Service: unlock request submitted")
	return req, nil
}

func (s *unlockServiceImpl) Decide(ctx context.Context, requestID string, decision models.UnlockStatus, processedBy string) (*models.UnlockRequest, error) {
	const op = "unlock.decide"

	if decision != models.UnlockApproved && decision != models.UnlockRejected {
		return nil, apperrors.Validation(op, "keputusan harus 'approved' atau 'rejected'")
	}
	actor, err := loadActor(ctx, s.users, op, processedBy)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(actor, op); err != nil {
		return nil, err
	}

	var decided *models.UnlockRequest
	for attempt := 1; ; attempt++ {
		decided, err = s.decideOnce(ctx, requestID, decision, processedBy)
		if err == nil {
			break
		}
		if !apperrors.IsTransient(err) || attempt >= decideMaxAttempts {
			return nil, err
		}
		zlog.Warn().Err(err).Str("request_id", requestID).Int("attempt", attempt).Msg("Service: transient failure deciding unlock request, retrying")
		select {
		case <-ctx.Done():
			return nil, err
		case <-time.After(s.retryDelay * time.Duration(attempt)):
		}
	}

	zlog.Info().Str("request_id", decided.ID).Str("status", string(decided.Status)).Str("processed_by", processedBy).Msg("Service: unlock request decided")
	s.decisions.Publish(events.UnlockDecided{
		RequestID:     decided.ID,
		DestinationID: decided.DestinationID,
		Year:          decided.Year,
		Month:         decided.Month,
		Status:        string(decided.Status),
		RequestedBy:   decided.RequestedBy,
		ProcessedBy:   processedBy,
		At:            *decided.ProcessedAt,
	})
	return decided, nil
}

// decideOnce menjalankan satu percobaan keputusan dalam satu transaksi.
func (s *unlockServiceImpl) decideOnce(ctx context.Context, requestID string, decision models.UnlockStatus, processedBy string) (*models.UnlockRequest, error) {
	const op = "unlock.decide"
	var decided *models.UnlockRequest

	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		// --- 1. Kunci baris permintaan (FOR UPDATE) agar dua admin tidak memutus bersamaan ---
		req, err := s.requests.GetByIDForUpdateTx(ctx, tx, requestID)
		if err != nil {
			return err
		}
		// --- 2. Permintaan yang sudah diputuskan tidak boleh berubah lagi ---
		if req.Status.IsTerminal() {
			return apperrors.InvalidState(op, "permintaan sudah diputuskan ("+string(req.Status)+")")
		}

		// --- 3. Buka kunci record lebih dulu; jika gagal, status tetap pending ---
		if decision == models.UnlockApproved {
			if err := s.visits.SetLockedTx(ctx, tx, req.DestinationID, req.Year, req.Month, false); err != nil {
				return err
			}
		}

		// --- 4. Baru catat keputusan ---
		processedAt := s.now()
		if err := s.requests.UpdateStatusTx(ctx, tx, requestID, decision, processedBy, processedAt); err != nil {
			return err
		}

		req.Status = decision
		req.ProcessedBy = processedBy
		req.ProcessedAt = &processedAt
		decided = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

func (s *unlockServiceImpl) List(ctx context.Context, actorUID string, filter models.UnlockFilter, limit, offset int) ([]models.UnlockRequest, int, error) {
	const op = "unlock.list"

	if filter.Status != "" && filter.Status != models.UnlockPending && !filter.Status.IsTerminal() {
		return nil, 0, apperrors.Validation(op, "status filter tidak dikenal")
	}
	actor, err := loadActor(ctx, s.users, op, actorUID)
	if err != nil {
		return nil, 0, err
	}

	filter.DestinationIn = nil
	if actor.Role != models.RoleAdmin {
		if filter.DestinationID != "" {
			if err := requireScope(actor, op, filter.DestinationID); err != nil {
				return nil, 0, err
			}
		}
		filter.DestinationIn = append([]string{}, actor.AssignedDestinations...)
	}

	return s.requests.List(ctx, filter, limit, offset)
}
