package repository

import (
	"context"
	"fmt"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

// store adalah bagian bersama semua repo: pool dan bus error pusat.
type store struct {
	db   *pgxpool.Pool
	errs *events.ErrorBus
}

// storeErr menerjemahkan error pgx ke taksonomi aplikasi, mencatat log, dan
// mem-publish kegagalan yang perlu diketahui pengguna ke bus error.
func (s store) storeErr(op, path string, err error) error {
	appErr := apperrors.FromStore(op, path, err)
	switch apperrors.KindOf(appErr) {
	case apperrors.KindNotFound, apperrors.KindConflict:
		zlog.Debug().Err(err).Str("op", op).Str("path", path).Msg("Repo: store returned expected condition")
	default:
		zlog.Error().Err(err).Str("op", op).Str("path", path).Msg("Repo: store operation failed")
	}
	events.ReportStoreError(s.errs, appErr)
	return appErr
}

type txManager struct {
	store
}

func NewTxManager(db *pgxpool.Pool, errs *events.ErrorBus) TxManager {
	return &txManager{store{db: db, errs: errs}}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return m.storeErr("store.tx", "", fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Error().Msgf("Repo: panic recovered inside transaction: %v", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				zlog.Error().Err(rbErr).Msg("Repo: failed to rollback transaction")
			}
		} else if cErr := tx.Commit(ctx); cErr != nil {
			err = m.storeErr("store.tx", "", fmt.Errorf("commit transaction: %w", cErr))
		}
	}()

	err = fn(tx)
	return err
}
