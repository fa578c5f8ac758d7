package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

type unlockRequestRepo struct {
	store
}

func NewUnlockRequestRepository(db *pgxpool.Pool, errs *events.ErrorBus) UnlockRequestRepository {
	return &unlockRequestRepo{store{db: db, errs: errs}}
}

const unlockColumns = `id, destination_id, year, month, reason, status, requested_by,
	COALESCE(processed_by, ''), created_at, processed_at`

func scanUnlockRequest(row pgx.Row) (*models.UnlockRequest, error) {
	req := &models.UnlockRequest{}
	err := row.Scan(&req.ID, &req.DestinationID, &req.Year, &req.Month, &req.Reason, &req.Status,
		&req.RequestedBy, &req.ProcessedBy, &req.CreatedAt, &req.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Create menyimpan permintaan baru. Pelanggaran index unik pending menjadi ConflictError.
func (r *unlockRequestRepo) Create(ctx context.Context, req *models.UnlockRequest) error {
	query := `INSERT INTO unlock_requests (id, destination_id, year, month, reason, status, requested_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING created_at`
	err := r.db.QueryRow(ctx, query, req.ID, req.DestinationID, req.Year, req.Month, req.Reason, req.Status, req.RequestedBy).
		Scan(&req.CreatedAt)
	if err != nil {
		return r.storeErr("unlock.submit", "unlockRequests/"+req.ID, err)
	}
	zlog.Info().Str("request_id", req.ID).Str("destination_id", req.DestinationID).Msg("Repo: unlock request created")
	return nil
}

func (r *unlockRequestRepo) GetByID(ctx context.Context, id string) (*models.UnlockRequest, error) {
	query := `SELECT ` + unlockColumns + ` FROM unlock_requests WHERE id = $1`
	req, err := scanUnlockRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.storeErr("unlock.list", "unlockRequests/"+id, err)
	}
	return req, nil
}

// GetByIDForUpdateTx mengunci baris permintaan sampai transaksi selesai.
func (r *unlockRequestRepo) GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id string) (*models.UnlockRequest, error) {
	query := `SELECT ` + unlockColumns + ` FROM unlock_requests WHERE id = $1 FOR UPDATE`
	req, err := scanUnlockRequest(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.storeErr("unlock.decide", "unlockRequests/"+id, err)
	}
	return req, nil
}

func (r *unlockRequestRepo) HasPending(ctx context.Context, destinationID string, year, month int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM unlock_requests
	              WHERE destination_id = $1 AND year = $2 AND month = $3 AND status = 'pending')`
	var exists bool
	if err := r.db.QueryRow(ctx, query, destinationID, year, month).Scan(&exists); err != nil {
		return false, r.storeErr("unlock.submit", "unlockRequests", err)
	}
	return exists, nil
}

func (r *unlockRequestRepo) List(ctx context.Context, filter models.UnlockFilter, limit, offset int) ([]models.UnlockRequest, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.DestinationID != "" {
		args = append(args, filter.DestinationID)
		conds = append(conds, fmt.Sprintf("destination_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	// Slice kosong tetap dipakai sebagai filter (hasil kosong), hanya nil yang berarti semua.
	if filter.DestinationIn != nil {
		args = append(args, filter.DestinationIn)
		conds = append(conds, fmt.Sprintf("destination_id = ANY($%d)", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	// Hitung total untuk metadata paginasi
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM unlock_requests`+where, args...).Scan(&total); err != nil {
		return nil, 0, r.storeErr("unlock.list", "unlockRequests", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM unlock_requests%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		unlockColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, r.storeErr("unlock.list", "unlockRequests", err)
	}
	defer rows.Close()

	out := make([]models.UnlockRequest, 0, limit)
	for rows.Next() {
		req, err := scanUnlockRequest(rows)
		if err != nil {
			return nil, 0, r.storeErr("unlock.list", "unlockRequests", err)
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.storeErr("unlock.list", "unlockRequests", err)
	}
	return out, total, nil
}

func (r *unlockRequestRepo) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id string, status models.UnlockStatus, processedBy string, processedAt time.Time) error {
	query := `UPDATE unlock_requests SET status = $2, processed_by = $3, processed_at = $4
	          WHERE id = $1 AND status = 'pending'`
	tag, err := tx.Exec(ctx, query, id, status, processedBy, processedAt)
	if err != nil {
		return r.storeErr("unlock.decide", "unlockRequests/"+id, err)
	}
	if tag.RowsAffected() == 0 {
		// Sudah diputuskan oleh transaksi lain.
		return apperrors.InvalidState("unlock.decide", "permintaan sudah diputuskan")
	}
	zlog.Info().Str("request_id", id).Str("status", string(status)).Str("processed_by", processedBy).Msg("Repo: unlock request decided")
	return nil
}
