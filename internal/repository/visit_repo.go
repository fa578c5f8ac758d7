package repository

import (
	"context"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

type visitRepo struct {
	store
}

func NewVisitRepository(db *pgxpool.Pool, errs *events.ErrorBus) VisitRepository {
	return &visitRepo{store{db: db, errs: errs}}
}

const visitColumns = `id, destination_id, year, month, wisnus, wisman, wisman_details, event_visitors,
	historical_visitors, total_visitors, locked, unlocked_at, last_updated_by, created_at, updated_at`

func scanVisit(row pgx.Row) (*models.VisitData, error) {
	v := &models.VisitData{}
	err := row.Scan(&v.ID, &v.DestinationID, &v.Year, &v.Month, &v.Wisnus, &v.Wisman, &v.WismanDetails,
		&v.EventVisitors, &v.HistoricalVisitors, &v.TotalVisitors, &v.Locked, &v.UnlockedAt, &v.LastUpdatedBy, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if v.WismanDetails == nil {
		v.WismanDetails = []models.WismanDetail{}
	}
	return v, nil
}

// Slice nil akan dikirim sebagai SQL NULL oleh pgx; kolom jsonb NOT NULL butuh '[]'.
func nonNilDetails(d []models.WismanDetail) []models.WismanDetail {
	if d == nil {
		return []models.WismanDetail{}
	}
	return d
}

func (r *visitRepo) collect(op, path string, rows pgx.Rows, err error) ([]models.VisitData, error) {
	if err != nil {
		return nil, r.storeErr(op, path, err)
	}
	defer rows.Close()

	out := make([]models.VisitData, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, r.storeErr(op, path, err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storeErr(op, path, err)
	}
	return out, nil
}

func (r *visitRepo) GetByKey(ctx context.Context, destinationID string, year, month int) (*models.VisitData, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE destination_id = $1 AND year = $2 AND month = $3`
	v, err := scanVisit(r.db.QueryRow(ctx, query, destinationID, year, month))
	if err != nil {
		return nil, r.storeErr("visits.get", utils.VisitPath(destinationID, year, month), err)
	}
	return v, nil
}

func (r *visitRepo) ListByYear(ctx context.Context, year int, destinationIDs []string) ([]models.VisitData, error) {
	if destinationIDs == nil { // admin: tanpa filter destinasi
		query := `SELECT ` + visitColumns + ` FROM visits WHERE year = $1 ORDER BY destination_id, month`
		rows, err := r.db.Query(ctx, query, year)
		return r.collect("visits.list", "visits", rows, err)
	}
	query := `SELECT ` + visitColumns + ` FROM visits WHERE year = $1 AND destination_id = ANY($2) ORDER BY destination_id, month`
	rows, err := r.db.Query(ctx, query, year, destinationIDs)
	return r.collect("visits.list", "visits", rows, err)
}

func (r *visitRepo) ListByDestination(ctx context.Context, destinationID string, year int) ([]models.VisitData, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE destination_id = $1 AND year = $2 ORDER BY month`
	rows, err := r.db.Query(ctx, query, destinationID, year)
	return r.collect("visits.list", "destinations/"+destinationID+"/visits", rows, err)
}

// Update menulis semua hitungan sekaligus. Status kunci tidak diubah di sini.
func (r *visitRepo) Update(ctx context.Context, v *models.VisitData) error {
	query := `UPDATE visits SET
	              wisnus = $4, wisman = $5, wisman_details = $6, event_visitors = $7,
	              historical_visitors = $8, total_visitors = $9, last_updated_by = $10, updated_at = NOW()
	          WHERE destination_id = $1 AND year = $2 AND month = $3
	          RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, v.DestinationID, v.Year, v.Month,
		v.Wisnus, v.Wisman, nonNilDetails(v.WismanDetails), v.EventVisitors,
		v.HistoricalVisitors, v.TotalVisitors, v.LastUpdatedBy,
	).Scan(&v.UpdatedAt)
	if err != nil {
		return r.storeErr("visits.update", utils.VisitPath(v.DestinationID, v.Year, v.Month), err)
	}
	zlog.Info().Str("visit_id", v.ID).Str("updated_by", v.LastUpdatedBy).Int("total", v.TotalVisitors).Msg("Repo: visit data updated")
	return nil
}

// unlocked_at dicap setiap kali kunci dibuka agar job penguncian memberi masa tenggang.
const setLockedQuery = `UPDATE visits SET
	    locked = $4::boolean,
	    unlocked_at = CASE WHEN $4::boolean THEN NULL ELSE NOW() END,
	    updated_at = NOW()
	WHERE destination_id = $1 AND year = $2 AND month = $3`

func (r *visitRepo) SetLocked(ctx context.Context, destinationID string, year, month int, locked bool) error {
	tag, err := r.db.Exec(ctx, setLockedQuery, destinationID, year, month, locked)
	return r.lockResult(tag.RowsAffected(), err, destinationID, year, month)
}

func (r *visitRepo) SetLockedTx(ctx context.Context, tx pgx.Tx, destinationID string, year, month int, locked bool) error {
	tag, err := tx.Exec(ctx, setLockedQuery, destinationID, year, month, locked)
	return r.lockResult(tag.RowsAffected(), err, destinationID, year, month)
}

func (r *visitRepo) lockResult(affected int64, err error, destinationID string, year, month int) error {
	path := utils.VisitPath(destinationID, year, month)
	if err != nil {
		return r.storeErr("visits.lock", path, err)
	}
	if affected == 0 {
		return apperrors.NotFound("visits.lock", path)
	}
	return nil
}

func (r *visitRepo) LockElapsed(ctx context.Context, now, unlockedBefore time.Time) (int64, error) {
	// Record yang kuncinya dibuka setelah unlockedBefore masih dalam masa tenggang.
	query := `UPDATE visits SET locked = TRUE, unlocked_at = NULL, updated_at = NOW()
	          WHERE locked = FALSE
	            AND (year < $1 OR (year = $1 AND month < $2))
	            AND (unlocked_at IS NULL OR unlocked_at < $3)`
	tag, err := r.db.Exec(ctx, query, now.Year(), int(now.Month()), unlockedBefore)
	if err != nil {
		return 0, r.storeErr("visits.lock", "visits", err)
	}
	return tag.RowsAffected(), nil
}

func (r *visitRepo) ExistingIDsTx(ctx context.Context, tx pgx.Tx, yearFrom, yearTo int) (map[string]struct{}, error) {
	rows, err := tx.Query(ctx, `SELECT id FROM visits WHERE year BETWEEN $1 AND $2`, yearFrom, yearTo)
	if err != nil {
		return nil, r.storeErr("seed.run", "visits", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, r.storeErr("seed.run", "visits", err)
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// CreateTx tidak menimpa record yang sudah ada; false berarti baris sudah dibuat pihak lain.
func (r *visitRepo) CreateTx(ctx context.Context, tx pgx.Tx, v *models.VisitData) (bool, error) {
	query := `INSERT INTO visits (id, destination_id, year, month, wisnus, wisman, wisman_details,
	              event_visitors, historical_visitors, total_visitors, locked, last_updated_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          ON CONFLICT DO NOTHING`
	tag, err := tx.Exec(ctx, query, v.ID, v.DestinationID, v.Year, v.Month, v.Wisnus, v.Wisman,
		nonNilDetails(v.WismanDetails), v.EventVisitors, v.HistoricalVisitors, v.TotalVisitors, v.Locked, v.LastUpdatedBy)
	if err != nil {
		return false, r.storeErr("seed.run", utils.VisitPath(v.DestinationID, v.Year, v.Month), err)
	}
	return tag.RowsAffected() == 1, nil
}
