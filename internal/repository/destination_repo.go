package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

type destinationRepo struct {
	store
}

func NewDestinationRepository(db *pgxpool.Pool, errs *events.ErrorBus) DestinationRepository {
	return &destinationRepo{store{db: db, errs: errs}}
}

const destinationColumns = `id, name, category, management_type, location, status, image_url, created_at, updated_at`

func scanDestination(row pgx.Row) (*models.Destination, error) {
	d := &models.Destination{}
	err := row.Scan(&d.ID, &d.Name, &d.Category, &d.ManagementType, &d.Location, &d.Status, &d.ImageURL, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *destinationRepo) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`
	d, err := scanDestination(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.storeErr("destinations.get", "destinations/"+id, err)
	}
	return d, nil
}

func (r *destinationRepo) GetAll(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("LOWER(category) = LOWER($%d)", len(args)))
	}

	query := `SELECT ` + destinationColumns + ` FROM destinations`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storeErr("destinations.list", "destinations", err)
	}
	defer rows.Close()

	out := make([]models.Destination, 0)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, r.storeErr("destinations.list", "destinations", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storeErr("destinations.list", "destinations", err)
	}
	return out, nil
}

func (r *destinationRepo) Create(ctx context.Context, d *models.Destination) error {
	query := `INSERT INTO destinations (id, name, category, management_type, location, status, image_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query, d.ID, d.Name, d.Category, d.ManagementType, d.Location, d.Status, d.ImageURL).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return r.storeErr("destinations.create", "destinations/"+d.ID, err)
	}
	zlog.Info().Str("destination_id", d.ID).Msg("Repo: destination created")
	return nil
}

func (r *destinationRepo) Update(ctx context.Context, d *models.Destination) error {
	query := `UPDATE destinations
	          SET name = $2, category = $3, management_type = $4, location = $5, status = $6, updated_at = NOW()
	          WHERE id = $1
	          RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, d.ID, d.Name, d.Category, d.ManagementType, d.Location, d.Status).Scan(&d.UpdatedAt)
	if err != nil {
		return r.storeErr("destinations.update", "destinations/"+d.ID, err)
	}
	return nil
}

func (r *destinationRepo) UpdateImage(ctx context.Context, id, imageURL string) error {
	tag, err := r.db.Exec(ctx, `UPDATE destinations SET image_url = $2, updated_at = NOW() WHERE id = $1`, id, imageURL)
	if err != nil {
		return r.storeErr("destinations.image", "destinations/"+id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("destinations.image", "destinations/"+id)
	}
	return nil
}

// ExistingIDs mengembalikan id dari ids yang benar-benar ada di tabel.
func (r *destinationRepo) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id FROM destinations WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, r.storeErr("destinations.list", "destinations", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, r.storeErr("destinations.list", "destinations", err)
	}
	return found, nil
}

// UpsertTx dipakai seeding. Baris yang isinya sama tidak disentuh (updated_at tetap).
func (r *destinationRepo) UpsertTx(ctx context.Context, tx pgx.Tx, d *models.Destination) error {
	query := `INSERT INTO destinations (id, name, category, management_type, location, status)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (id) DO UPDATE SET
	              name = EXCLUDED.name,
	              category = EXCLUDED.category,
	              management_type = EXCLUDED.management_type,
	              location = EXCLUDED.location,
	              status = EXCLUDED.status,
	              updated_at = NOW()
	          WHERE (destinations.name, destinations.category, destinations.management_type, destinations.location, destinations.status)
	                IS DISTINCT FROM
	                (EXCLUDED.name, EXCLUDED.category, EXCLUDED.management_type, EXCLUDED.location, EXCLUDED.status)`
	if _, err := tx.Exec(ctx, query, d.ID, d.Name, d.Category, d.ManagementType, d.Location, d.Status); err != nil {
		return r.storeErr("seed.run", "destinations/"+d.ID, err)
	}
	return nil
}
