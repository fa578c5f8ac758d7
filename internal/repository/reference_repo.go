package repository

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ====================================================================================
// Category
// ====================================================================================

type categoryRepo struct {
	store
}

func NewCategoryRepository(db *pgxpool.Pool, errs *events.ErrorBus) CategoryRepository {
	return &categoryRepo{store{db: db, errs: errs}}
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, r.storeErr("categories.list", "categories", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.Category])
	if err != nil {
		return nil, r.storeErr("categories.list", "categories", err)
	}
	return out, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	if _, err := r.db.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)`, c.ID, c.Name); err != nil {
		return r.storeErr("categories.create", "categories/"+c.ID, err)
	}
	return nil
}

func (r *categoryRepo) ExistingNamesTx(ctx context.Context, tx pgx.Tx) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT name FROM categories`)
	if err != nil {
		return nil, r.storeErr("seed.run", "categories", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, r.storeErr("seed.run", "categories", err)
	}
	return names, nil
}

func (r *categoryRepo) CreateTx(ctx context.Context, tx pgx.Tx, c *models.Category) error {
	if _, err := tx.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`, c.ID, c.Name); err != nil {
		return r.storeErr("seed.run", "categories/"+c.ID, err)
	}
	return nil
}

// ====================================================================================
// Country
// ====================================================================================

type countryRepo struct {
	store
}

func NewCountryRepository(db *pgxpool.Pool, errs *events.ErrorBus) CountryRepository {
	return &countryRepo{store{db: db, errs: errs}}
}

func (r *countryRepo) GetAll(ctx context.Context) ([]models.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, r.storeErr("countries.list", "countries", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.Country])
	if err != nil {
		return nil, r.storeErr("countries.list", "countries", err)
	}
	return out, nil
}

func (r *countryRepo) UpsertTx(ctx context.Context, tx pgx.Tx, c *models.Country) error {
	query := `INSERT INTO countries (code, name) VALUES ($1, $2)
	          ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
	          WHERE countries.name IS DISTINCT FROM EXCLUDED.name`
	if _, err := tx.Exec(ctx, query, c.Code, c.Name); err != nil {
		return r.storeErr("seed.run", "countries/"+c.Code, err)
	}
	return nil
}

// ====================================================================================
// Settings
// ====================================================================================

type settingsRepo struct {
	store
}

func NewSettingsRepository(db *pgxpool.Pool, errs *events.ErrorBus) SettingsRepository {
	return &settingsRepo{store{db: db, errs: errs}}
}

func (r *settingsRepo) Get(ctx context.Context) (*models.AppSettings, error) {
	s := &models.AppSettings{}
	err := r.db.QueryRow(ctx, `SELECT app_name, subtitle, footer_text, updated_at FROM app_settings WHERE id = 'app'`).
		Scan(&s.AppName, &s.Subtitle, &s.FooterText, &s.UpdatedAt)
	if err != nil {
		return nil, r.storeErr("settings.get", "settings/app", err)
	}
	return s, nil
}

const upsertSettingsQuery = `INSERT INTO app_settings (id, app_name, subtitle, footer_text)
	VALUES ('app', $1, $2, $3)
	ON CONFLICT (id) DO UPDATE SET
	    app_name = EXCLUDED.app_name,
	    subtitle = EXCLUDED.subtitle,
	    footer_text = EXCLUDED.footer_text,
	    updated_at = NOW()
	WHERE (app_settings.app_name, app_settings.subtitle, app_settings.footer_text)
	      IS DISTINCT FROM (EXCLUDED.app_name, EXCLUDED.subtitle, EXCLUDED.footer_text)`

func (r *settingsRepo) Update(ctx context.Context, s *models.AppSettings) error {
	if _, err := r.db.Exec(ctx, upsertSettingsQuery, s.AppName, s.Subtitle, s.FooterText); err != nil {
		return r.storeErr("settings.update", "settings/app", err)
	}
	return nil
}

func (r *settingsRepo) UpsertTx(ctx context.Context, tx pgx.Tx, s *models.AppSettings) error {
	if _, err := tx.Exec(ctx, upsertSettingsQuery, s.AppName, s.Subtitle, s.FooterText); err != nil {
		return r.storeErr("seed.run", "settings/app", err)
	}
	return nil
}
