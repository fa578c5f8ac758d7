package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

// VisitsChangedChannel adalah channel NOTIFY yang dipicu setiap perubahan tabel visits.
const VisitsChangedChannel = "visits_changed"

// schemaStatements idempoten: aman dijalankan di setiap startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS auth_identities (
		uid            TEXT PRIMARY KEY,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		display_name   TEXT NOT NULL DEFAULT '',
		photo_url      TEXT NOT NULL DEFAULT '',
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		disabled       BOOLEAN NOT NULL DEFAULT FALSE,
		role_claim     TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		uid                   TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		email                 TEXT NOT NULL,
		role                  TEXT NOT NULL CHECK (role IN ('admin', 'pengelola')),
		assigned_destinations TEXT[] NOT NULL DEFAULT '{}',
		status                TEXT NOT NULL DEFAULT 'aktif' CHECK (status IN ('aktif', 'nonaktif')),
		avatar                TEXT NOT NULL DEFAULT '',
		created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS destinations (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		category        TEXT NOT NULL,
		management_type TEXT NOT NULL CHECK (management_type IN ('pemerintah', 'swasta')),
		location        TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'aktif' CHECK (status IN ('aktif', 'nonaktif')),
		image_url       TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS visits (
		id                  TEXT PRIMARY KEY,
		destination_id      TEXT NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
		year                INT NOT NULL,
		month               INT NOT NULL CHECK (month BETWEEN 1 AND 12),
		wisnus              INT NOT NULL DEFAULT 0 CHECK (wisnus >= 0),
		wisman              INT NOT NULL DEFAULT 0 CHECK (wisman >= 0),
		wisman_details      JSONB NOT NULL DEFAULT '[]',
		event_visitors      INT NOT NULL DEFAULT 0 CHECK (event_visitors >= 0),
		historical_visitors INT NOT NULL DEFAULT 0 CHECK (historical_visitors >= 0),
		total_visitors      INT NOT NULL DEFAULT 0,
		locked              BOOLEAN NOT NULL DEFAULT FALSE,
		unlocked_at         TIMESTAMPTZ,
		last_updated_by     TEXT NOT NULL DEFAULT '',
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (destination_id, year, month)
	)`,
	// Basis data lama belum punya kolom ini.
	`ALTER TABLE visits ADD COLUMN IF NOT EXISTS unlocked_at TIMESTAMPTZ`,
	`CREATE INDEX IF NOT EXISTS idx_visits_year ON visits (year)`,
	`CREATE TABLE IF NOT EXISTS unlock_requests (
		id             TEXT PRIMARY KEY,
		destination_id TEXT NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
		year           INT NOT NULL,
		month          INT NOT NULL CHECK (month BETWEEN 1 AND 12),
		reason         TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
		requested_by   TEXT NOT NULL,
		processed_by   TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		processed_at   TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_unlock_requests_pending
		ON unlock_requests (destination_id, year, month) WHERE status = 'pending'`,
	`CREATE TABLE IF NOT EXISTS categories (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS countries (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS app_settings (
		id          TEXT PRIMARY KEY DEFAULT 'app',
		app_name    TEXT NOT NULL DEFAULT '',
		subtitle    TEXT NOT NULL DEFAULT '',
		footer_text TEXT NOT NULL DEFAULT '',
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE OR REPLACE FUNCTION notify_visits_changed() RETURNS trigger AS $$
	DECLARE
		rec RECORD;
	BEGIN
		IF TG_OP = 'DELETE' THEN rec := OLD; ELSE rec := NEW; END IF;
		PERFORM pg_notify('` + VisitsChangedChannel + `', json_build_object(
			'op', TG_OP,
			'id', rec.id,
			'destination_id', rec.destination_id,
			'year', rec.year,
			'month', rec.month
		)::text);
		RETURN rec;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS trg_visits_changed ON visits`,
	`CREATE TRIGGER trg_visits_changed
		AFTER INSERT OR UPDATE OR DELETE ON visits
		FOR EACH ROW EXECUTE FUNCTION notify_visits_changed()`,
}

// EnsureSchema membuat tabel, index, dan trigger NOTIFY jika belum ada.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			zlog.Error().Err(err).Int("statement", i).Msg("Failed to apply schema statement")
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	zlog.Info().Int("statements", len(schemaStatements)).Msg("Database schema ensured")
	return nil
}
