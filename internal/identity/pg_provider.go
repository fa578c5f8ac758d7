package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

type pgProvider struct {
	db *pgxpool.Pool
}

// NewPgProvider membuat Provider di atas tabel auth_identities.
func NewPgProvider(db *pgxpool.Pool) Provider {
	return &pgProvider{db: db}
}

const identityColumns = `uid, email, display_name, photo_url, email_verified, disabled, role_claim`

func scanIdentity(row pgx.Row, withHash bool) (*Identity, string, error) {
	var id Identity
	var hash string
	dest := []any{&id.UID, &id.Email, &id.DisplayName, &id.PhotoURL, &id.EmailVerified, &id.Disabled, &id.Role}
	if withHash {
		dest = append(dest, &hash)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, "", err
	}
	return &id, hash, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *pgProvider) GetUserByEmail(ctx context.Context, email string) (*Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM auth_identities WHERE email = $1`
	id, _, err := scanIdentity(p.db.QueryRow(ctx, query, normalizeEmail(email)), false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		zlog.Error().Err(err).Str("email", email).Msg("Identity: error getting identity by email")
		return nil, fmt.Errorf("error getting identity by email: %w", err)
	}
	return id, nil
}

func (p *pgProvider) GetUser(ctx context.Context, uid string) (*Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM auth_identities WHERE uid = $1`
	id, _, err := scanIdentity(p.db.QueryRow(ctx, query, uid), false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		zlog.Error().Err(err).Str("uid", uid).Msg("Identity: error getting identity by uid")
		return nil, fmt.Errorf("error getting identity %s: %w", uid, err)
	}
	return id, nil
}

func (p *pgProvider) CreateUser(ctx context.Context, params CreateParams) (*Identity, error) {
	hash, err := utils.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	query := `INSERT INTO auth_identities (uid, email, password_hash, display_name, photo_url)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING ` + identityColumns
	row := p.db.QueryRow(ctx, query, uuid.NewString(), normalizeEmail(params.Email), hash, params.DisplayName, params.PhotoURL)
	id, _, err := scanIdentity(row, false)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			zlog.Warn().Str("email", params.Email).Msg("Identity: email already registered")
			return nil, ErrEmailTaken
		}
		zlog.Error().Err(err).Str("email", params.Email).Msg("Identity: error creating identity")
		return nil, fmt.Errorf("error creating identity: %w", err)
	}
	zlog.Info().Str("uid", id.UID).Str("email", id.Email).Msg("Identity created")
	return id, nil
}

func (p *pgProvider) UpdateUser(ctx context.Context, uid string, params UpdateParams) (*Identity, error) {
	query := `UPDATE auth_identities SET display_name = $2, photo_url = $3, updated_at = NOW()
	          WHERE uid = $1
	          RETURNING ` + identityColumns
	id, _, err := scanIdentity(p.db.QueryRow(ctx, query, uid, params.DisplayName, params.PhotoURL), false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		zlog.Error().Err(err).Str("uid", uid).Msg("Identity: error updating identity")
		return nil, fmt.Errorf("error updating identity %s: %w", uid, err)
	}
	return id, nil
}

func (p *pgProvider) SetRoleClaim(ctx context.Context, uid, role string) error {
	return p.execOne(ctx, "set role claim", uid,
		`UPDATE auth_identities SET role_claim = $2, updated_at = NOW() WHERE uid = $1`, uid, role)
}

func (p *pgProvider) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	return p.execOne(ctx, "set disabled", uid,
		`UPDATE auth_identities SET disabled = $2, updated_at = NOW() WHERE uid = $1`, uid, disabled)
}

func (p *pgProvider) execOne(ctx context.Context, action, uid, query string, args ...any) error {
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		zlog.Error().Err(err).Str("uid", uid).Str("action", action).Msg("Identity: update failed")
		return fmt.Errorf("error on %s for identity %s: %w", action, uid, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrIdentityNotFound
	}
	return nil
}

func (p *pgProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	query := `SELECT ` + identityColumns + `, password_hash FROM auth_identities WHERE email = $1`
	id, hash, err := scanIdentity(p.db.QueryRow(ctx, query, normalizeEmail(email)), true)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		zlog.Error().Err(err).Str("email", email).Msg("Identity: error during sign in lookup")
		return nil, fmt.Errorf("error signing in: %w", err)
	}
	if !utils.CheckPasswordHash(password, hash) {
		return nil, ErrInvalidCredentials
	}
	if id.Disabled {
		return nil, ErrIdentityDisabled
	}
	return id, nil
}
