// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

type userRepo struct {
	store
}

// NewUserRepository membuat instance baru dari UserRepository
func NewUserRepository(db *pgxpool.Pool, errs *events.ErrorBus) UserRepository {
	return &userRepo{store{db: db, errs: errs}}
}

const userColumns = `uid, name, email, role, assigned_destinations, status, avatar, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.UID, &u.Name, &u.Email, &u.Role, &u.AssignedDestinations, &u.Status, &u.Avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if u.AssignedDestinations == nil {
		u.AssignedDestinations = []string{}
	}
	return u, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *userRepo) GetByID(ctx context.Context, uid string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		return nil, r.storeErr("users.get", "users/"+uid, err)
	}
	return u, nil
}

func (r *userRepo) GetAll(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, r.storeErr("users.list", "users", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY role, name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, r.storeErr("users.list", "users", err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, r.storeErr("users.list", "users", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.storeErr("users.list", "users", err)
	}
	zlog.Debug().Int("count", len(users)).Int("total", total).Msg("Repo: users listed")
	return users, total, nil
}

// Create menyimpan profil untuk identitas yang baru dibuat. Email ganda menjadi ConflictError.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (uid, name, email, role, assigned_destinations, status, avatar)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.UID, user.Name, user.Email, user.Role, nonNilStrings(user.AssignedDestinations), user.Status, user.Avatar,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return r.storeErr("users.create", "users/"+user.UID, err)
	}
	zlog.Info().Str("uid", user.UID).Str("role", string(user.Role)).Msg("Repo: user profile created")
	return nil
}

func (r *userRepo) UpdateRole(ctx context.Context, uid string, role models.Role) error {
	return r.execUser(ctx, uid, `UPDATE users SET role = $2, updated_at = NOW() WHERE uid = $1`, uid, role)
}

func (r *userRepo) UpdateStatus(ctx context.Context, uid string, status models.Status) error {
	return r.execUser(ctx, uid, `UPDATE users SET status = $2, updated_at = NOW() WHERE uid = $1`, uid, status)
}

func (r *userRepo) UpdateAssignedDestinations(ctx context.Context, uid string, destinationIDs []string) error {
	return r.execUser(ctx, uid, `UPDATE users SET assigned_destinations = $2, updated_at = NOW() WHERE uid = $1`,
		uid, nonNilStrings(destinationIDs))
}

func (r *userRepo) execUser(ctx context.Context, uid, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return r.storeErr("users.update", "users/"+uid, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("users.update", "users/"+uid)
	}
	return nil
}

// UpsertProfileTx dipakai seeding. Status tidak ditimpa agar penonaktifan oleh admin bertahan.
func (r *userRepo) UpsertProfileTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	query := `INSERT INTO users (uid, name, email, role, assigned_destinations, status, avatar)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (uid) DO UPDATE SET
	              name = EXCLUDED.name,
	              email = EXCLUDED.email,
	              role = EXCLUDED.role,
	              assigned_destinations = EXCLUDED.assigned_destinations,
	              avatar = EXCLUDED.avatar,
	              updated_at = NOW()
	          WHERE (users.name, users.email, users.role, users.assigned_destinations, users.avatar)
	                IS DISTINCT FROM
	                (EXCLUDED.name, EXCLUDED.email, EXCLUDED.role, EXCLUDED.assigned_destinations, EXCLUDED.avatar)`
	_, err := tx.Exec(ctx, query,
		user.UID, user.Name, user.Email, user.Role, nonNilStrings(user.AssignedDestinations), user.Status, user.Avatar)
	if err != nil {
		return r.storeErr("seed.run", "users/"+user.UID, err)
	}
	return nil
}
