// internal/service/user_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/identity"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/repository"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

type userServiceImpl struct {
	identity     identity.Provider
	users        repository.UserRepository
	destinations repository.DestinationRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(provider identity.Provider, users repository.UserRepository, destinations repository.DestinationRepository) UserService {
	return &userServiceImpl{
		identity:     provider,
		users:        users,
		destinations: destinations,
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	return s.users.GetAll(ctx, limit, offset)
}

// CreateUser membuat akun identitas lalu profil aplikasi. Bila password kosong,
// password sementara acak dibuat dan dikembalikan sekali ke admin.
func (s *userServiceImpl) CreateUser(ctx context.Context, input *models.CreateUserInput) (*models.CreateUserResult, error) {
	const op = "users.create"
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !input.Role.Valid() {
		return nil, apperrors.Validation(op, "peran tidak dikenal")
	}

	// Password kosong: buat password sementara yang ditampilkan sekali ke admin.
	result := &models.CreateUserResult{}
	password := input.Password
	if password == "" {
		tmp, err := utils.GenerateTemporaryPassword()
		if err != nil {
			return nil, fmt.Errorf("generate temporary password: %w", err)
		}
		password = tmp
		result.TemporaryPassword = tmp
	}

	// --- 1. Akun identitas (di luar database aplikasi) ---
	ident, err := s.identity.CreateUser(ctx, identity.CreateParams{
		Email:       email,
		Password:    password,
		DisplayName: input.Name,
		PhotoURL:    input.Avatar,
	})
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			zlog.Warn().Str("email", email).Msg("Service: Email conflict during user creation")
			return nil, apperrors.Conflict(op, "email sudah terdaftar")
		}
		zlog.Error().Err(err).Str("email", email).Msg("Service: Error creating identity")
		return nil, err
	}
	// --- 2. Klaim peran; middleware membaca peran dari token ---
	if err := s.identity.SetRoleClaim(ctx, ident.UID, string(input.Role)); err != nil {
		return nil, err
	}

	// --- 3. Profil aplikasi ---
	user := &models.User{
		UID:                  ident.UID,
		Name:                 input.Name,
		Email:                email,
		Role:                 input.Role,
		AssignedDestinations: []string{},
		Status:               models.StatusAktif,
		Avatar:               input.Avatar,
	}
	if err := s.users.Create(ctx, user); err != nil {
		zlog.Error().Err(err).Str("uid", ident.UID).Msg("Service: Identity created but profile write failed")
		return nil, err
	}

	zlog.Info().Str("uid", user.UID).Str("role", string(user.Role)).Msg("Service: User created")
	result.User = user
	return result, nil
}

// ChangeRole menulis klaim identitas lebih dulu, lalu mencerminkannya ke profil.
// Turun ke admin mengosongkan daftar destinasi.
func (s *userServiceImpl) ChangeRole(ctx context.Context, actorUID, uid string, role models.Role) error {
	const op = "users.change_role"
	if !role.Valid() {
		return apperrors.Validation(op, "peran tidak dikenal")
	}
	if actorUID == uid && role != models.RoleAdmin {
		return apperrors.Validation(op, "admin tidak dapat menurunkan perannya sendiri")
	}
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return err
	}

	if err := s.identity.SetRoleClaim(ctx, uid, string(role)); err != nil {
		return err
	}
	if err := s.users.UpdateRole(ctx, uid, role); err != nil {
		return err
	}
	if role == models.RoleAdmin {
		if err := s.users.UpdateAssignedDestinations(ctx, uid, []string{}); err != nil {
			return err
		}
	}
	zlog.Info().Str("uid", uid).Str("role", string(role)).Str("by", actorUID).Msg("Service: User role changed")
	return nil
}

func (s *userServiceImpl) ChangeStatus(ctx context.Context, actorUID, uid string, status models.Status) error {
	const op = "users.change_status"
	if !status.Valid() {
		return apperrors.Validation(op, "status tidak dikenal")
	}
	if actorUID == uid && status != models.StatusAktif {
		return apperrors.Validation(op, "admin tidak dapat menonaktifkan akunnya sendiri")
	}
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return err
	}

	if err := s.identity.SetDisabled(ctx, uid, status == models.StatusNonaktif); err != nil {
		return err
	}
	if err := s.users.UpdateStatus(ctx, uid, status); err != nil {
		return err
	}
	zlog.Info().Str("uid", uid).Str("status", string(status)).Str("by", actorUID).Msg("Service: User status changed")
	return nil
}

// AssignDestinations mengganti seluruh daftar destinasi pengelola. Semua id harus ada.
func (s *userServiceImpl) AssignDestinations(ctx context.Context, uid string, destinationIDs []string) error {
	const op = "users.assign_destinations"
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return err
	}

	ids := dedupe(destinationIDs)
	if user.Role == models.RoleAdmin && len(ids) > 0 {
		return apperrors.Validation(op, "admin tidak memiliki daftar destinasi")
	}
	if len(ids) > 0 {
		existing, err := s.destinations.ExistingIDs(ctx, ids)
		if err != nil {
			return err
		}
		if missing := difference(ids, existing); len(missing) > 0 {
			return apperrors.Validation(op, "destinasi tidak ditemukan: "+strings.Join(missing, ", "))
		}
	}

	if err := s.users.UpdateAssignedDestinations(ctx, uid, ids); err != nil {
		return err
	}
	zlog.Info().Str("uid", uid).Strs("destinations", ids).Msg("Service: Destinations assigned")
	return nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func difference(want, have []string) []string {
	set := make(map[string]bool, len(have))
	for _, id := range have {
		set[id] = true
	}
	var missing []string
	for _, id := range want {
		if !set[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
