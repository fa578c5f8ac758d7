// internal/service/auth_service_impl.go
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
	zlog "github.com/rs/zerolog/log"
)

type authServiceImpl struct {
	identity identity.Provider
	users    repository.UserRepository
	tokens   TokenIssuer
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(provider identity.Provider, users repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authServiceImpl{
		identity: provider,
		users:    users,
		tokens:   tokens,
	}
}

// Login memverifikasi kredensial di penyedia identitas lalu menerbitkan JWT.
// Peran di token diambil dari profil aplikasi agar perubahan peran langsung berlaku.
func (s *authServiceImpl) Login(ctx context.Context, input *models.LoginInput) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// 1. Verifikasi kredensial
	ident, err := s.identity.SignIn(ctx, email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials), errors.Is(err, identity.ErrIdentityNotFound):
			zlog.Info().Str("email", email).Msg("Service: Invalid credentials during login attempt")
			return nil, ErrInvalidCredentials
		case errors.Is(err, identity.ErrIdentityDisabled):
			zlog.Info().Str("email", email).Msg("Service: Login attempt on disabled identity")
			return nil, ErrAccountDisabled
		}
		zlog.Error().Err(err).Str("email", email).Msg("Service: Error signing in")
		return nil, err
	}

	// 2. Profil aplikasi harus ada dan aktif
	profile, err := s.users.GetByID(ctx, ident.UID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			zlog.Warn().Str("uid", ident.UID).Msg("Service: Identity has no application profile")
			return nil, apperrors.Authorization("auth.login", "profil pengguna belum dibuat, hubungi admin")
		}
		return nil, err
	}
	if !profile.IsActive() {
		return nil, ErrAccountDisabled
	}

	// 3. Generate JWT
	token, expiresAt, err := s.tokens.Generate(profile.UID, profile.Email, string(profile.Role))
	if err != nil {
		zlog.Error().Err(err).Str("uid", profile.UID).Msg("Service: Error generating JWT")
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	zlog.Info().Str("uid", profile.UID).Str("role", string(profile.Role)).Msg("Service: User logged in successfully")
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt, User: profile}, nil
}

func (s *authServiceImpl) Me(ctx context.Context, uid string) (*models.MeResponse, error) {
	ident, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, identity.ErrIdentityNotFound) {
			return nil, apperrors.NotFound("auth.me", "users/"+uid)
		}
		return nil, err
	}

	resp := &models.MeResponse{UID: ident.UID, Email: ident.Email, EmailVerified: ident.EmailVerified}
	profile, err := s.users.GetByID(ctx, uid)
	switch {
	case err == nil:
		resp.Profile = profile
	case errors.Is(err, apperrors.ErrNotFound):
		// Identitas tanpa profil tetap dikembalikan, Profile kosong.
	default:
		return nil, err
	}
	return resp, nil
}
