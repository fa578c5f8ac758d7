// internal/identity/identity.go
package identity

import (
	"context"
	"errors"
)

// Paket identity adalah penyedia identitas aplikasi: akun login, password,
// dan klaim peran. Profil aplikasi (users) disimpan terpisah oleh repository.

var (
	// ErrIdentityNotFound dikembalikan saat email/uid tidak terdaftar.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrInvalidCredentials dikembalikan SignIn untuk email atau password yang salah.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrIdentityDisabled dikembalikan SignIn untuk akun yang dinonaktifkan.
	ErrIdentityDisabled = errors.New("identity is disabled")
	// ErrEmailTaken dikembalikan CreateUser bila email sudah terdaftar.
	ErrEmailTaken = errors.New("email already registered")
)

type Identity struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	Disabled      bool
	Role          string // Klaim peran; kosong jika belum diset.
}

type CreateParams struct {
	Email       string
	Password    string
	DisplayName string
	PhotoURL    string
}

// UpdateParams: hanya nama tampilan dan foto yang boleh diubah lewat jalur ini.
type UpdateParams struct {
	DisplayName string
	PhotoURL    string
}

// Provider adalah kontrak penyedia identitas.
type Provider interface {
	GetUserByEmail(ctx context.Context, email string) (*Identity, error)
	GetUser(ctx context.Context, uid string) (*Identity, error)
	CreateUser(ctx context.Context, params CreateParams) (*Identity, error)
	UpdateUser(ctx context.Context, uid string, params UpdateParams) (*Identity, error)
	SetRoleClaim(ctx context.Context, uid, role string) error
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	SignIn(ctx context.Context, email, password string) (*Identity, error)
}
