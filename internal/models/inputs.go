package models

import "time"

// --- Auth ---

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

// MeResponse menggabungkan data identitas dengan profil aplikasi.
type MeResponse struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Profile       *User  `json:"profile,omitempty"`
}

// --- Admin: pengguna ---

type CreateUserInput struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"` // Kosong = password sementara acak.
	Role     Role   `json:"role" validate:"required,oneof=admin pengelola"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// CreateUserResult mengembalikan password sementara sekali saja.
type CreateUserResult struct {
	User              *User  `json:"user"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
}

type UpdateRoleInput struct {
	Role Role `json:"role" validate:"required,oneof=admin pengelola"`
}

type UpdateStatusInput struct {
	Status Status `json:"status" validate:"required,oneof=aktif nonaktif"`
}

type AssignDestinationsInput struct {
	DestinationIDs []string `json:"destination_ids" validate:"dive,required"`
}

// --- Destinasi ---

type CreateDestinationInput struct {
	Name           string         `json:"name" validate:"required,min=3,max=150"`
	Category       string         `json:"category" validate:"required"`
	ManagementType ManagementType `json:"management_type" validate:"required,oneof=pemerintah swasta"`
	Location       string         `json:"location" validate:"required"`
	Status         Status         `json:"status,omitempty" validate:"omitempty,oneof=aktif nonaktif"`
}

// UpdateDestinationInput: field nil tidak diubah.
type UpdateDestinationInput struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,min=3,max=150"`
	Category       *string         `json:"category,omitempty" validate:"omitempty,min=1"`
	ManagementType *ManagementType `json:"management_type,omitempty" validate:"omitempty,oneof=pemerintah swasta"`
	Location       *string         `json:"location,omitempty" validate:"omitempty,min=1"`
	Status         *Status         `json:"status,omitempty" validate:"omitempty,oneof=aktif nonaktif"`
}

type DestinationFilter struct {
	Status   Status
	Category string
}

// --- Kunjungan ---

// UpdateVisitInput tidak memuat total: total selalu dihitung ulang di server.
type UpdateVisitInput struct {
	Wisnus             int            `json:"wisnus" validate:"gte=0,lte=2147483647"`
	Wisman             int            `json:"wisman" validate:"gte=0,lte=2147483647"`
	WismanDetails      []WismanDetail `json:"wisman_details" validate:"dive"`
	EventVisitors      int            `json:"event_visitors" validate:"gte=0,lte=2147483647"`
	HistoricalVisitors int            `json:"historical_visitors" validate:"gte=0,lte=2147483647"`
}

type SetLockInput struct {
	Locked *bool `json:"locked" validate:"required"`
}

// --- Permintaan buka kunci ---

// SubmitUnlockInput: alasan dan bulan divalidasi di service agar pesan error seragam.
type SubmitUnlockInput struct {
	DestinationID string `json:"destination_id" validate:"required"`
	Year          int    `json:"year" validate:"required,gte=2000,lte=2100"`
	Month         int    `json:"month"`
	Reason        string `json:"reason"`
}

type DecideUnlockInput struct {
	Decision UnlockStatus `json:"decision" validate:"required"`
}

type UnlockFilter struct {
	DestinationID string
	Status        UnlockStatus
	// DestinationIn membatasi hasil ke destinasi tertentu (scope pengelola). Nil = semua.
	DestinationIn []string
}

// --- Referensi ---

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateSettingsInput struct {
	AppName    string `json:"app_name" validate:"required,max=100"`
	Subtitle   string `json:"subtitle" validate:"max=200"`
	FooterText string `json:"footer_text" validate:"max=300"`
}

// --- Ringkasan naratif ---

type SummaryInput struct {
	DestinationID string `json:"destination_id" validate:"required"`
	Year          int    `json:"year" validate:"required,gte=2000,lte=2100"`
	Month         int    `json:"month" validate:"required,min=1,max=12"`
}

// NarrativeInput adalah data terstruktur yang dikirim ke generator ringkasan.
type NarrativeInput struct {
	MonthName       string         `json:"month_name"`
	Year            int            `json:"year"`
	DestinationName string         `json:"destination_name"`
	Wisnus          int            `json:"wisnus"`
	Wisman          int            `json:"wisman"`
	Total           int            `json:"total"`
	Nationalities   []WismanDetail `json:"nationalities"`
}

type SummaryResult struct {
	DestinationID string `json:"destination_id"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Summary       string `json:"summary"`
}
