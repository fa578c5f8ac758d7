package models

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// ====================================================================================
// Enum
// ====================================================================================

type Role string

const (
	RoleAdmin     Role = "admin"
	RolePengelola Role = "pengelola"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RolePengelola }

// Status dipakai bersama oleh User dan Destination.
type Status string

const (
	StatusAktif    Status = "aktif"
	StatusNonaktif Status = "nonaktif"
)

func (s Status) Valid() bool { return s == StatusAktif || s == StatusNonaktif }

type ManagementType string

const (
	ManagementPemerintah ManagementType = "pemerintah"
	ManagementSwasta     ManagementType = "swasta"
)

type UnlockStatus string

const (
	UnlockPending  UnlockStatus = "pending"
	UnlockApproved UnlockStatus = "approved"
	UnlockRejected UnlockStatus = "rejected"
)

// IsTerminal: approved dan rejected tidak bisa berubah lagi.
func (s UnlockStatus) IsTerminal() bool { return s == UnlockApproved || s == UnlockRejected }

// ====================================================================================
// Entitas
// ====================================================================================

type User struct {
	UID                  string    `json:"uid"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Role                 Role      `json:"role"`
	AssignedDestinations []string  `json:"assigned_destinations"` // Kosong untuk admin.
	Status               Status    `json:"status"`
	Avatar               string    `json:"avatar,omitempty"`
	CreatedAt            time.Time `json:"created_at,omitzero"`
	UpdatedAt            time.Time `json:"updated_at,omitzero"`
}

func (u *User) IsActive() bool { return u != nil && u.Status == StatusAktif }

func (u *User) IsActiveAdmin() bool { return u.IsActive() && u.Role == RoleAdmin }

func (u *User) IsActivePengelola() bool { return u.IsActive() && u.Role == RolePengelola }

// Manages melaporkan apakah destinasi ada di daftar tugas pengguna.
func (u *User) Manages(destinationID string) bool {
	return u != nil && slices.Contains(u.AssignedDestinations, destinationID)
}

type Destination struct {
	ID             string         `json:"id"` // Slug dari nama.
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	ManagementType ManagementType `json:"management_type"`
	Location       string         `json:"location"`
	Status         Status         `json:"status"`
	ImageURL       string         `json:"image_url,omitempty"`
	CreatedAt      time.Time      `json:"created_at,omitzero"`
	UpdatedAt      time.Time      `json:"updated_at,omitzero"`
}

type WismanDetail struct {
	Country string `json:"country" validate:"required"`
	Count   int    `json:"count" validate:"gte=0,lte=2147483647"`
}

// VisitData adalah rekap kunjungan bulanan satu destinasi.
// Satu record per (destinasi, tahun, bulan).
type VisitData struct {
	ID                 string         `json:"id"`
	DestinationID      string         `json:"destination_id"`
	Year               int            `json:"year"`
	Month              int            `json:"month"`
	Wisnus             int            `json:"wisnus"`
	Wisman             int            `json:"wisman"`
	WismanDetails      []WismanDetail `json:"wisman_details"`
	EventVisitors      int            `json:"event_visitors"`
	HistoricalVisitors int            `json:"historical_visitors"`
	TotalVisitors      int            `json:"total_visitors"`
	Locked             bool           `json:"locked"`
	UnlockedAt         *time.Time     `json:"unlocked_at,omitempty"` // Waktu kunci terakhir dibuka, nil bila terkunci.
	LastUpdatedBy      string         `json:"last_updated_by,omitempty"`
	CreatedAt          time.Time      `json:"created_at,omitzero"`
	UpdatedAt          time.Time      `json:"updated_at,omitzero"`
}

// Recalculate menghitung ulang TotalVisitors dari komponennya.
// Semua penulis wajib memanggilnya sebelum menyimpan.
func (v *VisitData) Recalculate() {
	v.TotalVisitors = v.Wisnus + v.Wisman + v.EventVisitors + v.HistoricalVisitors
}

func (v *VisitData) DetailsSum() int {
	sum := 0
	for _, d := range v.WismanDetails {
		sum += d.Count
	}
	return sum
}

// MaxCount adalah batas atas setiap hitungan dan total; kolom visits bertipe INT.
const MaxCount = math.MaxInt32

// CheckCounts memastikan semua hitungan berada di [0, MaxCount], total tidak
// melebihi MaxCount, dan rincian negara tidak melebihi jumlah wisman.
func (v *VisitData) CheckCounts() error {
	parts := []int{v.Wisnus, v.Wisman, v.EventVisitors, v.HistoricalVisitors}
	var total int64
	for _, n := range parts {
		if n < 0 {
			return fmt.Errorf("jumlah kunjungan tidak boleh negatif")
		}
		if n > MaxCount {
			return fmt.Errorf("jumlah kunjungan melebihi batas %d", MaxCount)
		}
		// Tiap bagian <= MaxInt32, jadi penjumlahan int64 tidak overflow.
		total += int64(n)
	}
	if total > MaxCount {
		return fmt.Errorf("total kunjungan (%d) melebihi batas %d", total, MaxCount)
	}
	for _, d := range v.WismanDetails {
		if d.Count < 0 {
			return fmt.Errorf("jumlah wisman negara %s tidak boleh negatif", d.Country)
		}
		if d.Count > MaxCount {
			return fmt.Errorf("jumlah wisman negara %s melebihi batas %d", d.Country, MaxCount)
		}
	}
	if sum := v.DetailsSum(); sum > v.Wisman {
		return fmt.Errorf("total rincian negara (%d) melebihi jumlah wisman (%d)", sum, v.Wisman)
	}
	return nil
}

type UnlockRequest struct {
	ID            string       `json:"id"`
	DestinationID string       `json:"destination_id"`
	Year          int          `json:"year"`
	Month         int          `json:"month"`
	Reason        string       `json:"reason"`
	Status        UnlockStatus `json:"status"`
	RequestedBy   string       `json:"requested_by"`
	ProcessedBy   string       `json:"processed_by,omitempty"` // Hanya terisi setelah diputuskan.
	CreatedAt     time.Time    `json:"created_at"`
	ProcessedAt   *time.Time   `json:"processed_at,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Country struct {
	Code string `json:"code"` // ISO 3166 alpha-2
	Name string `json:"name"`
}

type AppSettings struct {
	AppName    string    `json:"app_name"`
	Subtitle   string    `json:"subtitle"`
	FooterText string    `json:"footer_text"`
	UpdatedAt  time.Time `json:"updated_at,omitzero"`
}

// Response standar untuk API
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
