package events

import (
	"errors"
	"strings"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
)

// ErrorEvent adalah payload kanal error pusat.
type ErrorEvent struct {
	Kind    apperrors.Kind `json:"kind"`
	Op      string         `json:"op"`
	Path    string         `json:"path,omitempty"`
	Message string         `json:"message"` // Pesan siap tampil (bahasa Indonesia).
	Cause   string         `json:"-"`
	At      time.Time      `json:"at"`
}

// NewErrorEvent membangun ErrorEvent dari error bertipe.
func NewErrorEvent(err error) ErrorEvent {
	evt := ErrorEvent{
		Kind:    apperrors.KindOf(err),
		Message: apperrors.UserMessage(err),
		Cause:   err.Error(),
		At:      time.Now(),
	}
	var e *apperrors.Error
	if errors.As(err, &e) {
		evt.Op = e.Op
		evt.Path = e.Path
	}
	return evt
}

// Redacted menghapus path resource dari event, termasuk dari pesannya.
// Dipakai untuk penerima yang belum tentu berhak melihat resource tersebut.
func (e ErrorEvent) Redacted() ErrorEvent {
	if e.Path == "" {
		return e
	}
	e.Message = strings.Replace(e.Message, " ("+e.Path+")", "", 1)
	e.Path = ""
	return e
}

// UnlockDecided dipublikasikan setelah keputusan buka kunci ter-commit.
type UnlockDecided struct {
	RequestID     string    `json:"request_id"`
	DestinationID string    `json:"destination_id"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Status        string    `json:"status"`
	RequestedBy   string    `json:"requested_by"`
	ProcessedBy   string    `json:"processed_by"`
	At            time.Time `json:"at"`
}

// ErrorBus dan DecisionBus adalah alias untuk dua kanal yang dipakai aplikasi.
type (
	ErrorBus    = Bus[ErrorEvent]
	DecisionBus = Bus[UnlockDecided]
)

// ReportStoreError mem-publish error store yang relevan bagi pengguna:
// permission_denied, network, dan unknown. Not-found/conflict/validation
// ditangani di jalur pemanggil dan tidak disiarkan.
func ReportStoreError(bus *ErrorBus, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindPermissionDenied, apperrors.KindNetwork, apperrors.KindUnknown:
		bus.Publish(NewErrorEvent(err))
	}
}
