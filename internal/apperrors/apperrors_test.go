package apperrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFromStore(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{name: "No Rows", err: pgx.ErrNoRows, want: apperrors.KindNotFound},
		{name: "Wrapped No Rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: apperrors.KindNotFound},
		{name: "Unique Violation", err: &pgconn.PgError{Code: "23505"}, want: apperrors.KindConflict},
		{name: "Insufficient Privilege", err: &pgconn.PgError{Code: "42501"}, want: apperrors.KindPermissionDenied},
		{name: "Connection Exception", err: &pgconn.PgError{Code: "08006"}, want: apperrors.KindNetwork},
		{name: "Deadline", err: context.DeadlineExceeded, want: apperrors.KindNetwork},
		{name: "Other Pg Error", err: &pgconn.PgError{Code: "22P02"}, want: apperrors.KindUnknown},
		{name: "Plain Error", err: errors.New("boom"), want: apperrors.KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := apperrors.FromStore("visits.get", "visits/goa-jatijajar-2024-5", tc.err)
			assert.Equal(t, tc.want, apperrors.KindOf(err))
			assert.ErrorIs(t, err, tc.err, "cause must stay in the chain")

			var e *apperrors.Error
			if assert.True(t, errors.As(err, &e)) {
				assert.Equal(t, "visits.get", e.Op)
				assert.Equal(t, "visits/goa-jatijajar-2024-5", e.Path)
			}
		})
	}

	assert.NoError(t, apperrors.FromStore("x", "y", nil))

	typed := apperrors.Validation("visits.update", "negatif")
	assert.Same(t, typed, apperrors.FromStore("store.write", "", typed))
}

func TestKindMatching(t *testing.T) {
	err := fmt.Errorf("decide: %w", apperrors.InvalidState("unlock.decide", "permintaan sudah diputuskan"))

	assert.True(t, errors.Is(err, apperrors.ErrInvalidState))
	assert.False(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(errors.New("x")))
	assert.Equal(t, apperrors.Kind(""), apperrors.KindOf(nil))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, apperrors.IsTransient(&apperrors.Error{Kind: apperrors.KindNetwork}))
	assert.True(t, apperrors.IsTransient(errors.New("unexpected")))
	assert.False(t, apperrors.IsTransient(apperrors.NotFound("op", "p")))
	assert.False(t, apperrors.IsTransient(apperrors.Conflict("op", "m")))
	assert.False(t, apperrors.IsTransient(apperrors.InvalidState("op", "m")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[apperrors.Kind]int{
		apperrors.KindValidation:       http.StatusBadRequest,
		apperrors.KindAuthorization:    http.StatusForbidden,
		apperrors.KindPermissionDenied: http.StatusForbidden,
		apperrors.KindInvalidState:     http.StatusConflict,
		apperrors.KindConflict:         http.StatusConflict,
		apperrors.KindNotFound:         http.StatusNotFound,
		apperrors.KindNetwork:          http.StatusServiceUnavailable,
		apperrors.KindUnknown:          http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, apperrors.HTTPStatus(kind), string(kind))
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", apperrors.UserMessage(nil))
	assert.Equal(t, "Gagal: terjadi kesalahan tak terduga", apperrors.UserMessage(errors.New("pq: secret detail")))
	assert.Equal(t,
		"Gagal memuat data kunjungan (visits/goa-jatijajar-2024-5): data tidak ditemukan",
		apperrors.UserMessage(apperrors.NotFound("visits.get", "visits/goa-jatijajar-2024-5")))
	assert.Equal(t,
		"Gagal memproses permintaan buka kunci: permintaan sudah diputuskan (rejected)",
		apperrors.UserMessage(apperrors.InvalidState("unlock.decide", "permintaan sudah diputuskan (rejected)")))
	// Error unik dari users.Create harus disebut sebagai pembuatan, bukan pembaruan.
	assert.Equal(t,
		"Gagal membuat pengguna (users/uid-1): data sudah ada",
		apperrors.UserMessage(apperrors.FromStore("users.create", "users/uid-1", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t,
		"Gagal memproses permintaan: data sudah ada",
		apperrors.UserMessage(&apperrors.Error{Kind: apperrors.KindConflict, Op: "tidak.dikenal"}))
}
