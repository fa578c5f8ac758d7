// internal/apperrors/apperrors.go
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind mengklasifikasikan kegagalan agar handler, bus error, dan metrik bisa
// bereaksi seragam tanpa mem-parsing pesan error.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindAuthorization    Kind = "authorization"
	KindInvalidState     Kind = "invalid_state"
	KindPermissionDenied Kind = "permission_denied"
	KindNetwork          Kind = "network"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindUnknown          Kind = "unknown"
)

// Error adalah error bertipe dengan konteks operasi dan path resource.
type Error struct {
	Kind Kind
	Op   string // Operasi yang dicoba, misal "visits.update".
	Path string // Path resource, misal "visits/goa-jatijajar-2024-5".
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Op != "" && e.Path != "":
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, msg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is membuat errors.Is(err, &Error{Kind: X}) cocok berdasarkan Kind saja.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Msg == "" && t.Err == nil
}

// Sentinel per kind, dipakai sebagai target errors.Is.
var (
	ErrValidation       = &Error{Kind: KindValidation}
	ErrAuthorization    = &Error{Kind: KindAuthorization}
	ErrInvalidState     = &Error{Kind: KindInvalidState}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrNetwork          = &Error{Kind: KindNetwork}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrConflict         = &Error{Kind: KindConflict}
)

func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func Validation(op, msg string) *Error    { return New(KindValidation, op, msg) }
func Authorization(op, msg string) *Error { return New(KindAuthorization, op, msg) }
func InvalidState(op, msg string) *Error  { return New(KindInvalidState, op, msg) }
func NotFound(op, path string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Path: path, Msg: "not found"}
}
func Conflict(op, msg string) *Error { return New(KindConflict, op, msg) }

// KindOf mengembalikan Kind dari rantai error; error asing dianggap unknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsTransient melaporkan apakah operasi layak diulang.
func IsTransient(err error) bool {
	k := KindOf(err)
	return k == KindNetwork || k == KindUnknown
}

// FromStore menerjemahkan error dari PostgreSQL/pgx ke taksonomi aplikasi,
// lengkap dengan operasi dan path yang gagal. Error yang sudah bertipe dikembalikan apa adanya.
func FromStore(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	kind := KindUnknown
	var pgErr *pgconn.PgError
	var netErr net.Error
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		kind = KindNotFound
	case errors.As(err, &pgErr):
		switch {
		case pgErr.Code == "42501":
			kind = KindPermissionDenied
		case pgErr.Code == "23505":
			kind = KindConflict
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == "08":
			kind = KindNetwork
		}
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		kind = KindNetwork
	case errors.As(err, &netErr), pgconn.SafeToRetry(err):
		kind = KindNetwork
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// HTTPStatus memetakan Kind ke status HTTP.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization, KindPermissionDenied:
		return http.StatusForbidden
	case KindInvalidState, KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindNetwork:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
