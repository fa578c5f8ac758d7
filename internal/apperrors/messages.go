package apperrors

import (
	"errors"
	"fmt"
)

// Label operasi dalam bahasa Indonesia untuk pesan notifikasi ke pengguna.
var opLabels = map[string]string{
	"visits.get":                "memuat data kunjungan",
	"visits.list":               "memuat daftar kunjungan",
	"visits.update":             "menyimpan data kunjungan",
	"visits.set_lock":           "mengubah status kunci data kunjungan",
	"visits.lock_elapsed":       "mengunci periode yang sudah berakhir",
	"unlock.submit":             "mengajukan permintaan buka kunci",
	"unlock.decide":             "memproses permintaan buka kunci",
	"unlock.list":               "memuat permintaan buka kunci",
	"destinations.get":          "memuat destinasi",
	"destinations.list":         "memuat daftar destinasi",
	"destinations.create":       "menambah destinasi",
	"destinations.update":       "memperbarui destinasi",
	"users.get":                 "memuat profil pengguna",
	"users.list":                "memuat daftar pengguna",
	"users.create":              "membuat pengguna",
	"users.change_role":         "mengubah peran pengguna",
	"users.change_status":       "mengubah status pengguna",
	"users.assign_destinations": "menugaskan destinasi",
	"auth.login":                "masuk ke aplikasi",
	"auth.me":                   "memuat akun",
	"categories.list":           "memuat kategori",
	"categories.create":         "menambah kategori",
	"countries.list":            "memuat daftar negara",
	"settings.get":              "memuat pengaturan",
	"settings.update":           "menyimpan pengaturan",
	"seed.run":                  "menjalankan seeding data",
	"reports.yearly":            "memuat laporan tahunan",
	"summaries.generate":        "membuat ringkasan naratif",
	"store.connectivity":        "menghubungi database",
	"identity.sign_in":          "masuk ke aplikasi",
	"identity.set_role":         "mengubah peran pengguna",
	"destinations.image":        "mengunggah gambar destinasi",
	"realtime.subscribe":        "berlangganan pembaruan data",
	"visits.lock":               "mengubah status kunci data kunjungan",
	"users.update":              "memperbarui pengguna",
	"stream.visits":             "berlangganan pembaruan data kunjungan",
}

var kindReasons = map[Kind]string{
	KindValidation:       "data tidak valid",
	KindAuthorization:    "Anda tidak memiliki hak akses",
	KindInvalidState:     "status data tidak mengizinkan operasi ini",
	KindPermissionDenied: "akses ditolak oleh database",
	KindNetwork:          "koneksi terputus, silakan coba lagi",
	KindNotFound:         "data tidak ditemukan",
	KindConflict:         "data sudah ada",
	KindUnknown:          "terjadi kesalahan tak terduga",
}

// UserMessage menyusun pesan singkat yang aman ditampilkan ke pengguna:
// menyebut operasi dan (jika diketahui) path resource, tanpa kode error internal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return "Gagal: " + kindReasons[KindUnknown]
	}

	action := opLabels[e.Op]
	if action == "" {
		action = "memproses permintaan"
	}
	reason := kindReasons[e.Kind]
	// Pesan validasi/state dari service sudah ditulis untuk pengguna, tampilkan apa adanya.
	if e.Msg != "" && (e.Kind == KindValidation || e.Kind == KindInvalidState || e.Kind == KindAuthorization || e.Kind == KindConflict) {
		reason = e.Msg
	}
	if e.Path != "" {
		return fmt.Sprintf("Gagal %s (%s): %s", action, e.Path, reason)
	}
	return fmt.Sprintf("Gagal %s: %s", action, reason)
}
