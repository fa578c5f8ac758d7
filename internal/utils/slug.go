package utils

import (
	"fmt"
	"strings"
	"time"
)

// Slugify mengubah nama menjadi id dokumen: huruf kecil, spasi jadi tanda hubung,
// karakter selain [a-z0-9-] dibuang, dan tanda hubung berurutan dirapatkan.
//
//	Slugify("Goa Jatijajar") == "goa-jatijajar"
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastHyphen := true // Mencegah tanda hubung di awal.
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// VisitID membentuk id record kunjungan "{destId}-{year}-{month}" tanpa padding bulan.
func VisitID(destinationID string, year, month int) string {
	return fmt.Sprintf("%s-%d-%d", destinationID, year, month)
}

// VisitPath adalah path resource yang dipakai di pesan error dan log.
func VisitPath(destinationID string, year, month int) string {
	return "visits/" + VisitID(destinationID, year, month)
}

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName mengembalikan nama bulan bahasa Indonesia (1-12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// PeriodEnded melaporkan apakah periode (year, month) sudah lewat relatif terhadap now.
// Bulan berjalan dianggap belum berakhir.
func PeriodEnded(year, month int, now time.Time) bool {
	cy, cm := now.Year(), int(now.Month())
	return year < cy || (year == cy && month < cm)
}
