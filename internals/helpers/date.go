// file: internals/helpers/date.go
package helper

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDateYYYYMMDD parse "YYYY-MM-DD" menjadi tanggal (UTC, tanpa jam).
func ParseDateYYYYMMDD(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// DateOnly memotong komponen jam; semua tanggal kalender disimpan sebagai
// midnight UTC supaya perbandingan antar tanggal konsisten lintas store.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today: tanggal hari ini (date-only, UTC).
func Today() time.Time {
	return DateOnly(time.Now())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
