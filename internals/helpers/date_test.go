package helper

import (
	"testing"
	"time"
)

func TestParseDateYYYYMMDD(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2026-01-10", true},
		{" 2026-01-10 ", true},
		{"2026-1-10", false},
		{"10-01-2026", false},
		{"", false},
		{"2026-02-30", false},
	}
	for _, c := range cases {
		got, ok := ParseDateYYYYMMDD(c.in)
		if ok != c.ok {
			t.Errorf("ParseDateYYYYMMDD(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
		if ok && (got.Hour() != 0 || got.Location() != time.UTC) {
			t.Errorf("ParseDateYYYYMMDD(%q) = %v, want midnight UTC", c.in, got)
		}
	}
}

func TestDateOnlyNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	in := time.Date(2026, 3, 15, 23, 45, 0, 0, loc) // = 16:45 UTC
	got := DateOnly(in)

	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
}

func TestFormatDatePtr(t *testing.T) {
	if FormatDatePtr(nil) != nil {
		t.Error("FormatDatePtr(nil) harus nil")
	}
	d := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := FormatDatePtr(&d); got == nil || *got != "2026-12-31" {
		t.Errorf("FormatDatePtr = %v", got)
	}
}
