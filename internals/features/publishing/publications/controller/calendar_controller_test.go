package controller

import (
	"testing"
	"time"
)

func TestResolveCalendarRangeExplicit(t *testing.T) {
	from, to, err := resolveCalendarRange("2026-09-01", "2026-09-15", "")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if from.Format("2006-01-02") != "2026-09-01" || to.Format("2006-01-02") != "2026-09-15" {
		t.Errorf("range = %s..%s", from, to)
	}
}

func TestResolveCalendarRangeRejectsHalfPair(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
	}{
		{"from saja", "2026-09-01", ""},
		{"to saja", "", "2026-09-30"},
		{"from invalid", "2026-9-1", "2026-09-30"},
		{"to invalid", "2026-09-01", "kemarin"},
		{"terbalik", "2026-09-30", "2026-09-01"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := resolveCalendarRange(c.from, c.to, ""); err == nil {
				t.Errorf("resolveCalendarRange(%q, %q) lolos, want error", c.from, c.to)
			}
		})
	}
}

func TestResolveCalendarRangeMonth(t *testing.T) {
	from, to, err := resolveCalendarRange("", "", "2026-02")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if from.Format("2006-01-02") != "2026-02-01" || to.Format("2006-01-02") != "2026-02-28" {
		t.Errorf("range = %s..%s", from, to)
	}

	if _, _, err := resolveCalendarRange("", "", "Feb 2026"); err == nil {
		t.Error("month non-YYYY-MM lolos, want error")
	}
}

func TestResolveCalendarRangeDefaultsToCurrentMonth(t *testing.T) {
	from, to, err := resolveCalendarRange("", "", "")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	now := time.Now().UTC()
	if from.Month() != now.Month() || from.Day() != 1 {
		t.Errorf("from = %s, want awal bulan berjalan", from)
	}
	if to.Before(from) {
		t.Errorf("to = %s sebelum from = %s", to, from)
	}
}
