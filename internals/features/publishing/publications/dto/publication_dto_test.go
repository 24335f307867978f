package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	helper "terbitku_backend/internals/helpers"

	m "terbitku_backend/internals/features/publishing/publications/model"
	svc "terbitku_backend/internals/features/publishing/publications/service"
)

func TestBuildMarketStatusesDerivesPending(t *testing.T) {
	active := []string{"US", "UK", "DE"}
	pubDate := helper.DateOnly(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	rows := []m.PublicationModel{
		{
			PublicationID:            uuid.New(),
			PublicationMarket:        "UK",
			PublicationStatus:        m.PublicationScheduled,
			PublicationScheduledDate: pubDate,
		},
	}

	items := BuildMarketStatuses(active, rows)
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}

	byMarket := map[string]MarketStatusItem{}
	for _, it := range items {
		byMarket[it.Market] = it
	}

	// pasangan tanpa baris = pending tanpa id/tanggal
	for _, market := range []string{"US", "DE"} {
		it := byMarket[market]
		if it.Status != "pending" || it.PublicationID != nil || it.ScheduledDate != nil {
			t.Errorf("%s = %+v, want pending kosong", market, it)
		}
	}

	uk := byMarket["UK"]
	if uk.Status != "scheduled" || uk.ScheduledDate == nil || *uk.ScheduledDate != "2026-09-10" {
		t.Errorf("UK = %+v", uk)
	}
}

func TestBuildMarketStatusesPreservesActiveOrder(t *testing.T) {
	active := []string{"JP", "US", "DE"}
	items := BuildMarketStatuses(active, nil)
	for i, market := range active {
		if items[i].Market != market {
			t.Errorf("items[%d] = %s, want %s", i, items[i].Market, market)
		}
	}
}

func TestGroupCalendarGroupsPerDay(t *testing.T) {
	d1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	entries := []svc.CalendarEntry{
		{PublicationID: uuid.New(), Market: "US", Status: "scheduled", Date: d1},
		{PublicationID: uuid.New(), Market: "UK", Status: "scheduled", Date: d1},
		{PublicationID: uuid.New(), Market: "US", Status: "published", Date: d2},
	}

	days := GroupCalendar(entries)
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
	if days[0].Date != "2026-09-01" || len(days[0].Events) != 2 {
		t.Errorf("day[0] = %+v", days[0])
	}
	if days[1].Date != "2026-09-02" || len(days[1].Events) != 1 {
		t.Errorf("day[1] = %+v", days[1])
	}
}
