// file: internals/features/publishing/publications/dto/publication_dto.go
package dto

import (
	"github.com/google/uuid"

	helper "terbitku_backend/internals/helpers"

	m "terbitku_backend/internals/features/publishing/publications/model"
	svc "terbitku_backend/internals/features/publishing/publications/service"
)

/* =========================================================
   Requests
   ========================================================= */

// Jadwalkan beberapa market sekaligus; urutan markets dipertahankan dan
// menentukan siapa yang menang slot (kontrak engine, bukan detail).
type ScheduleMarketsRequest struct {
	Markets   []string `json:"markets" validate:"required,min=1,dive,required,max=8"`
	StartDate string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

type RescheduleRequest struct {
	NewDate string `json:"new_date" validate:"required,datetime=2006-01-02"`
}

type PublishRequest struct {
	KdpURL *string `json:"kdp_url" validate:"omitempty,max=500"`
}

/* =========================================================
   Responses
   ========================================================= */

type PublicationResponse struct {
	PublicationID  uuid.UUID `json:"publication_id"`
	ManuscriptID   uuid.UUID `json:"manuscript_id"`
	Market         string    `json:"market"`
	Status         string    `json:"status"`
	ScheduledDate  string    `json:"scheduled_date"`
	PublishedDate  *string   `json:"published_date,omitempty"`
	KdpURL         *string   `json:"kdp_url,omitempty"`
}

func FromModel(p *m.PublicationModel) PublicationResponse {
	return PublicationResponse{
		PublicationID: p.PublicationID,
		ManuscriptID:  p.PublicationManuscriptID,
		Market:        p.PublicationMarket,
		Status:        string(p.PublicationStatus),
		ScheduledDate: helper.FormatDate(p.PublicationScheduledDate),
		PublishedDate: helper.FormatDatePtr(p.PublicationPublishedDate),
		KdpURL:        p.PublicationKdpURL,
	}
}

// Item daftar publikasi per-manuscript. Status "pending" adalah turunan:
// market aktif yang belum punya baris ikut dimunculkan tanpa publication_id.
type MarketStatusItem struct {
	Market        string     `json:"market"`
	Status        string     `json:"status"` // pending | scheduled | published
	PublicationID *uuid.UUID `json:"publication_id,omitempty"`
	ScheduledDate *string    `json:"scheduled_date,omitempty"`
	PublishedDate *string    `json:"published_date,omitempty"`
	KdpURL        *string    `json:"kdp_url,omitempty"`
}

// BuildMarketStatuses menggabungkan baris yang ada dengan daftar market
// aktif; pasangan tanpa baris = pending.
func BuildMarketStatuses(activeMarkets []string, rows []m.PublicationModel) []MarketStatusItem {
	byMarket := make(map[string]*m.PublicationModel, len(rows))
	for i := range rows {
		byMarket[rows[i].PublicationMarket] = &rows[i]
	}

	out := make([]MarketStatusItem, 0, len(activeMarkets))
	for _, market := range activeMarkets {
		p, ok := byMarket[market]
		if !ok {
			out = append(out, MarketStatusItem{Market: market, Status: "pending"})
			continue
		}
		sched := helper.FormatDate(p.PublicationScheduledDate)
		out = append(out, MarketStatusItem{
			Market:        market,
			Status:        string(p.PublicationStatus),
			PublicationID: &p.PublicationID,
			ScheduledDate: &sched,
			PublishedDate: helper.FormatDatePtr(p.PublicationPublishedDate),
			KdpURL:        p.PublicationKdpURL,
		})
	}
	return out
}

type AssignedMarketResponse struct {
	Market string `json:"market"`
	Date   string `json:"date"`
}

type ScheduleMarketsResponse struct {
	Assigned []AssignedMarketResponse `json:"assigned"`
	Failed   []svc.FailedMarket       `json:"failed"`
}

func FromScheduleResult(res *svc.ScheduleResult) ScheduleMarketsResponse {
	out := ScheduleMarketsResponse{
		Assigned: make([]AssignedMarketResponse, 0, len(res.Assigned)),
		Failed:   res.Failed,
	}
	for _, a := range res.Assigned {
		out.Assigned = append(out.Assigned, AssignedMarketResponse{
			Market: a.Market,
			Date:   helper.FormatDate(a.Date),
		})
	}
	return out
}

/* =========================================================
   Kalender (read model)
   ========================================================= */

type CalendarEventResponse struct {
	PublicationID   uuid.UUID `json:"publication_id"`
	ManuscriptID    uuid.UUID `json:"manuscript_id"`
	ManuscriptTitle string    `json:"manuscript_title"`
	Market          string    `json:"market"`
	Status          string    `json:"status"`
}

type CalendarDayResponse struct {
	Date   string                  `json:"date"`
	Events []CalendarEventResponse `json:"events"`
}

// GroupCalendar menyusun entri engine jadi daftar per-hari, urut tanggal.
func GroupCalendar(entries []svc.CalendarEntry) []CalendarDayResponse {
	days := []CalendarDayResponse{}
	idx := map[string]int{}
	for _, e := range entries {
		key := helper.FormatDate(e.Date)
		i, ok := idx[key]
		if !ok {
			days = append(days, CalendarDayResponse{Date: key, Events: []CalendarEventResponse{}})
			i = len(days) - 1
			idx[key] = i
		}
		days[i].Events = append(days[i].Events, CalendarEventResponse{
			PublicationID:   e.PublicationID,
			ManuscriptID:    e.ManuscriptID,
			ManuscriptTitle: e.ManuscriptTitle,
			Market:          e.Market,
			Status:          e.Status,
		})
	}
	return days
}
