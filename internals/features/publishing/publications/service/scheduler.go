// file: internals/features/publishing/publications/service/scheduler.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"terbitku_backend/internals/configs"
	"terbitku_backend/internals/constants"
	bdModel "terbitku_backend/internals/features/publishing/blocked_dates/model"
	mansModel "terbitku_backend/internals/features/publishing/manuscripts/model"
	helper "terbitku_backend/internals/helpers"

	m "terbitku_backend/internals/features/publishing/publications/model"
)

/* =========================
   Scheduler & Constructor
   ========================= */

// Scheduler adalah satu-satunya komponen yang menulis
// publication_scheduled_date dan baris blocked_dates. Semua method menerima
// *gorm.DB transaksi milik caller: satu operasi logis = satu transaksi.
type Scheduler struct {
	DailyCap    int // kuota publikasi ber-status scheduled per tanggal
	HorizonDays int // jangkauan scan maju maksimum SlotFinder
}

func NewScheduler(dailyCap, horizonDays int) *Scheduler {
	if dailyCap <= 0 {
		dailyCap = 3
	}
	if horizonDays <= 0 {
		horizonDays = 365
	}
	return &Scheduler{DailyCap: dailyCap, HorizonDays: horizonDays}
}

// NewSchedulerFromEnv memakai nilai hasil configs.LoadEnv().
func NewSchedulerFromEnv() *Scheduler {
	return NewScheduler(configs.ScheduleDailyCap, configs.ScheduleHorizonDays)
}

/* =========================
   Capacity Index & Blocked Registry (query murni, tanpa cache)
   ========================= */

// CountOnDate menghitung publikasi ber-status scheduled pada satu tanggal.
// Baris published tidak ikut dihitung: slot historisnya sudah terpakai dan
// tidak direlokasi lagi.
func (s *Scheduler) CountOnDate(tx *gorm.DB, date time.Time) (int64, error) {
	var n int64
	err := tx.Model(&m.PublicationModel{}).
		Where("publication_status = ? AND publication_scheduled_date = ?",
			m.PublicationScheduled, helper.DateOnly(date)).
		Count(&n).Error
	return n, err
}

func (s *Scheduler) IsBlocked(tx *gorm.DB, date time.Time) (bool, error) {
	var n int64
	err := tx.Model(&bdModel.BlockedDateModel{}).
		Where("blocked_date_date = ?", helper.DateOnly(date)).
		Count(&n).Error
	return n > 0, err
}

// blockedSet: prefetch tanggal terblokir pada rentang [from, end) ke map.
func (s *Scheduler) blockedSet(tx *gorm.DB, from, end time.Time) (map[time.Time]bool, error) {
	var rows []bdModel.BlockedDateModel
	if err := tx.
		Where("blocked_date_date >= ? AND blocked_date_date < ?", from, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	set := make(map[time.Time]bool, len(rows))
	for _, r := range rows {
		set[helper.DateOnly(r.BlockedDateDate)] = true
	}
	return set, nil
}

// scheduledCounts: prefetch jumlah scheduled per tanggal pada rentang [from, end).
func (s *Scheduler) scheduledCounts(tx *gorm.DB, from, end time.Time) (map[time.Time]int64, error) {
	var rows []m.PublicationModel
	if err := tx.
		Where("publication_status = ? AND publication_scheduled_date >= ? AND publication_scheduled_date < ?",
			m.PublicationScheduled, from, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[time.Time]int64)
	for _, r := range rows {
		counts[helper.DateOnly(r.PublicationScheduledDate)]++
	}
	return counts, nil
}

/* =========================
   Slot Finder
   ========================= */

// NextAvailable melakukan scan maju hari-per-hari mulai dari `from`:
// tanggal valid pertama (tidak diblokir dan kuota < DailyCap) menang.
// Tidak ada tie-break lain; urutan scan-lah tie-break-nya.
//
// Query dijalankan di dalam transaksi caller, sehingga baris yang sudah
// ditulis lebih awal dalam operasi yang sama (market sebelumnya, atau
// publikasi tergusur yang sudah dipindah) otomatis ikut terhitung.
func (s *Scheduler) NextAvailable(tx *gorm.DB, from time.Time) (time.Time, error) {
	from = helper.DateOnly(from)
	end := from.AddDate(0, 0, s.HorizonDays)

	blocked, err := s.blockedSet(tx, from, end)
	if err != nil {
		return time.Time{}, err
	}
	counts, err := s.scheduledCounts(tx, from, end)
	if err != nil {
		return time.Time{}, err
	}

	for d := from; d.Before(end); d = d.AddDate(0, 0, 1) {
		if blocked[d] {
			continue
		}
		if counts[d] < int64(s.DailyCap) {
			return d, nil
		}
	}
	return time.Time{}, ErrNoCapacityWithinHorizon
}

/* =========================
   Multi-market scheduling (satu transaksi)
   ========================= */

type AssignedMarket struct {
	Market string    `json:"market"`
	Date   time.Time `json:"date"`
}

type FailedMarket struct {
	Market string `json:"market"`
	Reason string `json:"reason"`
}

type ScheduleResult struct {
	Assigned []AssignedMarket `json:"assigned"`
	Failed   []FailedMarket   `json:"failed"`
}

// ScheduleMarkets memproses market berurutan sesuai urutan request.
// Cursor di-set ke tanggal yang baru saja dipakai (bukan +1) supaya beberapa
// market boleh menumpuk di tanggal yang sama selama kuota masih ada.
// Market yang gagal dilaporkan per-item; yang sudah berhasil tidak di-rollback.
func (s *Scheduler) ScheduleMarkets(tx *gorm.DB, manuscriptID uuid.UUID, markets []string, startDate time.Time) (*ScheduleResult, error) {
	var man mansModel.ManuscriptModel
	if err := tx.First(&man, "manuscript_id = ?", manuscriptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// tanggal tulis tidak boleh di masa lalu
	cursor := helper.DateOnly(startDate)
	if today := helper.Today(); cursor.Before(today) {
		cursor = today
	}

	res := &ScheduleResult{
		Assigned: []AssignedMarket{},
		Failed:   []FailedMarket{},
	}

	for _, raw := range markets {
		market := constants.NormalizeMarket(raw)
		if !constants.IsKnownMarket(market) {
			res.Failed = append(res.Failed, FailedMarket{Market: market, Reason: ReasonUnknownMarket})
			continue
		}

		var dup int64
		if err := tx.Model(&m.PublicationModel{}).
			Where("publication_manuscript_id = ? AND publication_market = ?", manuscriptID, market).
			Count(&dup).Error; err != nil {
			return nil, err
		}
		if dup > 0 {
			res.Failed = append(res.Failed, FailedMarket{Market: market, Reason: ReasonAlreadyScheduled})
			continue
		}

		date, err := s.NextAvailable(tx, cursor)
		if err != nil {
			if errors.Is(err, ErrNoCapacityWithinHorizon) {
				res.Failed = append(res.Failed, FailedMarket{Market: market, Reason: ReasonNoCapacity})
				continue
			}
			return nil, err
		}

		pub := m.PublicationModel{
			PublicationManuscriptID:  manuscriptID,
			PublicationMarket:        market,
			PublicationStatus:        m.PublicationScheduled,
			PublicationScheduledDate: date,
		}
		if err := tx.Create(&pub).Error; err != nil {
			return nil, err
		}

		res.Assigned = append(res.Assigned, AssignedMarket{Market: market, Date: date})
		cursor = date
	}

	return res, nil
}

/* =========================
   Block / unblock tanggal (satu transaksi, termasuk penggusuran)
   ========================= */

type BlockResult struct {
	BlockedDate      bdModel.BlockedDateModel `json:"blocked_date"`
	RescheduledCount int                      `json:"rescheduled_count"`
	Unresolved       []uuid.UUID              `json:"unresolved"`
}

// BlockDate memblokir satu tanggal lalu menggusur seluruh publikasi scheduled
// di tanggal itu, urut publication_id ASC supaya hasilnya deterministik.
// Baris yang tidak kebagian slot dalam horizon DIBIARKAN di tanggalnya dan
// dilaporkan lewat Unresolved; blokirnya sendiri tetap jadi.
func (s *Scheduler) BlockDate(tx *gorm.DB, date time.Time, reason *string) (*BlockResult, error) {
	date = helper.DateOnly(date)

	// satu baris blokir per tanggal, fail fast
	blocked, err := s.IsBlocked(tx, date)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrAlreadyBlocked
	}

	bd := bdModel.BlockedDateModel{
		BlockedDateDate:   date,
		BlockedDateReason: reason,
	}
	if err := tx.Create(&bd).Error; err != nil {
		return nil, err
	}

	// Displaced set: urutan pemrosesan (ascending id) adalah kontrak
	var displaced []m.PublicationModel
	if err := lockForUpdate(tx).
		Where("publication_status = ? AND publication_scheduled_date = ?", m.PublicationScheduled, date).
		Order("publication_id ASC").
		Find(&displaced).Error; err != nil {
		return nil, err
	}

	res := &BlockResult{BlockedDate: bd, Unresolved: []uuid.UUID{}}

	// Blokir tanggal lampau boleh (baris stale tetap perlu digusur), tapi
	// tanggal tujuannya tidak pernah di masa lalu: scan mulai dari
	// max(tanggal blokir + 1, hari ini).
	scanFrom := date.AddDate(0, 0, 1)
	if today := helper.Today(); scanFrom.Before(today) {
		scanFrom = today
	}

	for i := range displaced {
		p := &displaced[i]
		newDate, err := s.NextAvailable(tx, scanFrom)
		if err != nil {
			if errors.Is(err, ErrNoCapacityWithinHorizon) {
				res.Unresolved = append(res.Unresolved, p.PublicationID)
				continue
			}
			return nil, err
		}
		if err := tx.Model(p).
			Update("publication_scheduled_date", newDate).Error; err != nil {
			return nil, err
		}
		p.PublicationScheduledDate = newDate
		res.RescheduledCount++
	}

	return res, nil
}

// Unblock menghapus baris blokir. Tidak pernah menarik kembali publikasi
// yang dulu tergusur ke tanggal yang dibuka lagi.
func (s *Scheduler) Unblock(tx *gorm.DB, id uuid.UUID) error {
	r := tx.Delete(&bdModel.BlockedDateModel{}, "blocked_date_id = ?", id)
	if r.Error != nil {
		return r.Error
	}
	if r.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// lockForUpdate menambah FOR UPDATE hanya di Postgres; store test (SQLite)
// tidak mengenal klausa itu dan sudah serial by design.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
