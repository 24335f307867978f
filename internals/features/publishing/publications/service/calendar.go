// file: internals/features/publishing/publications/service/calendar.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "terbitku_backend/internals/helpers"
)

/* =========================
   Read model kalender (query murni, bukan bagian protokol tulis)
   ========================= */

type CalendarEntry struct {
	PublicationID   uuid.UUID `gorm:"column:publication_id" json:"publication_id"`
	ManuscriptID    uuid.UUID `gorm:"column:publication_manuscript_id" json:"manuscript_id"`
	ManuscriptTitle string    `gorm:"column:manuscript_title" json:"manuscript_title"`
	Market          string    `gorm:"column:publication_market" json:"market"`
	Status          string    `gorm:"column:publication_status" json:"status"`
	Date            time.Time `gorm:"column:publication_scheduled_date" json:"date"`
}

// Calendar mengembalikan seluruh event publikasi pada rentang [from, to]
// (inklusif), termasuk baris published (tampil di tanggal jadwalnya).
// Judul manuscript di-join hanya untuk tampilan.
func (s *Scheduler) Calendar(tx *gorm.DB, from, to time.Time) ([]CalendarEntry, error) {
	from = helper.DateOnly(from)
	to = helper.DateOnly(to)

	var entries []CalendarEntry
	err := tx.Table("publications").
		Select("publications.publication_id, publications.publication_manuscript_id, publications.publication_market, publications.publication_status, publications.publication_scheduled_date, manuscripts.manuscript_title").
		Joins("JOIN manuscripts ON manuscripts.manuscript_id = publications.publication_manuscript_id AND manuscripts.manuscript_deleted_at IS NULL").
		Where("publications.publication_scheduled_date >= ? AND publications.publication_scheduled_date <= ?", from, to).
		Order("publications.publication_scheduled_date ASC, publications.publication_id ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
