// file: internals/features/publishing/publications/service/lifecycle.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "terbitku_backend/internals/helpers"

	m "terbitku_backend/internals/features/publishing/publications/model"
)

/* =========================
   Lifecycle: scheduled → published, reschedule, delete
   ========================= */

// Reschedule memindahkan publikasi scheduled ke tanggal baru.
// Validasi urut: ada → status → tanggal ≥ hari ini → tersedia.
// Pindah ke tanggal yang sama dihitung sukses tanpa menulis apa-apa.
func (s *Scheduler) Reschedule(tx *gorm.DB, id uuid.UUID, newDate time.Time) (*m.PublicationModel, error) {
	var pub m.PublicationModel
	if err := lockForUpdate(tx).First(&pub, "publication_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if pub.PublicationStatus != m.PublicationScheduled {
		return nil, ErrInvalidTransition
	}

	newDate = helper.DateOnly(newDate)
	if newDate.Before(helper.Today()) {
		return nil, ErrPastDate
	}

	// no-op: tanggal tidak berubah, slot-nya slot dia sendiri
	if newDate.Equal(helper.DateOnly(pub.PublicationScheduledDate)) {
		return &pub, nil
	}

	blocked, err := s.IsBlocked(tx, newDate)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrDateUnavailable
	}

	// kuota di tanggal tujuan, tidak termasuk baris ini sendiri
	var n int64
	if err := tx.Model(&m.PublicationModel{}).
		Where("publication_status = ? AND publication_scheduled_date = ? AND publication_id <> ?",
			m.PublicationScheduled, newDate, id).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n >= int64(s.DailyCap) {
		return nil, ErrDateUnavailable
	}

	if err := tx.Model(&pub).
		Update("publication_scheduled_date", newDate).Error; err != nil {
		return nil, err
	}
	pub.PublicationScheduledDate = newDate
	return &pub, nil
}

// MarkPublished: scheduled → published (terminal). publishedDate = hari ini
// dan tidak pernah ditulis ulang; kdp_url hanya boleh terisi di sini.
// Tanpa baris = pending, dan pending → published bukan NotFound melainkan
// transisi yang tidak valid.
func (s *Scheduler) MarkPublished(tx *gorm.DB, id uuid.UUID, kdpURL *string) (*m.PublicationModel, error) {
	var pub m.PublicationModel
	if err := lockForUpdate(tx).First(&pub, "publication_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	if pub.PublicationStatus != m.PublicationScheduled {
		return nil, ErrInvalidTransition
	}

	now := helper.Today()
	updates := map[string]interface{}{
		"publication_status":         m.PublicationPublished,
		"publication_published_date": now,
	}
	if kdpURL != nil && strings.TrimSpace(*kdpURL) != "" {
		trimmed := strings.TrimSpace(*kdpURL)
		updates["publication_kdp_url"] = trimmed
		pub.PublicationKdpURL = &trimmed
	}
	if err := tx.Model(&pub).Updates(updates).Error; err != nil {
		return nil, err
	}
	pub.PublicationStatus = m.PublicationPublished
	pub.PublicationPublishedDate = &now
	return &pub, nil
}

// Delete menghapus baris publikasi apa pun statusnya (hard delete), sehingga
// pasangan manuscript×market kembali "pending" dan slot kalendernya lepas.
func (s *Scheduler) Delete(tx *gorm.DB, id uuid.UUID) error {
	r := tx.Delete(&m.PublicationModel{}, "publication_id = ?", id)
	if r.Error != nil {
		return r.Error
	}
	if r.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
