// file: internals/features/publishing/publications/model/publication_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicationStatusEnum: status yang DISIMPAN hanya scheduled|published.
// "pending" adalah status turunan = belum ada baris untuk pasangan
// manuscript×market (lihat dto.PublicationPending).
type PublicationStatusEnum string

const (
	PublicationScheduled PublicationStatusEnum = "scheduled"
	PublicationPublished PublicationStatusEnum = "published"
)

type PublicationModel struct {
	PublicationID uuid.UUID `gorm:"column:publication_id;type:uuid;default:gen_random_uuid();primaryKey" json:"publication_id"`

	// Pasangan manuscript×market unik (index dibuat di migration)
	PublicationManuscriptID uuid.UUID `gorm:"column:publication_manuscript_id;type:uuid;not null;uniqueIndex:uq_publication_pair" json:"publication_manuscript_id"`
	PublicationMarket       string    `gorm:"column:publication_market;type:varchar(8);not null;uniqueIndex:uq_publication_pair" json:"publication_market"`

	PublicationStatus PublicationStatusEnum `gorm:"column:publication_status;type:varchar(20);not null;default:'scheduled'" json:"publication_status"`

	// date-only (midnight UTC); wajib selama scheduled/published
	PublicationScheduledDate time.Time  `gorm:"column:publication_scheduled_date;type:date;not null;index" json:"publication_scheduled_date"`
	PublicationPublishedDate *time.Time `gorm:"column:publication_published_date;type:date" json:"publication_published_date,omitempty"`

	// hanya boleh terisi saat published
	PublicationKdpURL *string `gorm:"column:publication_kdp_url;type:text" json:"publication_kdp_url,omitempty"`

	PublicationCreatedAt time.Time `gorm:"column:publication_created_at;type:timestamptz;not null;autoCreateTime" json:"publication_created_at"`
	PublicationUpdatedAt time.Time `gorm:"column:publication_updated_at;type:timestamptz;not null;autoUpdateTime" json:"publication_updated_at"`

	// Hard delete (tanpa gorm.DeletedAt): baris yang dihapus harus benar-benar
	// melepas slot kalender dan pasangan manuscript×market-nya.
}

func (PublicationModel) TableName() string { return "publications" }

// ID dibuat app-side juga, supaya store tanpa gen_random_uuid() tetap jalan.
func (p *PublicationModel) BeforeCreate(tx *gorm.DB) error {
	if p.PublicationID == uuid.Nil {
		p.PublicationID = uuid.New()
	}
	return nil
}
