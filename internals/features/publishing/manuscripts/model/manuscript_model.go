// file: internals/features/publishing/manuscripts/model/manuscript_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ManuscriptStatusEnum string

const (
	ManuscriptDraft     ManuscriptStatusEnum = "draft"
	ManuscriptReady     ManuscriptStatusEnum = "ready"
	ManuscriptPublished ManuscriptStatusEnum = "published"
)

type ManuscriptModel struct {
	ManuscriptID uuid.UUID `gorm:"column:manuscript_id;type:uuid;default:gen_random_uuid();primaryKey" json:"manuscript_id"`

	ManuscriptTitle      string  `gorm:"column:manuscript_title;type:varchar(200);not null" json:"manuscript_title"`
	ManuscriptAuthorName *string `gorm:"column:manuscript_author_name;type:varchar(120)" json:"manuscript_author_name,omitempty"`
	ManuscriptGenre      *string `gorm:"column:manuscript_genre;type:varchar(80)" json:"manuscript_genre,omitempty"`

	// Keyword SEO (diisi panel SEO di luar engine ini)
	ManuscriptKeywords pq.StringArray `gorm:"column:manuscript_keywords;type:text[]" json:"manuscript_keywords,omitempty"`

	// Output marketing-kit AI, pass-through saja (kontraknya di luar scope)
	ManuscriptMeta datatypes.JSON `gorm:"column:manuscript_meta;type:jsonb" json:"manuscript_meta,omitempty"`

	ManuscriptStatus ManuscriptStatusEnum `gorm:"column:manuscript_status;type:varchar(20);not null;default:'draft'" json:"manuscript_status"`

	ManuscriptCreatedAt time.Time      `gorm:"column:manuscript_created_at;type:timestamptz;not null;autoCreateTime" json:"manuscript_created_at"`
	ManuscriptUpdatedAt time.Time      `gorm:"column:manuscript_updated_at;type:timestamptz;not null;autoUpdateTime" json:"manuscript_updated_at"`
	ManuscriptDeletedAt gorm.DeletedAt `gorm:"column:manuscript_deleted_at;index" json:"manuscript_deleted_at,omitempty"`
}

func (ManuscriptModel) TableName() string { return "manuscripts" }

func (m *ManuscriptModel) BeforeCreate(tx *gorm.DB) error {
	if m.ManuscriptID == uuid.Nil {
		m.ManuscriptID = uuid.New()
	}
	return nil
}
