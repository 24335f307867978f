// file: internals/features/publishing/blocked_dates/model/blocked_date_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlockedDateModel struct {
	BlockedDateID uuid.UUID `gorm:"column:blocked_date_id;type:uuid;default:gen_random_uuid();primaryKey" json:"blocked_date_id"`

	// satu baris per tanggal kalender
	BlockedDateDate   time.Time `gorm:"column:blocked_date_date;type:date;not null;uniqueIndex" json:"blocked_date_date"`
	BlockedDateReason *string   `gorm:"column:blocked_date_reason;type:text" json:"blocked_date_reason,omitempty"`

	BlockedDateCreatedAt time.Time `gorm:"column:blocked_date_created_at;type:timestamptz;not null;autoCreateTime" json:"blocked_date_created_at"`
}

func (BlockedDateModel) TableName() string { return "blocked_dates" }

func (b *BlockedDateModel) BeforeCreate(tx *gorm.DB) error {
	if b.BlockedDateID == uuid.Nil {
		b.BlockedDateID = uuid.New()
	}
	return nil
}
