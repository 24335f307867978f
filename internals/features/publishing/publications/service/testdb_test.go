package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	mansModel "terbitku_backend/internals/features/publishing/manuscripts/model"
	helper "terbitku_backend/internals/helpers"

	m "terbitku_backend/internals/features/publishing/publications/model"
)

// Schema dibuat manual (di produksi lewat migration Postgres); SQLite tidak
// kenal gen_random_uuid(), ID diisi hook BeforeCreate.
var testSchema = []string{
	`CREATE TABLE manuscripts (
		manuscript_id TEXT PRIMARY KEY,
		manuscript_title TEXT NOT NULL,
		manuscript_author_name TEXT,
		manuscript_genre TEXT,
		manuscript_keywords TEXT,
		manuscript_meta TEXT,
		manuscript_status TEXT NOT NULL DEFAULT 'draft',
		manuscript_created_at DATETIME,
		manuscript_updated_at DATETIME,
		manuscript_deleted_at DATETIME
	)`,
	`CREATE TABLE publications (
		publication_id TEXT PRIMARY KEY,
		publication_manuscript_id TEXT NOT NULL,
		publication_market TEXT NOT NULL,
		publication_status TEXT NOT NULL DEFAULT 'scheduled',
		publication_scheduled_date DATE NOT NULL,
		publication_published_date DATE,
		publication_kdp_url TEXT,
		publication_created_at DATETIME,
		publication_updated_at DATETIME,
		UNIQUE (publication_manuscript_id, publication_market)
	)`,
	`CREATE TABLE blocked_dates (
		blocked_date_id TEXT PRIMARY KEY,
		blocked_date_date DATE NOT NULL UNIQUE,
		blocked_date_reason TEXT,
		blocked_date_created_at DATETIME
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// :memory: hidup per koneksi; satu koneksi = satu database
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range testSchema {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func newTestScheduler() *Scheduler {
	return NewScheduler(3, 60)
}

func mustCreateManuscript(t *testing.T, db *gorm.DB, title string) uuid.UUID {
	t.Helper()
	man := mansModel.ManuscriptModel{ManuscriptTitle: title}
	if err := db.Create(&man).Error; err != nil {
		t.Fatalf("create manuscript %q: %v", title, err)
	}
	return man.ManuscriptID
}

// mustInsertScheduled menanam baris scheduled langsung (state awal skenario).
func mustInsertScheduled(t *testing.T, db *gorm.DB, id, manID uuid.UUID, market string, date time.Time) {
	t.Helper()
	pub := m.PublicationModel{
		PublicationID:            id,
		PublicationManuscriptID:  manID,
		PublicationMarket:        market,
		PublicationStatus:        m.PublicationScheduled,
		PublicationScheduledDate: helper.DateOnly(date),
	}
	if err := db.Create(&pub).Error; err != nil {
		t.Fatalf("insert publication %s/%s: %v", manID, market, err)
	}
}

func mustGetPublication(t *testing.T, db *gorm.DB, id uuid.UUID) m.PublicationModel {
	t.Helper()
	var pub m.PublicationModel
	if err := db.First(&pub, "publication_id = ?", id).Error; err != nil {
		t.Fatalf("get publication %s: %v", id, err)
	}
	return pub
}

func scheduledCountOn(t *testing.T, db *gorm.DB, date time.Time) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&m.PublicationModel{}).
		Where("publication_status = ? AND publication_scheduled_date = ?",
			m.PublicationScheduled, helper.DateOnly(date)).
		Count(&n).Error; err != nil {
		t.Fatalf("count on %s: %v", date, err)
	}
	return n
}

// fixedUUID bikin id stabil supaya urutan ascending-id deterministik di test.
func fixedUUID(n byte) uuid.UUID {
	var b [16]byte
	b[15] = n
	id, _ := uuid.FromBytes(b[:])
	return id
}

// day: tanggal test relatif hari ini supaya tidak kena validasi tanggal lampau.
func day(offset int) time.Time {
	return helper.Today().AddDate(0, 0, offset)
}
