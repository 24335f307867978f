package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	m "terbitku_backend/internals/features/publishing/publications/model"
)

// Di store non-Postgres Transact adalah transaksi biasa: commit saat sukses,
// rollback plus error diteruskan apa adanya saat gagal.
func TestTransactCommitsAndRollsBack(t *testing.T) {
	db := newTestDB(t)
	s := newTestScheduler()
	man := mustCreateManuscript(t, db, "Novel")

	if err := s.Transact(db, func(tx *gorm.DB) error {
		_, er := s.ScheduleMarkets(tx, man, []string{"US"}, day(1))
		return er
	}); err != nil {
		t.Fatalf("Transact: %v", err)
	}
	var n int64
	db.Model(&m.PublicationModel{}).Count(&n)
	if n != 1 {
		t.Fatalf("rows = %d, want 1", n)
	}

	sentinel := errors.New("batal")
	err := s.Transact(db, func(tx *gorm.DB) error {
		pub := m.PublicationModel{
			PublicationManuscriptID:  man,
			PublicationMarket:        "UK",
			PublicationStatus:        m.PublicationScheduled,
			PublicationScheduledDate: day(2),
		}
		if er := tx.Create(&pub).Error; er != nil {
			return er
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want sentinel asli", err)
	}
	db.Model(&m.PublicationModel{}).Count(&n)
	if n != 1 {
		t.Errorf("rows = %d setelah rollback, want 1", n)
	}
}

func TestRetryableTxError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped", fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40001"}), true},
		{"constraint", &pgconn.PgError{Code: "23505"}, false},
		{"bukan pg error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := isRetryableTxError(c.err); got != c.want {
				t.Errorf("isRetryableTxError(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}
