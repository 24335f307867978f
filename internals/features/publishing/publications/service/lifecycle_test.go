package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "terbitku_backend/internals/helpers"

	m "terbitku_backend/internals/features/publishing/publications/model"
)

/* =========================
   Reschedule
   ========================= */

func TestRescheduleValidations(t *testing.T) {
	type tc struct {
		name    string
		newDate int // offset hari
		wantErr error
	}

	cases := []tc{
		// tanggal kemarin ditolak sebelum ada mutasi
		{name: "past date", newDate: -1, wantErr: ErrPastDate},
		{name: "blocked target", newDate: 8, wantErr: ErrDateUnavailable},
		{name: "full target", newDate: 9, wantErr: ErrDateUnavailable},
		{name: "valid move", newDate: 10, wantErr: nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			db := newTestDB(t)
			s := newTestScheduler()
			man := mustCreateManuscript(t, db, "Novel")
			o := mustCreateManuscript(t, db, "Lain")

			p := fixedUUID(1)
			mustInsertScheduled(t, db, p, man, "US", day(5))

			// day(8) diblokir; day(9) penuh
			if _, err := s.BlockDate(db, day(8), nil); err != nil {
				t.Fatalf("block: %v", err)
			}
			for i, market := range []string{"US", "UK", "DE"} {
				mustInsertScheduled(t, db, fixedUUID(byte(20+i)), o, market, day(9))
			}

			err := db.Transaction(func(tx *gorm.DB) error {
				_, er := s.Reschedule(tx, p, day(c.newDate))
				return er
			})
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}

			got := helper.DateOnly(mustGetPublication(t, db, p).PublicationScheduledDate)
			if c.wantErr != nil {
				if !got.Equal(day(5)) {
					t.Errorf("state berubah padahal error: %s", helper.FormatDate(got))
				}
			} else if !got.Equal(day(c.newDate)) {
				t.Errorf("date = %s, want %s", helper.FormatDate(got), helper.FormatDate(day(c.newDate)))
			}
		})
	}
}

// Pindah ke tanggal yang sama = sukses tanpa menulis; slot sendiri tidak
// dihitung sebagai penghalang walau tanggalnya sudah penuh.
func TestRescheduleSameDateNoOp(t *testing.T) {
	db := newTestDB(t)
	s := newTestScheduler()
	man := mustCreateManuscript(t, db, "Novel")
	o := mustCreateManuscript(t, db, "Lain")

	p := fixedUUID(1)
	mustInsertScheduled(t, db, p, man, "US", day(5))
	mustInsertScheduled(t, db, fixedUUID(2), o, "US", day(5))
	mustInsertScheduled(t, db, fixedUUID(3), o, "UK", day(5)) // day(5) penuh

	err := db.Transaction(func(tx *gorm.DB) error {
		pub, er := s.Reschedule(tx, p, day(5))
		if er != nil {
			return er
		}
		if !helper.DateOnly(pub.PublicationScheduledDate).Equal(day(5)) {
			t.Errorf("date berubah: %s", pub.PublicationScheduledDate)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("same-date reschedule: %v", err)
	}
}

func TestRescheduleNotFoundAndWrongStatus(t *testing.T) {
	db := newTestDB(t)
	s := newTestScheduler()
	man := mustCreateManuscript(t, db, "Novel")

	p := fixedUUID(1)
	mustInsertScheduled(t, db, p, man, "US", day(5))
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, er := s.MarkPublished(tx, p, nil)
		return er
	}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		_, er := s.Reschedule(tx, p, day(10))
		return er
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("published reschedule err = %v, want ErrInvalidTransition", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		_, er := s.Reschedule(tx, uuid.New(), day(10))
		return er
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing reschedule err = %v, want ErrNotFound", err)
	}
}

/* =========================
   MarkPublished
   ========================= */

func TestMarkPublishedSetsDateAndURL(t *testing.T) {
	db := newTestDB(t)
	s := newTestScheduler()
	man := mustCreateManuscript(t, db, "Novel")

	p := fixedUUID(1)
	mustInsertScheduled(t, db, p, man, "US", day(0))

	url := "https://www.amazon.com/dp/B0TERBIT01"
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, er := s.MarkPublished(tx, p, &url)
		return er
	}); err != nil {
		t.Fatalf("MarkPublished: %v", err)
	}

	got := mustGetPublication(t, db, p)
	if got.PublicationStatus != m.PublicationPublished {
		t.Errorf("status = %s", got.PublicationStatus)
	}
	if got.PublicationPublishedDate == nil || !helper.DateOnly(*got.PublicationPublishedDate).Equal(helper.Today()) {
		t.Errorf("published date = %v, want hari ini", got.PublicationPublishedDate)
	}
	if got.PublicationKdpURL == nil || *got.PublicationKdpURL != url {
		t.Errorf("kdp url = %v", got.PublicationKdpURL)
	}

	// published tidak makan kuota: tanggal itu terbuka lagi buat scheduled lain
	if n := scheduledCountOn(t, db, day(0)); n != 0 {
		t.Errorf("scheduled count = %d, want 0", n)
	}
}

func TestMarkPublishedInvalidTransitions(t *testing.T) {
	db := newTestDB(t)
	s := newTestScheduler()
	man := mustCreateManuscript(t, db, "Novel")

	p := fixedUUID(1)
	mustInsertScheduled(t, db, p, man, "US", day(0))
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, er := s.MarkPublished(tx, p, nil)
		return er
	}); err != nil {
		t.Fatalf("first publish: %v", err)
	}

	// published → published ditolak
	err := db.Transaction(func(tx *gorm.DB) error {
		_, er := s.MarkPublished(tx, p, nil)
		return er
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double publish err = %v, want ErrInvalidTransition", err)
	}

	// pending (tidak ada baris) → publish juga transisi invalid
	err = db.Transaction(func(tx *gorm.DB) error {
		_, er := s.MarkPublished(tx, uuid.New(), nil)
		return er
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending publish err = %v, want ErrInvalidTransition", err)
	}
}

/* =========================
   Delete
   ========================= */

func TestDeleteFreesSlot(t *testing.T) {
	db := newTestDB(t)
	s := newTestScheduler()
	man := mustCreateManuscript(t, db, "Novel")
	o := mustCreateManuscript(t, db, "Lain")

	for i, market := range []string{"US", "UK", "DE"} {
		mustInsertScheduled(t, db, fixedUUID(byte(1+i)), man, market, day(2))
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.Delete(tx, fixedUUID(2))
	}); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// slot lepas: penjadwalan baru mendarat di day(2) lagi
	var res *ScheduleResult
	if err := db.Transaction(func(tx *gorm.DB) error {
		r, er := s.ScheduleMarkets(tx, o, []string{"US"}, day(2))
		res = r
		return er
	}); err != nil {
		t.Fatalf("ScheduleMarkets: %v", err)
	}
	if len(res.Assigned) != 1 || !res.Assigned[0].Date.Equal(day(2)) {
		t.Errorf("assigned = %+v, want day(2)", res.Assigned)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.Delete(tx, uuid.New())
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing delete err = %v, want ErrNotFound", err)
	}
}

func TestDeletePublishedAllowed(t *testing.T) {
	db := newTestDB(t)
	s := newTestScheduler()
	man := mustCreateManuscript(t, db, "Novel")

	p := fixedUUID(1)
	mustInsertScheduled(t, db, p, man, "US", day(0))
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, er := s.MarkPublished(tx, p, nil)
		return er
	}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.Delete(tx, p)
	}); err != nil {
		t.Fatalf("delete published: %v", err)
	}

	var n int64
	db.Model(&m.PublicationModel{}).Count(&n)
	if n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
}
