// file: internals/features/publishing/publications/service/tx.go
package service

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const maxTxRetries = 3

// Transact menjalankan fn dalam satu transaksi tulis engine. Di Postgres
// level isolasi dinaikkan ke SERIALIZABLE supaya dua request yang sama-sama
// membaca kuota lalu insert tidak bisa lolos dua-duanya; transaksi yang
// ditolak karena konflik serialisasi diulang otomatis. Store lain (SQLite di
// test) memakai isolasi default-nya yang memang sudah serial.
func (s *Scheduler) Transact(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db.Dialector.Name() != "postgres" {
		return db.Transaction(fn)
	}

	var err error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err = db.Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err == nil || !isRetryableTxError(err) {
			return err
		}
	}
	return err
}

// isRetryableTxError: serialization_failure (40001) dan deadlock_detected
// (40P01) aman diulang; keduanya berarti "coba lagi", bukan error bisnis.
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
