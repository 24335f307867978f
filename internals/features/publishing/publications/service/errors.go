// file: internals/features/publishing/publications/service/errors.go
package service

import "errors"

// Taksonomi error scheduling engine. Controller memetakan ini ke HTTP lewat
// errors.Is, jadi pesan di sini stabil dan tidak boleh membawa status code.
var (
	ErrAlreadyBlocked          = errors.New("tanggal sudah diblokir")
	ErrNotFound                = errors.New("data tidak ditemukan")
	ErrDateUnavailable         = errors.New("tanggal tidak tersedia (diblokir atau kuota penuh)")
	ErrPastDate                = errors.New("tanggal sudah lewat")
	ErrInvalidTransition       = errors.New("transisi status tidak valid")
	ErrNoCapacityWithinHorizon = errors.New("tidak ada slot kosong dalam horizon pencarian")
)

// Reason code per-market untuk hasil partial-failure ScheduleMarkets.
const (
	ReasonUnknownMarket    = "unknown_market"
	ReasonAlreadyScheduled = "already_scheduled"
	ReasonNoCapacity       = "no_capacity_within_horizon"
)
