// file: internals/features/publishing/blocked_dates/dto/blocked_date_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	helper "terbitku_backend/internals/helpers"

	m "terbitku_backend/internals/features/publishing/blocked_dates/model"
	svc "terbitku_backend/internals/features/publishing/publications/service"
)

type CreateBlockedDateRequest struct {
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
	Reason *string `json:"reason" validate:"omitempty,max=1000"`
}

func (r *CreateBlockedDateRequest) TrimmedReason() *string {
	if r.Reason == nil {
		return nil
	}
	t := strings.TrimSpace(*r.Reason)
	if t == "" {
		return nil
	}
	return &t
}

type BlockedDateResponse struct {
	BlockedDateID uuid.UUID `json:"blocked_date_id"`
	Date          string    `json:"date"`
	Reason        *string   `json:"reason,omitempty"`
}

func FromModel(bd *m.BlockedDateModel) BlockedDateResponse {
	return BlockedDateResponse{
		BlockedDateID: bd.BlockedDateID,
		Date:          helper.FormatDate(bd.BlockedDateDate),
		Reason:        bd.BlockedDateReason,
	}
}

func FromModels(list []m.BlockedDateModel) []BlockedDateResponse {
	out := make([]BlockedDateResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

// Hasil blockDate: blokirnya sukses, tapi baris yang gagal direlokasi tetap
// dilaporkan supaya UI bisa minta tindak lanjut manual.
type BlockDateResponse struct {
	BlockedDate      BlockedDateResponse `json:"blocked_date"`
	RescheduledCount int                 `json:"rescheduled_count"`
	Unresolved       []uuid.UUID         `json:"unresolved"`
}

func FromBlockResult(res *svc.BlockResult) BlockDateResponse {
	return BlockDateResponse{
		BlockedDate:      FromModel(&res.BlockedDate),
		RescheduledCount: res.RescheduledCount,
		Unresolved:       res.Unresolved,
	}
}
