// file: internals/features/publishing/blocked_dates/controller/blocked_date_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "terbitku_backend/internals/helpers"

	d "terbitku_backend/internals/features/publishing/blocked_dates/dto"
	m "terbitku_backend/internals/features/publishing/blocked_dates/model"
	svc "terbitku_backend/internals/features/publishing/publications/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type BlockedDateController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Scheduler *svc.Scheduler
}

func New(db *gorm.DB, v *validator.Validate, s *svc.Scheduler) *BlockedDateController {
	return &BlockedDateController{DB: db, Validate: v, Scheduler: s}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Block (dengan penggusuran otomatis)
   ========================= */

// POST /blocked-dates
// Blokir + relokasi seluruh occupant-nya adalah SATU transaksi; kalau insert
// blokirnya gagal, tidak ada publikasi yang bergerak.
func (ctl *BlockedDateController) Create(c *fiber.Ctx) error {
	var req d.CreateBlockedDateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[BlockedDate.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, ok := helper.ParseDateYYYYMMDD(req.Date)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "date harus YYYY-MM-DD")
	}

	var result *svc.BlockResult
	if err := ctl.Scheduler.Transact(ctl.DB.WithContext(c.Context()), func(tx *gorm.DB) error {
		res, er := ctl.Scheduler.BlockDate(tx, date, req.TrimmedReason())
		if er != nil {
			if errors.Is(er, svc.ErrAlreadyBlocked) {
				return fiber.NewError(fiber.StatusConflict, er.Error())
			}
			return er
		}
		result = res
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Tanggal diblokir"
	if len(result.Unresolved) > 0 {
		// non-fatal: blokir tetap jadi, sisanya tanggung jawab manual user
		msg = "Tanggal diblokir, sebagian publikasi tidak kebagian slot baru"
	}
	return helper.JsonCreated(c, msg, d.FromBlockResult(result))
}

/* =========================
   Unblock
   ========================= */

// DELETE /blocked-dates/:id — tidak pernah menjadwalkan ulang apa pun.
func (ctl *BlockedDateController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctl.Scheduler.Transact(ctl.DB.WithContext(c.Context()), func(tx *gorm.DB) error {
		if er := ctl.Scheduler.Unblock(tx, id); er != nil {
			if errors.Is(er, svc.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, er.Error())
			}
			return er
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Blokir tanggal dihapus", fiber.Map{"blocked_date_id": id})
}

/* =========================
   List
   ========================= */

// GET /blocked-dates?from=YYYY-MM-DD&to=YYYY-MM-DD (keduanya opsional)
func (ctl *BlockedDateController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.BlockedDateModel{})

	if fromStr := strings.TrimSpace(c.Query("from")); fromStr != "" {
		from, ok := helper.ParseDateYYYYMMDD(fromStr)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		q = q.Where("blocked_date_date >= ?", from)
	}
	if toStr := strings.TrimSpace(c.Query("to")); toStr != "" {
		to, ok := helper.ParseDateYYYYMMDD(toStr)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		q = q.Where("blocked_date_date <= ?", to)
	}

	var rows []m.BlockedDateModel
	if err := q.Order("blocked_date_date ASC").Find(&rows).Error; err != nil {
		log.Printf("[BlockedDate.List] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", d.FromModels(rows))
}
