// file: internals/features/publishing/publications/controller/publication_controller.go
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

	"terbitku_backend/internals/configs"
	helper "terbitku_backend/internals/helpers"

	d "terbitku_backend/internals/features/publishing/publications/dto"
	m "terbitku_backend/internals/features/publishing/publications/model"
	svc "terbitku_backend/internals/features/publishing/publications/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type PublicationController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Scheduler *svc.Scheduler
}

func New(db *gorm.DB, v *validator.Validate, s *svc.Scheduler) *PublicationController {
	return &PublicationController{DB: db, Validate: v, Scheduler: s}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// mapSchedulerError memetakan error engine ke fiber.Error (dipakai di dalam
// Transaction, lalu diterjemahkan helper.FromFiberError).
func mapSchedulerError(err error) error {
	switch {
	case errors.Is(err, svc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrPastDate),
		errors.Is(err, svc.ErrInvalidTransition):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrDateUnavailable),
		errors.Is(err, svc.ErrAlreadyBlocked),
		errors.Is(err, svc.ErrNoCapacityWithinHorizon):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}

/* =========================
   Schedule multi-market
   ========================= */

// POST /manuscripts/:manuscript_id/publications/schedule
func (ctl *PublicationController) ScheduleMarkets(c *fiber.Ctx) error {
	manuscriptID, err := parseUUIDParam(c, "manuscript_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "manuscript_id tidak valid")
	}

	var req d.ScheduleMarketsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Publication.ScheduleMarkets] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	startDate := helper.Today()
	if req.StartDate != "" {
		parsed, ok := helper.ParseDateYYYYMMDD(req.StartDate)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "start_date harus YYYY-MM-DD")
		}
		startDate = parsed
	}

	var result *svc.ScheduleResult
	if err := ctl.Scheduler.Transact(ctl.DB.WithContext(c.Context()), func(tx *gorm.DB) error {
		res, er := ctl.Scheduler.ScheduleMarkets(tx, manuscriptID, req.Markets, startDate)
		if er != nil {
			return mapSchedulerError(er)
		}
		result = res
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	// partial-failure: sukses tetap commit, kegagalan dilaporkan per-market
	return helper.JsonCreated(c, "Penjadwalan selesai", d.FromScheduleResult(result))
}

/* =========================
   Daftar publikasi per-manuscript (termasuk pending turunan)
   ========================= */

// GET /manuscripts/:manuscript_id/publications
func (ctl *PublicationController) ListByManuscript(c *fiber.Ctx) error {
	manuscriptID, err := parseUUIDParam(c, "manuscript_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "manuscript_id tidak valid")
	}

	var rows []m.PublicationModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("publication_manuscript_id = ?", manuscriptID).
		Order("publication_market ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[Publication.ListByManuscript] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := d.BuildMarketStatuses(configs.PublicationMarkets, rows)
	return helper.JsonOK(c, "ok", items)
}

/* =========================
   Reschedule
   ========================= */

// PATCH /publications/:id/reschedule
func (ctl *PublicationController) Reschedule(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req d.RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	newDate, ok := helper.ParseDateYYYYMMDD(req.NewDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "new_date harus YYYY-MM-DD")
	}

	var updated *m.PublicationModel
	if err := ctl.Scheduler.Transact(ctl.DB.WithContext(c.Context()), func(tx *gorm.DB) error {
		pub, er := ctl.Scheduler.Reschedule(tx, id, newDate)
		if er != nil {
			return mapSchedulerError(er)
		}
		updated = pub
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Jadwal dipindah", d.FromModel(updated))
}

/* =========================
   Mark published
   ========================= */

// PATCH /publications/:id/publish
func (ctl *PublicationController) MarkPublished(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req d.PublishRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var updated *m.PublicationModel
	if err := ctl.Scheduler.Transact(ctl.DB.WithContext(c.Context()), func(tx *gorm.DB) error {
		pub, er := ctl.Scheduler.MarkPublished(tx, id, req.KdpURL)
		if er != nil {
			return mapSchedulerError(er)
		}
		updated = pub
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Publikasi ditandai published", d.FromModel(updated))
}

/* =========================
   Delete
   ========================= */

// DELETE /publications/:id
func (ctl *PublicationController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctl.Scheduler.Transact(ctl.DB.WithContext(c.Context()), func(tx *gorm.DB) error {
		if er := ctl.Scheduler.Delete(tx, id); er != nil {
			return mapSchedulerError(er)
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Publikasi dihapus", fiber.Map{"publication_id": id})
}
