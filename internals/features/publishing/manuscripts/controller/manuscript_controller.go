// file: internals/features/publishing/manuscripts/controller/manuscript_controller.go
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

	d "terbitku_backend/internals/features/publishing/manuscripts/dto"
	m "terbitku_backend/internals/features/publishing/manuscripts/model"
	pubModel "terbitku_backend/internals/features/publishing/publications/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type ManuscriptController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ManuscriptController {
	return &ManuscriptController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create
   ========================= */

// POST /manuscripts
func (ctl *ManuscriptController) Create(c *fiber.Ctx) error {
	var req d.CreateManuscriptRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Manuscript.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	man := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(man).Error; err != nil {
		log.Printf("[Manuscript.Create] insert error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Naskah dibuat", d.FromModel(man))
}

/* =========================
   List (paginated)
   ========================= */

// GET /manuscripts?page=&per_page=&q=
func (ctl *ManuscriptController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ManuscriptModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("manuscript_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.ManuscriptModel
	if err := q.Order("manuscript_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", d.FromModels(rows), helper.BuildPagination(total, paging))
}

/* =========================
   Detail
   ========================= */

// GET /manuscripts/:id
func (ctl *ManuscriptController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var man m.ManuscriptModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&man, "manuscript_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Naskah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", d.FromModel(&man))
}

/* =========================
   Patch
   ========================= */

// PATCH /manuscripts/:id
func (ctl *ManuscriptController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req d.PatchManuscriptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := req.Apply()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	var man m.ManuscriptModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.First(&man, "manuscript_id = ?", id).Error; er != nil {
			if errors.Is(er, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Naskah tidak ditemukan")
			}
			return er
		}
		if er := tx.Model(&man).Updates(updates).Error; er != nil {
			return er
		}
		return tx.First(&man, "manuscript_id = ?", id).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Naskah diperbarui", d.FromModel(&man))
}

/* =========================
   Delete (soft)
   ========================= */

// DELETE /manuscripts/:id — soft delete; publikasi scheduled miliknya ikut
// dihapus (hard) supaya slot kalendernya lepas.
func (ctl *ManuscriptController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		r := tx.Delete(&m.ManuscriptModel{}, "manuscript_id = ?", id)
		if r.Error != nil {
			return r.Error
		}
		if r.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Naskah tidak ditemukan")
		}
		// baris published dibiarkan sebagai arsip; hanya scheduled yang dilepas
		return tx.Delete(&pubModel.PublicationModel{},
			"publication_manuscript_id = ? AND publication_status = ?",
			id, pubModel.PublicationScheduled).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Naskah dihapus", fiber.Map{"manuscript_id": id})
}
