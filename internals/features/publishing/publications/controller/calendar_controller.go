// file: internals/features/publishing/publications/controller/calendar_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "terbitku_backend/internals/helpers"

	bdDto "terbitku_backend/internals/features/publishing/blocked_dates/dto"
	bdModel "terbitku_backend/internals/features/publishing/blocked_dates/model"
	d "terbitku_backend/internals/features/publishing/publications/dto"
)

/* =========================
   Kalender (read model untuk UI)
   ========================= */

// GET /calendar?month=YYYY-MM  (atau ?from=YYYY-MM-DD&to=YYYY-MM-DD)
// Default: bulan berjalan. Tanggal terblokir ikut dikirim supaya UI bisa
// merender sel abu-abu tanpa request kedua.
func (ctl *PublicationController) GetCalendar(c *fiber.Ctx) error {
	from, to, err := resolveCalendarRange(c.Query("from"), c.Query("to"), c.Query("month"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context())

	entries, err := ctl.Scheduler.Calendar(db, from, to)
	if err != nil {
		log.Printf("[Publication.GetCalendar] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var blocked []bdModel.BlockedDateModel
	if err := db.
		Where("blocked_date_date >= ? AND blocked_date_date <= ?", from, to).
		Order("blocked_date_date ASC").
		Find(&blocked).Error; err != nil {
		log.Printf("[Publication.GetCalendar] blocked query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"from":          helper.FormatDate(from),
		"to":            helper.FormatDate(to),
		"days":          d.GroupCalendar(entries),
		"blocked_dates": bdDto.FromModels(blocked),
	})
}

// resolveCalendarRange: ?from dan ?to wajib dikirim berpasangan; tanpa
// keduanya fallback ke ?month, lalu ke bulan berjalan.
func resolveCalendarRange(fromQ, toQ, monthQ string) (time.Time, time.Time, error) {
	fromStr := strings.TrimSpace(fromQ)
	toStr := strings.TrimSpace(toQ)
	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest,
				"from dan to harus dikirim berpasangan (YYYY-MM-DD)")
		}
		from, ok := helper.ParseDateYYYYMMDD(fromStr)
		if !ok {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		to, ok := helper.ParseDateYYYYMMDD(toStr)
		if !ok {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to harus >= from")
		}
		return from, to, nil
	}

	monthStr := strings.TrimSpace(monthQ)
	var base time.Time
	if monthStr == "" {
		base = helper.Today()
	} else {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "month harus YYYY-MM")
		}
		base = parsed
	}
	from := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}
