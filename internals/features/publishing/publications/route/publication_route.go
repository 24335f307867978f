// file: internals/features/publishing/publications/route/publication_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pctl "terbitku_backend/internals/features/publishing/publications/controller"
	svc "terbitku_backend/internals/features/publishing/publications/service"
	"terbitku_backend/internals/middlewares"
)

// PublicationRoutes: scheduling engine + lifecycle + kalender
func PublicationRoutes(api fiber.Router, db *gorm.DB) {
	ctl := pctl.New(db, validator.New(), svc.NewSchedulerFromEnv())

	// operasi massal dibatasi lebih ketat
	api.Post("/manuscripts/:manuscript_id/publications/schedule",
		middlewares.SchedulingRateLimiter(), ctl.ScheduleMarkets)
	api.Get("/manuscripts/:manuscript_id/publications", ctl.ListByManuscript)

	grp := api.Group("/publications")
	grp.Patch("/:id/reschedule", ctl.Reschedule)
	grp.Patch("/:id/publish", ctl.MarkPublished)
	grp.Delete("/:id", ctl.Delete)

	api.Get("/calendar", ctl.GetCalendar)
}
