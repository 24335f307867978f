// file: internals/features/publishing/blocked_dates/route/blocked_date_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bctl "terbitku_backend/internals/features/publishing/blocked_dates/controller"
	svc "terbitku_backend/internals/features/publishing/publications/service"
	"terbitku_backend/internals/middlewares"
)

// BlockedDateRoutes: registry tanggal terblokir
func BlockedDateRoutes(api fiber.Router, db *gorm.DB) {
	ctl := bctl.New(db, validator.New(), svc.NewSchedulerFromEnv())

	grp := api.Group("/blocked-dates")
	grp.Post("/", middlewares.SchedulingRateLimiter(), ctl.Create)
	grp.Get("/", ctl.List)
	grp.Delete("/:id", ctl.Delete)
}
