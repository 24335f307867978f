// file: internals/features/publishing/manuscripts/route/manuscript_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mctl "terbitku_backend/internals/features/publishing/manuscripts/controller"
)

// ManuscriptRoutes: CRUD naskah
func ManuscriptRoutes(api fiber.Router, db *gorm.DB) {
	ctl := mctl.New(db, validator.New())

	grp := api.Group("/manuscripts")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
