// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bdRoute "terbitku_backend/internals/features/publishing/blocked_dates/route"
	manRoute "terbitku_backend/internals/features/publishing/manuscripts/route"
	pubRoute "terbitku_backend/internals/features/publishing/publications/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up ManuscriptRoutes...")
	manRoute.ManuscriptRoutes(api, db)

	log.Println("[INFO] Setting up PublicationRoutes...")
	pubRoute.PublicationRoutes(api, db)

	log.Println("[INFO] Setting up BlockedDateRoutes...")
	bdRoute.BlockedDateRoutes(api, db)
}
