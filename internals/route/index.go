// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "admissions_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up ProgramRoutes...")
	routeDetails.ProgramRoutes(app, db)

	log.Println("[INFO] Setting up ApplicationRoutes...")
	routeDetails.ApplicationRoutes(app, db)
}
