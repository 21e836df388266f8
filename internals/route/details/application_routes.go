package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationRoute "admissions_backend/internals/features/admissions/applications/route"
)

func ApplicationRoutes(app *fiber.App, db *gorm.DB) {
	applicationRoute.ApplicationRoutes(app, db)
}
