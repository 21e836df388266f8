package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programRoute "admissions_backend/internals/features/admissions/programs/route"
)

func ProgramRoutes(app *fiber.App, db *gorm.DB) {
	programRoute.ProgramRoutes(app, db)
}
