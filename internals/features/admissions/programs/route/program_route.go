// file: internals/features/admissions/programs/route/program_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"admissions_backend/internals/constants"
	controller "admissions_backend/internals/features/admissions/programs/controller"
	authMiddleware "admissions_backend/internals/middlewares/auth"
)

func ProgramRoutes(app *fiber.App, db *gorm.DB) {
	programController := controller.NewProgramController(db)

	base := app.Group("/api/programs")

	// Public catalog
	base.Get("/", programController.List)
	base.Get("/:id", programController.Get)

	// Admin-only mutations
	admin := app.Group("/api/programs",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.RoleAdmin),
	)
	admin.Post("/", programController.Create)
	admin.Put("/:id", programController.Update)
	admin.Delete("/:id", programController.Deactivate)
}
