// file: internals/features/admissions/applications/route/application_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"admissions_backend/internals/constants"
	controller "admissions_backend/internals/features/admissions/applications/controller"
	authMiddleware "admissions_backend/internals/middlewares/auth"
)

func ApplicationRoutes(app *fiber.App, db *gorm.DB) {
	applicationController := controller.NewApplicationController(db)

	base := app.Group("/api/applications", authMiddleware.AuthMiddleware())

	base.Post("/",
		authMiddleware.OnlyRoles(constants.ErrOnlyStudentsCanAccess, constants.RoleStudent),
		applicationController.Submit)
	base.Get("/", applicationController.List)

	// registered before /:id so "stats" is not parsed as an id
	base.Get("/stats/overview",
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.RoleAdmin),
		applicationController.Stats)

	base.Get("/:id", applicationController.Get)
	base.Put("/:id",
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.RoleAdmin),
		applicationController.UpdateStatus)
}
