// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "admissions_backend/internals/features/users/auth/controller"
	rateLimiter "admissions_backend/internals/middlewares"
	authMiddleware "admissions_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)

	// Session required
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware())
	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/change-password", authController.ChangePassword)
}
