package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"admissions_backend/internals/configs"
)

// CorsMiddleware allows the SPA origin with credentials (session cookie).
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     configs.FrontendOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
