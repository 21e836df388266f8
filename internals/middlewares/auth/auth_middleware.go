// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"admissions_backend/internals/configs"
	helper "admissions_backend/internals/helpers"
)

const SessionCookieName = "token"

// AuthMiddleware resolves the caller from the HTTP-only session cookie
// (Authorization: Bearer is accepted as a fallback) and stores the claims
// in Locals for the handlers and role gates downstream.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
		}

		secret := configs.JWTSecret
		if secret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}); err != nil {
			// covers bad signature, malformed token and expiry
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		userID, _ := claims["user_id"].(string)
		if strings.TrimSpace(userID) == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals("user_id", userID)
		if email, ok := claims["email"].(string); ok {
			c.Locals("userEmail", email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("userRole", role)
		}

		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(SessionCookieName)); v != "" {
		return v
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}
