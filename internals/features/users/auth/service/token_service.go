package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"admissions_backend/internals/configs"
	userModel "admissions_backend/internals/features/users/user/model"
	authMiddleware "admissions_backend/internals/middlewares/auth"
)

// Session tokens are single HS256 JWTs, time-boxed to 7 days and delivered as
// an HTTP-only cookie. There is no server-side revocation: logout clears the
// cookie and the token stays valid until expiry.
const SessionTTL = 7 * 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func buildSessionClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(SessionTTL).Unix(),
	}
}

// SignSessionToken issues the session JWT for a user.
func SignSessionToken(user userModel.UserModel, now time.Time) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildSessionClaims(user, now)).
		SignedString([]byte(secret))
}

func setSessionCookie(c *fiber.Ctx, token string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  now.Add(SessionTTL),
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}
