package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads c.Locals("user_id") as set by the auth middleware.
// Returns 401 when the caller is not logged in, 400 when the claim is mangled.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

// GetUserRoleFromToken reads c.Locals("userRole").
func GetUserRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	return role, nil
}

// GetUserEmailFromToken reads c.Locals("userEmail"). Empty when absent.
func GetUserEmailFromToken(c *fiber.Ctx) string {
	email, _ := c.Locals("userEmail").(string)
	return email
}
