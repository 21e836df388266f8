package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"admissions_backend/internals/configs"
	"admissions_backend/internals/constants"
	authDTO "admissions_backend/internals/features/users/auth/dto"
	authHelper "admissions_backend/internals/features/users/auth/helper"
	userDTO "admissions_backend/internals/features/users/user/dto"
	userModel "admissions_backend/internals/features/users/user/model"
	helper "admissions_backend/internals/helpers"
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

// Unique-violation detection, portable across lib/pq and pgx wrappers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()

	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("[ERROR] register insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.JsonCreated(c, fiber.Map{"message": "User registered successfully"})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()

	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// "no such user" and "wrong password" answer identically to avoid
	// user enumeration
	var user userModel.UserModel
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] login lookup: %v", err)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return issueSession(c, user)
}

func issueSession(c *fiber.Ctx, user userModel.UserModel) error {
	now := nowUTC()
	token, err := SignSessionToken(user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session token")
	}
	setSessionCookie(c, token, now)

	return helper.JsonOK(c, fiber.Map{
		"user": fiber.Map{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return helper.JsonOK(c, fiber.Map{"message": "Logged out successfully"})
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] me lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	return helper.JsonOK(c, fiber.Map{"user": userDTO.ToUserResponse(user)})
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonOK(c, fiber.Map{"message": "Password changed successfully"})
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	name := strings.TrimSpace(claimSet.Name)

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] google login lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
		}

		// First Google sign-in: create a student account with an unusable
		// random credential so password login stays closed until reset.
		hashed, err := authHelper.HashPassword(uuid.NewString())
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		user = userModel.UserModel{
			Name:     name,
			Email:    email,
			Password: hashed,
			Role:     constants.RoleStudent,
		}
		if err := db.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			log.Printf("[ERROR] google login insert: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
		}
	}

	return issueSession(c, user)
}
