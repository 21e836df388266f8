// file: internals/features/admissions/programs/controller/program_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"admissions_backend/internals/features/admissions/programs/dto"
	"admissions_backend/internals/features/admissions/programs/model"
	helper "admissions_backend/internals/helpers"
)

type ProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db, Validate: validator.New()}
}

const (
	defaultPageSize = 5
	maxPageSize     = 100
)

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

// escapeLike neutralizes LIKE wildcards in a user-supplied search term so
// "%" and "_" match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// List returns active programs, nearest deadline first, with case-insensitive
// partial search over title and description.
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, defaultPageSize, maxPageSize)

	db := ctl.DB.Model(&model.ProgramModel{}).
		Where("is_active = ?", true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(escapeLike(search)) + "%"
		db = db.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", s, s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[ERROR] program count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count programs")
	}

	var rows []model.ProgramModel
	if err := db.Order("deadline ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] program list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list programs")
	}

	// listings must never be served stale by intermediaries
	c.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Set("Pragma", "no-cache")

	return helper.JsonOK(c, fiber.Map{
		"programs":      rows,
		"currentPage":   p.Page,
		"totalPages":    helper.TotalPages(total, p.PerPage),
		"totalPrograms": total,
	})
}

func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	creatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := model.ProgramModel{
		Title:          req.Title,
		Description:    req.Description,
		Eligibility:    req.Eligibility,
		Duration:       req.Duration,
		Fees:           req.Fees,
		Deadline:       *req.Deadline,
		IsActive:       true,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats, // seats open at declared capacity
		CreatedBy:      creatorID,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Program title already exists")
		}
		log.Printf("[ERROR] program insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create program")
	}

	return helper.JsonCreated(c, fiber.Map{"program": m})
}

func (ctl *ProgramController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}

	var m model.ProgramModel
	if err := ctl.DB.Preload("Creator").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
		}
		log.Printf("[ERROR] program get: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load program")
	}

	return helper.JsonOK(c, fiber.Map{"program": dto.ToProgramResponse(m)})
}

func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.ProgramModel
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
		}
		log.Printf("[ERROR] program load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load program")
	}

	req.ApplyTo(&m)
	if m.Title == "" || m.Description == "" || m.Eligibility == "" || m.Deadline.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title, description, eligibility and deadline are required")
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Program title already exists")
		}
		log.Printf("[ERROR] program update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update program")
	}

	return helper.JsonOK(c, fiber.Map{"program": m})
}

// Deactivate soft-deletes by flipping is_active. Seat counts are untouched.
func (ctl *ProgramController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}

	res := ctl.DB.Model(&model.ProgramModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("[ERROR] program deactivate: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate program")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}

	return helper.JsonOK(c, fiber.Map{"message": "Program deactivated successfully"})
}
