// file: internals/features/admissions/applications/controller/application_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"admissions_backend/internals/constants"
	"admissions_backend/internals/features/admissions/applications/dto"
	"admissions_backend/internals/features/admissions/applications/model"
	"admissions_backend/internals/features/admissions/applications/service"
	helper "admissions_backend/internals/helpers"
)

type ApplicationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db, Validate: validator.New()}
}

const (
	defaultPageSize = 5
	maxPageSize     = 100
)

// Submit stores a new application with status "submitted" and a server-side
// submission timestamp.
//
// The at-most-one-per-(user, program) rule is a read-then-write check with no
// transactional guard; two concurrent submissions can both pass it.
func (ctl *ApplicationController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if req.HasOversizedDocument() {
		return helper.JsonError(c, fiber.StatusBadRequest, "One or more files exceed the maximum size of 10MB")
	}

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var existing model.ApplicationModel
	err = ctl.DB.Where("user_id = ? AND program = ?", userID, req.Program).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "You have already applied to this program")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] duplicate pre-check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	docs := req.Documents
	if docs == nil {
		docs = []dto.Document{}
	}
	docsJSON, err := json.Marshal(docs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid documents payload")
	}

	m := model.ApplicationModel{
		UserID:             userID,
		Program:            req.Program,
		Status:             service.StatusSubmitted,
		Documents:          datatypes.JSON(docsJSON),
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		DateOfBirth:        req.DateOfBirth,
		Education:          req.Education,
		StatementOfPurpose: req.StatementOfPurpose,
		SubmittedAt:        time.Now().UTC(),
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		log.Printf("[ERROR] application insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return helper.JsonCreated(c, fiber.Map{"application": dto.ToApplicationResponse(m)})
}

// List returns applications newest first. Students see only their own;
// admins see all with optional status/program filters.
func (ctl *ApplicationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	p := helper.ResolvePaging(c, defaultPageSize, maxPageSize)

	db := ctl.DB.Model(&model.ApplicationModel{})
	if role == constants.RoleStudent {
		db = db.Where("user_id = ?", userID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		db = db.Where("status = ?", status)
	}
	if program := strings.TrimSpace(c.Query("program")); program != "" {
		db = db.Where("program = ?", program)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[ERROR] application count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var rows []model.ApplicationModel
	if err := db.Preload("Applicant").
		Order("submitted_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] application list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list applications")
	}

	out := make([]dto.ApplicationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToApplicationResponse(m))
	}

	return helper.JsonOK(c, fiber.Map{
		"applications":      out,
		"currentPage":       p.Page,
		"totalPages":        helper.TotalPages(total, p.PerPage),
		"totalApplications": total,
	})
}

// Get returns one application with applicant and reviewer resolved. Students
// may only fetch their own record.
func (ctl *ApplicationController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}

	var m model.ApplicationModel
	if err := ctl.DB.Preload("Applicant").Preload("Reviewer").
		First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		log.Printf("[ERROR] application get: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
	}

	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if role == constants.RoleStudent {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if m.UserID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "You do not have permission to view this application")
		}
	}

	return helper.JsonOK(c, fiber.Map{"application": dto.ToApplicationResponse(m)})
}

// UpdateStatus moves an application through the review workflow and records
// reviewer identity and timestamps. Seat counts are never touched here.
func (ctl *ApplicationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.ApplicationModel
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		log.Printf("[ERROR] application load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
	}

	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := service.ValidateTransition(role, m.Status, req.Status); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	now := time.Now().UTC()
	m.Status = req.Status
	m.ReviewedAt = &now
	m.ReviewedBy = &reviewerID
	if service.IsTerminal(req.Status) {
		m.DecisionAt = &now
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		log.Printf("[ERROR] application status update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update application")
	}

	return helper.JsonOK(c, fiber.Map{"application": dto.ToApplicationResponse(m)})
}

// Stats computes the admin overview on demand; cost is proportional to the
// collection size at call time.
func (ctl *ApplicationController) Stats(c *fiber.Ctx) error {
	var total int64
	if err := ctl.DB.Model(&model.ApplicationModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] stats count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var statusRows []statusCount
	if err := ctl.DB.Model(&model.ApplicationModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		log.Printf("[ERROR] stats by status: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}
	byStatus := make(map[string]int64, len(statusRows))
	for _, r := range statusRows {
		byStatus[r.Status] = r.Count
	}

	type programCount struct {
		Program string `json:"program"`
		Count   int64  `json:"count"`
	}
	var byProgram []programCount
	if err := ctl.DB.Model(&model.ApplicationModel{}).
		Select("program, COUNT(*) AS count").
		Group("program").
		Scan(&byProgram).Error; err != nil {
		log.Printf("[ERROR] stats by program: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}
	if byProgram == nil {
		byProgram = []programCount{}
	}

	var recent []model.ApplicationModel
	if err := ctl.DB.Preload("Applicant").
		Order("submitted_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		log.Printf("[ERROR] stats recent: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}
	recentOut := make([]dto.ApplicationResponse, 0, len(recent))
	for _, m := range recent {
		recentOut = append(recentOut, dto.ToApplicationResponse(m))
	}

	return helper.JsonOK(c, fiber.Map{
		"totalApplications":  total,
		"byStatus":           byStatus,
		"byProgram":          byProgram,
		"recentApplications": recentOut,
	})
}
