package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"admissions_backend/internals/features/admissions/programs/model"
)

type CreateProgramRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=255"`
	Description string     `json:"description" validate:"required"`
	Eligibility string     `json:"eligibility" validate:"required"`
	Duration    string     `json:"duration" validate:"omitempty,max=100"`
	Fees        float64    `json:"fees" validate:"omitempty,min=0"`
	Deadline    *time.Time `json:"deadline" validate:"required"`
	TotalSeats  int        `json:"totalSeats" validate:"omitempty,min=0"`
}

func (r *CreateProgramRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Eligibility = strings.TrimSpace(r.Eligibility)
	r.Duration = strings.TrimSpace(r.Duration)
}

type UpdateProgramRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string    `json:"description,omitempty" validate:"omitempty,min=1"`
	Eligibility *string    `json:"eligibility,omitempty" validate:"omitempty,min=1"`
	Duration    *string    `json:"duration,omitempty" validate:"omitempty,max=100"`
	Fees        *float64   `json:"fees,omitempty" validate:"omitempty,min=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
	TotalSeats  *int       `json:"totalSeats,omitempty" validate:"omitempty,min=0"`
}

// ApplyTo merges the provided fields into an existing program.
func (r *UpdateProgramRequest) ApplyTo(m *model.ProgramModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.Eligibility != nil {
		m.Eligibility = strings.TrimSpace(*r.Eligibility)
	}
	if r.Duration != nil {
		m.Duration = strings.TrimSpace(*r.Duration)
	}
	if r.Fees != nil {
		m.Fees = *r.Fees
	}
	if r.Deadline != nil {
		m.Deadline = *r.Deadline
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.TotalSeats != nil {
		m.TotalSeats = *r.TotalSeats
	}
}

// ProgramCreator is the creator identity shown on a program detail.
type ProgramCreator struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProgramResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Eligibility    string          `json:"eligibility"`
	Duration       string          `json:"duration"`
	Fees           float64         `json:"fees"`
	Deadline       time.Time       `json:"deadline"`
	IsActive       bool            `json:"isActive"`
	TotalSeats     int             `json:"totalSeats"`
	AvailableSeats int             `json:"availableSeats"`
	CreatedBy      *ProgramCreator `json:"createdBy,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToProgramResponse resolves the creator association into a display name.
func ToProgramResponse(m model.ProgramModel) ProgramResponse {
	resp := ProgramResponse{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Eligibility:    m.Eligibility,
		Duration:       m.Duration,
		Fees:           m.Fees,
		Deadline:       m.Deadline,
		IsActive:       m.IsActive,
		TotalSeats:     m.TotalSeats,
		AvailableSeats: m.AvailableSeats,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Creator != nil {
		resp.CreatedBy = &ProgramCreator{ID: m.Creator.ID, Name: m.Creator.Name}
	}
	return resp
}
