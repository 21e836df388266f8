package model

import (
	"time"

	"github.com/google/uuid"

	userModel "admissions_backend/internals/features/users/user/model"
)

// ProgramModel represents the programs table. Programs are never physically
// deleted; deactivation flips is_active.
type ProgramModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title          string    `gorm:"size:255;unique;not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Eligibility    string    `gorm:"type:text;not null" json:"eligibility"`
	Duration       string    `gorm:"size:100" json:"duration"`
	Fees           float64   `json:"fees"`
	Deadline       time.Time `gorm:"not null;index" json:"deadline"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"isActive"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	CreatedBy      uuid.UUID `gorm:"type:uuid" json:"createdBy"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Creator *userModel.UserModel `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
