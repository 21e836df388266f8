package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	userModel "admissions_backend/internals/features/users/user/model"
)

// ApplicationModel represents the applications table. Programs are referenced
// by name, documents live embedded in a jsonb array, and the status field is
// overwritten in place on review (no history log).
//
// The (user_id, program) index backs the duplicate-submission pre-check. It is
// deliberately non-unique: uniqueness is enforced by a read-then-write check
// with no transactional guard, so two concurrent submissions can both land.
type ApplicationModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index;index:idx_applications_user_program" json:"userId"`
	Program string    `gorm:"size:255;not null;index:idx_applications_user_program" json:"program"`
	Status  string    `gorm:"type:varchar(20);not null;default:'submitted';index" json:"status"`

	Documents datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"documents"`

	FullName           string     `gorm:"size:255;not null" json:"fullName"`
	Email              string     `gorm:"size:255;not null" json:"email"`
	Phone              string     `gorm:"size:50;not null" json:"phone"`
	Address            string     `gorm:"type:text" json:"address,omitempty"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Education          string     `gorm:"type:text" json:"education,omitempty"`
	StatementOfPurpose string     `gorm:"size:1000" json:"statementOfPurpose,omitempty"`

	SubmittedAt time.Time  `gorm:"not null;index" json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid" json:"reviewedBy,omitempty"`
	DecisionAt  *time.Time `json:"decisionAt,omitempty"`

	Applicant *userModel.UserModel `gorm:"foreignKey:UserID" json:"-"`
	Reviewer  *userModel.UserModel `gorm:"foreignKey:ReviewedBy" json:"-"`
}

func (ApplicationModel) TableName() string {
	return "applications"
}
