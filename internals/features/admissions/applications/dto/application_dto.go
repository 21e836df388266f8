package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"admissions_backend/internals/features/admissions/applications/model"
	userModel "admissions_backend/internals/features/users/user/model"
)

// MaxDocumentSize is the per-attachment ceiling in bytes (10 MiB).
const MaxDocumentSize = 10485760

// Document is one embedded attachment: base64 payload plus declared metadata.
type Document struct {
	Name     string `json:"name"`
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

type SubmitApplicationRequest struct {
	Program            string     `json:"program" validate:"required"`
	Documents          []Document `json:"documents"`
	FullName           string     `json:"fullName" validate:"required"`
	Email              string     `json:"email" validate:"required,email"`
	Phone              string     `json:"phone" validate:"required"`
	Address            string     `json:"address"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	Education          string     `json:"education"`
	StatementOfPurpose string     `json:"statementOfPurpose" validate:"omitempty,max=1000"`
}

func (r *SubmitApplicationRequest) Normalize() {
	r.Program = strings.TrimSpace(r.Program)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

// HasOversizedDocument reports whether any attachment's declared size exceeds
// the ceiling.
func (r *SubmitApplicationRequest) HasOversizedDocument() bool {
	for _, d := range r.Documents {
		if d.Size > MaxDocumentSize {
			return true
		}
	}
	return false
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PersonRef is a resolved identity display fragment.
type PersonRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

type ApplicationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	Program            string     `json:"program"`
	Status             string     `json:"status"`
	Documents          []Document `json:"documents"`
	FullName           string     `json:"fullName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address,omitempty"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Education          string     `json:"education,omitempty"`
	StatementOfPurpose string     `json:"statementOfPurpose,omitempty"`
	SubmittedAt        time.Time  `json:"submittedAt"`
	ReviewedAt         *time.Time `json:"reviewedAt,omitempty"`
	DecisionAt         *time.Time `json:"decisionAt,omitempty"`
	Applicant          *PersonRef `json:"applicant,omitempty"`
	Reviewer           *PersonRef `json:"reviewer,omitempty"`
}

func ToApplicationResponse(m model.ApplicationModel) ApplicationResponse {
	var docs []Document
	if len(m.Documents) > 0 {
		_ = json.Unmarshal(m.Documents, &docs)
	}
	if docs == nil {
		docs = []Document{}
	}

	resp := ApplicationResponse{
		ID:                 m.ID,
		UserID:             m.UserID,
		Program:            m.Program,
		Status:             m.Status,
		Documents:          docs,
		FullName:           m.FullName,
		Email:              m.Email,
		Phone:              m.Phone,
		Address:            m.Address,
		DateOfBirth:        m.DateOfBirth,
		Education:          m.Education,
		StatementOfPurpose: m.StatementOfPurpose,
		SubmittedAt:        m.SubmittedAt,
		ReviewedAt:         m.ReviewedAt,
		DecisionAt:         m.DecisionAt,
	}
	resp.Applicant = toPersonRef(m.Applicant, true)
	resp.Reviewer = toPersonRef(m.Reviewer, false)
	return resp
}

func toPersonRef(u *userModel.UserModel, withEmail bool) *PersonRef {
	if u == nil {
		return nil
	}
	ref := &PersonRef{ID: u.ID, Name: u.Name}
	if withEmail {
		ref.Email = u.Email
	}
	return ref
}
