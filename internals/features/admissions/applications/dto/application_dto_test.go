package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"admissions_backend/internals/features/admissions/applications/model"
	userModel "admissions_backend/internals/features/users/user/model"
)

func TestHasOversizedDocument(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int64
		want  bool
	}{
		{"no documents", nil, false},
		{"all small", []int64{1024, 2048}, false},
		{"exactly at ceiling", []int64{MaxDocumentSize}, false},
		{"one byte over", []int64{MaxDocumentSize + 1}, true},
		{"one of many over", []int64{512, MaxDocumentSize + 1, 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SubmitApplicationRequest{}
			for _, s := range tt.sizes {
				req.Documents = append(req.Documents, Document{Name: "f.pdf", Size: s})
			}
			assert.Equal(t, tt.want, req.HasOversizedDocument())
		})
	}
}

func TestSubmitApplicationRequestNormalize(t *testing.T) {
	req := SubmitApplicationRequest{
		Program:  "  P1  ",
		FullName: " A ",
		Email:    "  A@X.COM ",
		Phone:    " 123 ",
	}
	req.Normalize()

	assert.Equal(t, "P1", req.Program)
	assert.Equal(t, "A", req.FullName)
	assert.Equal(t, "a@x.com", req.Email)
	assert.Equal(t, "123", req.Phone)
}

func TestToApplicationResponse(t *testing.T) {
	docs := []Document{{Name: "cv.pdf", Data: "aGVsbG8=", MimeType: "application/pdf", Size: 5}}
	raw, err := json.Marshal(docs)
	require.NoError(t, err)

	applicantID := uuid.New()
	reviewerID := uuid.New()
	now := time.Now().UTC()

	m := model.ApplicationModel{
		ID:          uuid.New(),
		UserID:      applicantID,
		Program:     "P1",
		Status:      "accepted",
		Documents:   datatypes.JSON(raw),
		FullName:    "A",
		Email:       "a@x.com",
		Phone:       "123",
		SubmittedAt: now,
		ReviewedBy:  &reviewerID,
		DecisionAt:  &now,
		Applicant:   &userModel.UserModel{ID: applicantID, Name: "A", Email: "a@x.com"},
		Reviewer:    &userModel.UserModel{ID: reviewerID, Name: "Reviewer", Email: "r@x.com"},
	}

	resp := ToApplicationResponse(m)

	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "cv.pdf", resp.Documents[0].Name)
	assert.Equal(t, int64(5), resp.Documents[0].Size)

	require.NotNil(t, resp.Applicant)
	assert.Equal(t, "A", resp.Applicant.Name)
	assert.Equal(t, "a@x.com", resp.Applicant.Email)

	// reviewer display never exposes the email
	require.NotNil(t, resp.Reviewer)
	assert.Equal(t, "Reviewer", resp.Reviewer.Name)
	assert.Empty(t, resp.Reviewer.Email)

	require.NotNil(t, resp.DecisionAt)
	assert.Equal(t, now, *resp.DecisionAt)
}

func TestToApplicationResponseEmptyDocuments(t *testing.T) {
	resp := ToApplicationResponse(model.ApplicationModel{})
	assert.NotNil(t, resp.Documents)
	assert.Empty(t, resp.Documents)
	assert.Nil(t, resp.Applicant)
	assert.Nil(t, resp.Reviewer)
}
