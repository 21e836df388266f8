package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"admissions_backend/internals/constants"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusSubmitted))
	assert.True(t, ValidStatus(StatusUnderReview))
	assert.True(t, ValidStatus(StatusAccepted))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus("Submitted"))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusAccepted))
	assert.True(t, IsTerminal(StatusRejected))
	assert.False(t, IsTerminal(StatusSubmitted))
	assert.False(t, IsTerminal(StatusUnderReview))
}

func TestValidateTransitionAdmin(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr string
	}{
		{"direct accept from submitted", StatusSubmitted, StatusAccepted, ""},
		{"direct reject from submitted", StatusSubmitted, StatusRejected, ""},
		{"accept from under review", StatusUnderReview, StatusAccepted, ""},
		{"reject from under review", StatusUnderReview, StatusRejected, ""},
		{"admin cannot stage", StatusSubmitted, StatusUnderReview, "Admin can only set status to accepted or rejected"},
		{"admin cannot use unknown status", StatusSubmitted, "waitlisted", "Admin can only set status to accepted or rejected"},
		{"no exit from accepted", StatusAccepted, StatusRejected, "Cannot change status from 'accepted' to 'rejected'"},
		{"no exit from rejected", StatusRejected, StatusAccepted, "Cannot change status from 'rejected' to 'accepted'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(constants.RoleAdmin, tt.from, tt.to)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTransitionStaged(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"submitted to under review", StatusSubmitted, StatusUnderReview, true},
		{"under review to accepted", StatusUnderReview, StatusAccepted, true},
		{"under review to rejected", StatusUnderReview, StatusRejected, true},
		{"submitted straight to accepted", StatusSubmitted, StatusAccepted, false},
		{"submitted straight to rejected", StatusSubmitted, StatusRejected, false},
		{"backwards to submitted", StatusUnderReview, StatusSubmitted, false},
		{"out of accepted", StatusAccepted, StatusUnderReview, false},
		{"out of rejected", StatusRejected, StatusUnderReview, false},
		{"unknown target", StatusSubmitted, "waitlisted", false},
		{"unknown source", "draft", StatusUnderReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(constants.RoleStudent, tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "Cannot change status from")
			}
		})
	}
}
