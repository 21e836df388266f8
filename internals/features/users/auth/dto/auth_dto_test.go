package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"admissions_backend/internals/constants"
)

func TestRegisterRequestNormalizeDefaultsRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantRole string
	}{
		{"omitted role becomes student", "", constants.RoleStudent},
		{"whitespace role becomes student", "   ", constants.RoleStudent},
		{"explicit admin survives", constants.RoleAdmin, constants.RoleAdmin},
		{"explicit student survives", constants.RoleStudent, constants.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{
				Name:     "A B",
				Email:    "A@X.COM",
				Password: "secret1",
				Role:     tt.role,
			}
			req.Normalize()
			assert.Equal(t, tt.wantRole, req.Role)
			assert.Equal(t, "a@x.com", req.Email)
		})
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	v := validator.New()

	t.Run("roleless register passes after normalize", func(t *testing.T) {
		req := RegisterRequest{Name: "A B", Email: "a@x.com", Password: "secret1"}
		req.Normalize()
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		req := RegisterRequest{Name: "A B", Email: "a@x.com", Password: "secret1", Role: "superuser"}
		req.Normalize()
		assert.Error(t, v.Struct(&req))
	})

	t.Run("short password is rejected", func(t *testing.T) {
		req := RegisterRequest{Name: "A B", Email: "a@x.com", Password: "short", Role: constants.RoleStudent}
		req.Normalize()
		assert.Error(t, v.Struct(&req))
	})
}
