package dto

import (
	"time"

	"github.com/google/uuid"

	"admissions_backend/internals/features/users/user/model"
)

// UserResponse is the identity shape returned by /me and login.
// The credential hash never leaves the model layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}
