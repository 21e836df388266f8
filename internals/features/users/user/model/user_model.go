package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Email     string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=6"`
	Role      string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}
