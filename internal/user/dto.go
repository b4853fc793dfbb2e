package user

import (
	"time"

	"github.com/google/uuid"
)

type GoogleLoginDTO struct {
	Code string `json:"code" validate:"required"`
}

type UpdateUserDTO struct {
	Name         *string     `json:"name"`
	Role         *UserRole   `json:"role"`
	Status       *UserStatus `json:"status"`
	DepartmentID *uuid.UUID  `json:"department_id"`
}

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Status:       u.Status,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
