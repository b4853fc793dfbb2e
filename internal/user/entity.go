package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name               string     `gorm:"not null" json:"name"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	Role               UserRole   `gorm:"not null;default:'MEMBER'" json:"role"`
	Status             UserStatus `gorm:"not null;default:'ACTIVE'" json:"status"`
	DepartmentID       *uuid.UUID `gorm:"type:uuid" json:"department_id,omitempty"`
	GoogleRefreshToken string     `gorm:"column:google_refresh_token" json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
