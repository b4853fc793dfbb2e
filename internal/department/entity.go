package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Department struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string           `gorm:"not null" json:"name"`
	Status    DepartmentStatus `gorm:"not null;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PerformanceConfig holds per-department evaluation thresholds as a free-form
// payload. At most one row per department.
type PerformanceConfig struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DepartmentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"department_id"`
	Thresholds   datatypes.JSON `gorm:"type:jsonb;not null" json:"thresholds"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
