package departmentgoal

import (
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentMonthlyGoal is a department's target for one calendar month,
// optionally tied to a yearly goal through YearlyGoalID.
type DepartmentMonthlyGoal struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	YearlyGoalID *uuid.UUID     `gorm:"type:uuid;index" json:"yearly_goal_id,omitempty"`
	DepartmentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"department_id"`
	Year         int            `gorm:"not null" json:"year"`
	Month        int            `gorm:"not null" json:"month"`
	TargetValue  float64        `gorm:"not null" json:"target_value"`
	UnitID       uuid.UUID      `gorm:"type:uuid;not null" json:"unit_id"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	Status       GoalStatus     `gorm:"not null;default:'ACTIVE'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	PersonalGoals []personalgoal.PersonalMonthlyGoal `gorm:"foreignKey:DepartmentMonthlyGoalID" json:"personal_goals,omitempty"`
}
