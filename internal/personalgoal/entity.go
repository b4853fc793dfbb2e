package personalgoal

import (
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/dailyreport"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonalMonthlyGoal is an individual's target for one calendar month. The
// department linkage is optional; the hierarchy is a forest, not a strict tree.
type PersonalMonthlyGoal struct {
	ID                      uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DepartmentMonthlyGoalID *uuid.UUID     `gorm:"type:uuid;index" json:"department_monthly_goal_id,omitempty"`
	UserID                  uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Year                    int            `gorm:"not null" json:"year"`
	Month                   int            `gorm:"not null" json:"month"`
	TargetValue             float64        `gorm:"not null" json:"target_value"`
	UnitID                  uuid.UUID      `gorm:"type:uuid;not null" json:"unit_id"`
	Remark                  string         `gorm:"type:text" json:"remark,omitempty"`
	CreatedBy               uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	Status                  GoalStatus     `gorm:"not null;default:'ACTIVE'" json:"status"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	DailyReports []dailyreport.DailyReport `gorm:"foreignKey:PersonalMonthlyGoalID" json:"daily_reports,omitempty"`
}
