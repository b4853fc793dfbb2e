package yearlygoal

import (
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/google/uuid"
)

// YearlyGoal is the root of the goal hierarchy. Its actual value is derived
// from daily reports three levels down; nothing here stores actuals.
type YearlyGoal struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Year        int        `gorm:"not null" json:"year"`
	TargetValue float64    `gorm:"not null" json:"target_value"`
	UnitID      uuid.UUID  `gorm:"type:uuid;not null" json:"unit_id"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	Status      GoalStatus `gorm:"not null;default:'ACTIVE'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	QuarterlySplits []QuarterlySplit                       `gorm:"foreignKey:YearlyGoalID;constraint:OnDelete:CASCADE" json:"quarterly_splits,omitempty"`
	DepartmentGoals []departmentgoal.DepartmentMonthlyGoal `gorm:"foreignKey:YearlyGoalID" json:"department_goals,omitempty"`
}

// QuarterlySplit is the static planned decomposition of a yearly goal.
// Percentage is informational (split target / yearly target x 100) and is
// never recomputed from actuals.
type QuarterlySplit struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	YearlyGoalID uuid.UUID `gorm:"type:uuid;not null;index" json:"yearly_goal_id"`
	Quarter      int       `gorm:"not null" json:"quarter"`
	TargetValue  float64   `gorm:"not null" json:"target_value"`
	Percentage   float64   `gorm:"not null" json:"percentage"`
	Basis        string    `gorm:"type:text" json:"basis,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
