package departmentgoal

import (
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/google/uuid"
)

type CreateDepartmentGoalDTO struct {
	YearlyGoalID *uuid.UUID `json:"yearly_goal_id"`
	DepartmentID uuid.UUID  `json:"department_id" validate:"required"`
	Year         int        `json:"year" validate:"required"`
	Month        int        `json:"month" validate:"required,min=1,max=12"`
	TargetValue  *float64   `json:"target_value" validate:"required"`
	UnitID       uuid.UUID  `json:"unit_id" validate:"required"`
}

type UpdateDepartmentGoalDTO struct {
	TargetValue *float64    `json:"target_value"`
	UnitID      *uuid.UUID  `json:"unit_id"`
	Status      *GoalStatus `json:"status"`
}

type DepartmentGoalResponse struct {
	ID            uuid.UUID                           `json:"id"`
	YearlyGoalID  *uuid.UUID                          `json:"yearly_goal_id,omitempty"`
	DepartmentID  uuid.UUID                           `json:"department_id"`
	Year          int                                 `json:"year"`
	Month         int                                 `json:"month"`
	TargetValue   float64                             `json:"target_value"`
	UnitID        uuid.UUID                           `json:"unit_id"`
	CreatedBy     uuid.UUID                           `json:"created_by"`
	Status        GoalStatus                          `json:"status"`
	ActualValue   float64                             `json:"actual_value"`
	Progress      int                                 `json:"progress"`
	Deleted       bool                                `json:"deleted"`
	PersonalGoals []personalgoal.PersonalGoalResponse `json:"personal_goals,omitempty"`
	CreatedAt     time.Time                           `json:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at"`
}

func ToResponse(d *DepartmentMonthlyGoal) *DepartmentGoalResponse {
	children := make([]personalgoal.PersonalGoalResponse, 0, len(d.PersonalGoals))
	for i := range d.PersonalGoals {
		children = append(children, *personalgoal.ToResponse(&d.PersonalGoals[i]))
	}

	return &DepartmentGoalResponse{
		ID:            d.ID,
		YearlyGoalID:  d.YearlyGoalID,
		DepartmentID:  d.DepartmentID,
		Year:          d.Year,
		Month:         d.Month,
		TargetValue:   d.TargetValue,
		UnitID:        d.UnitID,
		CreatedBy:     d.CreatedBy,
		Status:        d.Status,
		ActualValue:   ActualValue(d),
		Progress:      Progress(d),
		Deleted:       d.DeletedAt.Valid,
		PersonalGoals: children,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
