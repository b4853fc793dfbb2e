package yearlygoal

import (
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/google/uuid"
)

type QuarterlySplitInput struct {
	Quarter     int     `json:"quarter" validate:"required,min=1,max=4"`
	TargetValue float64 `json:"target_value" validate:"required"`
	Basis       string  `json:"basis"`
}

type CreateYearlyGoalDTO struct {
	Title       string                `json:"title" validate:"required"`
	Year        int                   `json:"year" validate:"required"`
	TargetValue *float64              `json:"target_value" validate:"required"`
	UnitID      uuid.UUID             `json:"unit_id" validate:"required"`
	Description string                `json:"description"`
	Splits      []QuarterlySplitInput `json:"splits" validate:"dive"`
}

type UpdateYearlyGoalDTO struct {
	Title       *string     `json:"title"`
	TargetValue *float64    `json:"target_value"`
	Description *string     `json:"description"`
	Status      *GoalStatus `json:"status"`
}

type SplitToDepartmentDTO struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	Year         int       `json:"year" validate:"required"`
	Month        int       `json:"month" validate:"required,min=1,max=12"`
	TargetValue  *float64  `json:"target_value" validate:"required"`
}

// QuarterView pairs the static plan with the derived actual for one quarter.
// The two are reported side by side and never reconciled.
type QuarterView struct {
	Quarter           int      `json:"quarter"`
	PlannedTarget     *float64 `json:"planned_target,omitempty"`
	PlannedPercentage *float64 `json:"planned_percentage,omitempty"`
	Basis             string   `json:"basis,omitempty"`
	ActualValue       float64  `json:"actual_value"`
}

type YearlyGoalResponse struct {
	ID              uuid.UUID                               `json:"id"`
	Title           string                                  `json:"title"`
	Year            int                                     `json:"year"`
	TargetValue     float64                                 `json:"target_value"`
	UnitID          uuid.UUID                               `json:"unit_id"`
	Description     string                                  `json:"description,omitempty"`
	CreatedBy       uuid.UUID                               `json:"created_by"`
	Status          GoalStatus                              `json:"status"`
	ActualValue     float64                                 `json:"actual_value"`
	Progress        int                                     `json:"progress"`
	Quarters        []QuarterView                           `json:"quarters,omitempty"`
	DepartmentGoals []departmentgoal.DepartmentGoalResponse `json:"department_goals,omitempty"`
	CreatedAt       time.Time                               `json:"created_at"`
	UpdatedAt       time.Time                               `json:"updated_at"`
}

func ToResponse(y *YearlyGoal) *YearlyGoalResponse {
	quarters := make([]QuarterView, 0, 4)
	for q := 1; q <= 4; q++ {
		view := QuarterView{
			Quarter:     q,
			ActualValue: QuarterActualValue(y, q),
		}
		for i := range y.QuarterlySplits {
			s := &y.QuarterlySplits[i]
			if s.Quarter == q {
				view.PlannedTarget = &s.TargetValue
				view.PlannedPercentage = &s.Percentage
				view.Basis = s.Basis
				break
			}
		}
		quarters = append(quarters, view)
	}

	children := make([]departmentgoal.DepartmentGoalResponse, 0, len(y.DepartmentGoals))
	for i := range y.DepartmentGoals {
		children = append(children, *departmentgoal.ToResponse(&y.DepartmentGoals[i]))
	}

	return &YearlyGoalResponse{
		ID:              y.ID,
		Title:           y.Title,
		Year:            y.Year,
		TargetValue:     y.TargetValue,
		UnitID:          y.UnitID,
		Description:     y.Description,
		CreatedBy:       y.CreatedBy,
		Status:          y.Status,
		ActualValue:     ActualValue(y),
		Progress:        Progress(y),
		Quarters:        quarters,
		DepartmentGoals: children,
		CreatedAt:       y.CreatedAt,
		UpdatedAt:       y.UpdatedAt,
	}
}
