package personalgoal

import (
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/dailyreport"
	"github.com/google/uuid"
)

type CreatePersonalGoalDTO struct {
	DepartmentMonthlyGoalID *uuid.UUID `json:"department_monthly_goal_id"`
	UserID                  uuid.UUID  `json:"user_id" validate:"required"`
	Year                    int        `json:"year" validate:"required"`
	Month                   int        `json:"month" validate:"required,min=1,max=12"`
	TargetValue             *float64   `json:"target_value" validate:"required"`
	UnitID                  *uuid.UUID `json:"unit_id"`
	Remark                  string     `json:"remark"`
}

type UpdatePersonalGoalDTO struct {
	TargetValue *float64    `json:"target_value"`
	UnitID      *uuid.UUID  `json:"unit_id"`
	Remark      *string     `json:"remark"`
	Status      *GoalStatus `json:"status"`
}

// PersonalGoalResponse carries the stored row plus the derived rollup values.
// Actuals are never stored; they are recomputed on every read.
type PersonalGoalResponse struct {
	ID                      uuid.UUID                 `json:"id"`
	DepartmentMonthlyGoalID *uuid.UUID                `json:"department_monthly_goal_id,omitempty"`
	UserID                  uuid.UUID                 `json:"user_id"`
	Year                    int                       `json:"year"`
	Month                   int                       `json:"month"`
	TargetValue             float64                   `json:"target_value"`
	UnitID                  uuid.UUID                 `json:"unit_id"`
	Remark                  string                    `json:"remark,omitempty"`
	CreatedBy               uuid.UUID                 `json:"created_by"`
	Status                  GoalStatus                `json:"status"`
	ActualValue             float64                   `json:"actual_value"`
	Progress                int                       `json:"progress"`
	Deleted                 bool                      `json:"deleted"`
	DailyReports            []dailyreport.DailyReport `json:"daily_reports,omitempty"`
	CreatedAt               time.Time                 `json:"created_at"`
	UpdatedAt               time.Time                 `json:"updated_at"`
}

func ToResponse(g *PersonalMonthlyGoal) *PersonalGoalResponse {
	return &PersonalGoalResponse{
		ID:                      g.ID,
		DepartmentMonthlyGoalID: g.DepartmentMonthlyGoalID,
		UserID:                  g.UserID,
		Year:                    g.Year,
		Month:                   g.Month,
		TargetValue:             g.TargetValue,
		UnitID:                  g.UnitID,
		Remark:                  g.Remark,
		CreatedBy:               g.CreatedBy,
		Status:                  g.Status,
		ActualValue:             ActualValue(g),
		Progress:                Progress(g),
		Deleted:                 g.DeletedAt.Valid,
		DailyReports:            g.DailyReports,
		CreatedAt:               g.CreatedAt,
		UpdatedAt:               g.UpdatedAt,
	}
}
