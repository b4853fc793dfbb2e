package dailyreport

import (
	util "github.com/gabriel-moura/kpiflow-lambda/internal/utils"
	"github.com/google/uuid"
)

type CreateDailyReportDTO struct {
	PersonalMonthlyGoalID uuid.UUID     `json:"personal_monthly_goal_id" validate:"required"`
	ReportDate            util.DateOnly `json:"report_date" validate:"required"`
	PerformanceValue      *float64      `json:"performance_value" validate:"required"`
	WorkContent           string        `json:"work_content" validate:"required"`
}

type UpdateDailyReportDTO struct {
	ReportDate       *util.DateOnly `json:"report_date"`
	PerformanceValue *float64       `json:"performance_value"`
	WorkContent      *string        `json:"work_content"`
	Status           *ReportStatus  `json:"status"`
}
