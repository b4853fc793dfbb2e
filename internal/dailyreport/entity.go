package dailyreport

import (
	"time"

	util "github.com/gabriel-moura/kpiflow-lambda/internal/utils"
	"github.com/google/uuid"
)

// DailyReport is the only entity carrying actual performance values; every
// ancestor goal derives its actuals from these rows.
type DailyReport struct {
	ID                    uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PersonalMonthlyGoalID uuid.UUID     `gorm:"type:uuid;not null;index" json:"personal_monthly_goal_id"`
	ReportDate            util.DateOnly `gorm:"type:date;not null" json:"report_date"`
	PerformanceValue      float64       `gorm:"not null" json:"performance_value"`
	WorkContent           string        `gorm:"type:text;not null" json:"work_content"`
	Status                ReportStatus  `gorm:"not null;default:'SUBMITTED'" json:"status"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}
