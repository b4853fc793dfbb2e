package departmentgoal

import (
	"testing"
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/dailyreport"
	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"gorm.io/gorm"
)

func personalGoal(target float64, values ...float64) personalgoal.PersonalMonthlyGoal {
	g := personalgoal.PersonalMonthlyGoal{TargetValue: target}
	for _, v := range values {
		g.DailyReports = append(g.DailyReports, dailyreport.DailyReport{PerformanceValue: v})
	}
	return g
}

func TestDepartmentActualValue(t *testing.T) {
	t.Run("SumsAcrossPersonalGoals", func(t *testing.T) {
		d := &DepartmentMonthlyGoal{
			TargetValue: 2000,
			PersonalGoals: []personalgoal.PersonalMonthlyGoal{
				personalGoal(1000, 300, 250),
				personalGoal(800, 450),
			},
		}
		if got := ActualValue(d); got != 1000 {
			t.Errorf("expected actual value 1000, got %v", got)
		}
		if got := Progress(d); got != 50 {
			t.Errorf("expected progress 50, got %d", got)
		}
	})

	t.Run("ExcludesSoftDeletedPersonalGoals", func(t *testing.T) {
		deleted := personalGoal(500, 200)
		deleted.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}

		d := &DepartmentMonthlyGoal{
			TargetValue: 1000,
			PersonalGoals: []personalgoal.PersonalMonthlyGoal{
				personalGoal(1000, 300, 250),
				deleted,
			},
		}
		if got := ActualValue(d); got != 550 {
			t.Errorf("expected deleted goal to be excluded, got %v", got)
		}
	})

	t.Run("NoPersonalGoals", func(t *testing.T) {
		d := &DepartmentMonthlyGoal{TargetValue: 2000}
		if got := ActualValue(d); got != 0 {
			t.Errorf("expected actual value 0, got %v", got)
		}
		if got := Progress(d); got != 0 {
			t.Errorf("expected progress 0, got %d", got)
		}
	})
}
