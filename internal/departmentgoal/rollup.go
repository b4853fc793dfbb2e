package departmentgoal

import (
	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/rollup"
)

// ActualValue sums the actuals of every non-deleted personal goal under the
// department goal. Preloaded trees normally exclude soft-deleted children
// already; the guard keeps the function correct on unscoped loads too.
func ActualValue(d *DepartmentMonthlyGoal) float64 {
	var total float64
	for i := range d.PersonalGoals {
		p := &d.PersonalGoals[i]
		if p.DeletedAt.Valid {
			continue
		}
		total += personalgoal.ActualValue(p)
	}
	return total
}

func Progress(d *DepartmentMonthlyGoal) int {
	return rollup.Percent(ActualValue(d), d.TargetValue)
}
