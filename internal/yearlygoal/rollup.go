package yearlygoal

import (
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/rollup"
)

// QuarterMonths is the fixed quarter-to-month mapping. Every month 1-12
// belongs to exactly one quarter.
var QuarterMonths = map[int][]int{
	1: {1, 2, 3},
	2: {4, 5, 6},
	3: {7, 8, 9},
	4: {10, 11, 12},
}

// ActualValue sums the actuals of every linked department goal across all
// months and departments. There is no month-range filtering at this level.
func ActualValue(y *YearlyGoal) float64 {
	var total float64
	for i := range y.DepartmentGoals {
		d := &y.DepartmentGoals[i]
		if d.DeletedAt.Valid {
			continue
		}
		total += departmentgoal.ActualValue(d)
	}
	return total
}

func Progress(y *YearlyGoal) int {
	return rollup.Percent(ActualValue(y), y.TargetValue)
}

// QuarterActualValue restricts the rollup to department goals whose month
// falls in the given quarter. It is a display-only cross-check against the
// static quarterly split and never mutates it.
func QuarterActualValue(y *YearlyGoal, quarter int) float64 {
	months, ok := QuarterMonths[quarter]
	if !ok {
		return 0
	}

	inQuarter := make(map[int]bool, len(months))
	for _, m := range months {
		inQuarter[m] = true
	}

	var total float64
	for i := range y.DepartmentGoals {
		d := &y.DepartmentGoals[i]
		if d.DeletedAt.Valid || !inQuarter[d.Month] {
			continue
		}
		total += departmentgoal.ActualValue(d)
	}
	return total
}
