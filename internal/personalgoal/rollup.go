package personalgoal

import "github.com/gabriel-moura/kpiflow-lambda/internal/rollup"

// ActualValue sums the performance values of every daily report under the
// goal. An empty report list yields 0.
func ActualValue(g *PersonalMonthlyGoal) float64 {
	var total float64
	for i := range g.DailyReports {
		total += g.DailyReports[i].PerformanceValue
	}
	return total
}

func Progress(g *PersonalMonthlyGoal) int {
	return rollup.Percent(ActualValue(g), g.TargetValue)
}
