// Package rollup holds the shared arithmetic for goal progress. Actuals are
// always derived from daily reports; nothing here touches storage.
package rollup

import "math"

// Percent returns the rounded progress percentage. A target of zero or less
// yields 0 rather than a division error; values above 100 are meaningful
// (over-achievement) and are not clamped.
func Percent(actual, target float64) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(actual / target * 100))
}
