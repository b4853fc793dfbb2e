package rollup_test

import (
	"testing"

	"github.com/gabriel-moura/kpiflow-lambda/internal/rollup"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		name   string
		actual float64
		target float64
		want   int
	}{
		{"ZeroTarget", 500, 0, 0},
		{"NegativeTarget", 500, -100, 0},
		{"ZeroActual", 0, 1000, 0},
		{"Half", 550, 1000, 55},
		{"Rounding", 333, 1000, 33},
		{"RoundingUp", 335, 1000, 34},
		{"OverAchievement", 1500, 1000, 150},
		{"Exact", 1000, 1000, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rollup.Percent(tc.actual, tc.target)
			if got != tc.want {
				t.Errorf("Percent(%v, %v) = %d, want %d", tc.actual, tc.target, got, tc.want)
			}
		})
	}
}
