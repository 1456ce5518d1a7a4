package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		wantDiff float64
		wantAt   int
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0, 0},
		{"largest wins", []float64{0, 0.5, -1, 0}, []float64{0, 0.25, 1, 0}, 2, 2},
		{"empty", nil, nil, 0, 0},
		{"length mismatch", []float64{1}, []float64{1, 2}, math.Inf(1), -1},
		{"nan", []float64{0, math.NaN()}, []float64{0, 0}, math.Inf(1), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diff, at := MaxAbsDiff(tc.a, tc.b)
			if diff != tc.wantDiff || at != tc.wantAt {
				t.Fatalf("MaxAbsDiff = (%v, %d), want (%v, %d)", diff, at, tc.wantDiff, tc.wantAt)
			}
		})
	}
}

func TestRequireHelpersPass(t *testing.T) {
	ir := []float64{1, 0.5, 0.25, 0.125}

	RequireSliceNearlyEqual(t, ir, []float64{1, 0.5, 0.25, 0.125 + 1e-12}, 1e-9)
	RequireFinite(t, ir)
	RequireDB(t, "half power", 10*math.Log10(0.5), -3.0103, 1e-4)
}
