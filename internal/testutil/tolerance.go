package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails at the first sample where got and want differ
// by more than eps. A length mismatch fails immediately.
func RequireSliceNearlyEqual(tb testing.TB, got, want []float64, eps float64) {
	tb.Helper()

	if len(got) != len(want) {
		tb.Fatalf("%d samples, want %d", len(got), len(want))
	}

	if diff, at := MaxAbsDiff(got, want); diff > eps {
		tb.Fatalf("sample %d: %v, want %v (|diff| %.3e > %.3e)", at, got[at], want[at], diff, eps)
	}
}

// RequireFinite fails on the first NaN or Inf sample.
func RequireFinite(tb testing.TB, data []float64) {
	tb.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tb.Fatalf("sample %d is %v", i, v)
		}
	}
}

// RequireDB fails when a level in dB is more than tolDB away from want.
func RequireDB(tb testing.TB, what string, got, want, tolDB float64) {
	tb.Helper()

	if !(math.Abs(got-want) <= tolDB) {
		tb.Fatalf("%s: %.6f dB, want %.6f dB", what, got, want)
	}
}

// MaxAbsDiff returns the largest |a[i]-b[i]| and the index where it occurs.
// Slices of different length give +Inf at index -1; NaN samples count as
// an infinite difference.
func MaxAbsDiff(a, b []float64) (float64, int) {
	if len(a) != len(b) {
		return math.Inf(1), -1
	}

	maxDiff, at := 0.0, 0

	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			return math.Inf(1), i
		}

		if d > maxDiff {
			maxDiff, at = d, i
		}
	}

	return maxDiff, at
}
