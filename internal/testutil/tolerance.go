package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any pair differs by more than eps. The report names the worst index and
// how many samples are out of tolerance.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	worst, bad := -1, 0
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps || math.IsNaN(d) {
			bad++
			if worst < 0 || d > math.Abs(got[worst]-want[worst]) {
				worst = i
			}
		}
	}
	if bad > 0 {
		t.Fatalf("%d of %d samples off by more than %v; worst at %d: got %v, want %v",
			bad, len(got), eps, worst, got[worst], want[worst])
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAtMost fails t if any got[i] exceeds bound[i] by more than eps.
func RequireAtMost(t *testing.T, got, bound []float64, eps float64) {
	t.Helper()
	if len(got) != len(bound) {
		t.Fatalf("length mismatch: got %d, bound %d", len(got), len(bound))
	}
	for i := range got {
		if got[i] > bound[i]+eps {
			t.Fatalf("index %d: %v exceeds bound %v", i, got[i], bound[i])
		}
	}
}

// RequireMask fails t unless mask is true exactly at the given indices.
func RequireMask(t *testing.T, mask []bool, want ...int) {
	t.Helper()
	set := make(map[int]bool, len(want))
	for _, i := range want {
		set[i] = true
	}
	for i, v := range mask {
		if v != set[i] {
			t.Fatalf("mask[%d] = %v, want %v (mask %v)", i, v, set[i], mask)
		}
	}
}
