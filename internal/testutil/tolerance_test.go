package testutil

import "testing"

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-10}, 1e-9)
	RequireAtMost(t, []float64{1, 2}, []float64{1, 3}, 0)
	RequireMask(t, []bool{false, true, true, false}, 1, 2)
	RequireFinite(t, []float64{0, 1})
}
