package core

import (
	"math"
	"sort"
)

// ClampIndex limits i to the valid index range [0, n-1].
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Direction reports the ordering of a sample axis.
type Direction int

const (
	NotMonotonic Direction = iota
	Increasing
	Decreasing
)

// Monotonic classifies x as strictly increasing, strictly decreasing or
// neither. Slices shorter than two samples count as increasing.
func Monotonic(x []float64) Direction {
	if len(x) < 2 {
		return Increasing
	}

	dir := Increasing
	if x[1] < x[0] {
		dir = Decreasing
	}

	for i := 1; i < len(x); i++ {
		switch {
		case dir == Increasing && !(x[i] > x[i-1]):
			return NotMonotonic
		case dir == Decreasing && !(x[i] < x[i-1]):
			return NotMonotonic
		}
	}
	return dir
}

// DistinctCount returns the number of distinct values in x.
func DistinctCount(x []float64) int {
	if len(x) == 0 {
		return 0
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			n++
		}
	}
	return n
}

// AllFinite reports whether every element of x is neither NaN nor Inf.
func AllFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
