package core

import (
	"math"
	"testing"
)

func TestClampIndex(t *testing.T) {
	tests := []struct {
		name     string
		i, n     int
		expected int
	}{
		{name: "inside", i: 2, n: 5, expected: 2},
		{name: "below", i: -3, n: 5, expected: 0},
		{name: "above", i: 7, n: 5, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampIndex(tt.i, tt.n); got != tt.expected {
				t.Fatalf("ClampIndex() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestMonotonic(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want Direction
	}{
		{name: "increasing", x: []float64{10, 20, 30}, want: Increasing},
		{name: "decreasing", x: []float64{4.1, 3.2, 2.0}, want: Decreasing},
		{name: "repeated", x: []float64{1, 2, 2, 3}, want: NotMonotonic},
		{name: "zigzag", x: []float64{1, 3, 2}, want: NotMonotonic},
		{name: "single", x: []float64{1}, want: Increasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Monotonic(tt.x); got != tt.want {
				t.Fatalf("Monotonic(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestDistinctCount(t *testing.T) {
	if got := DistinctCount([]float64{3, 1, 3, 2, 1}); got != 3 {
		t.Fatalf("DistinctCount = %d, want 3", got)
	}
	if got := DistinctCount(nil); got != 0 {
		t.Fatalf("DistinctCount(nil) = %d, want 0", got)
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{0, -1, 2}) {
		t.Fatal("expected finite")
	}
	if AllFinite([]float64{0, math.NaN()}) {
		t.Fatal("NaN should not be finite")
	}
	if AllFinite([]float64{math.Inf(1)}) {
		t.Fatal("Inf should not be finite")
	}
}
