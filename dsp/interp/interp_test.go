package interp

import (
	"errors"
	"math"
	"testing"
)

func TestLinearInterior(t *testing.T) {
	l, err := NewLinear([]float64{0, 10, 20}, []float64{5, 5, 15}, Clamp)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for _, tc := range []struct {
		x, want float64
	}{
		{x: 0, want: 5},
		{x: 5, want: 5},
		{x: 10, want: 5},
		{x: 15, want: 10},
		{x: 20, want: 15},
	} {
		if got := l.At(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("At(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestLinearExtrapolationModes(t *testing.T) {
	xp := []float64{1, 2}
	fp := []float64{10, 20}

	clamp, err := NewLinear(xp, fp, Clamp)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	extend, err := NewLinear(xp, fp, Extend)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	if got := clamp.At(0); got != 10 {
		t.Fatalf("clamp.At(0) = %v, want 10", got)
	}
	if got := clamp.At(5); got != 20 {
		t.Fatalf("clamp.At(5) = %v, want 20", got)
	}
	if got := extend.At(0); math.Abs(got-0) > 1e-12 {
		t.Fatalf("extend.At(0) = %v, want 0", got)
	}
	if got := extend.At(4); math.Abs(got-40) > 1e-12 {
		t.Fatalf("extend.At(4) = %v, want 40", got)
	}
}

func TestLinearEval(t *testing.T) {
	l, err := NewLinear([]float64{0, 4}, []float64{0, 8}, Clamp)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	x := []float64{0, 1, 2, 3, 4}
	dst := make([]float64, len(x))
	l.Eval(dst, x)

	for i, v := range dst {
		if want := 2 * x[i]; math.Abs(v-want) > 1e-12 {
			t.Fatalf("dst[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestNewLinearErrors(t *testing.T) {
	tests := []struct {
		name   string
		xp, fp []float64
		want   error
	}{
		{name: "mismatch", xp: []float64{0, 1}, fp: []float64{0}, want: ErrLengthMismatch},
		{name: "too few", xp: []float64{0}, fp: []float64{0}, want: ErrTooFewPoints},
		{name: "duplicate", xp: []float64{0, 0}, fp: []float64{1, 2}, want: ErrNotIncreasing},
		{name: "decreasing", xp: []float64{2, 1}, fp: []float64{1, 2}, want: ErrNotIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLinear(tt.xp, tt.fp, Clamp); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewLinearCopiesInputs(t *testing.T) {
	xp := []float64{0, 1}
	fp := []float64{0, 1}

	l, err := NewLinear(xp, fp, Clamp)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	fp[1] = 100

	if got := l.At(1); got != 1 {
		t.Fatalf("At(1) = %v after caller mutation, want 1", got)
	}
}
