package interp

import (
	"errors"
	"sort"
)

var (
	ErrTooFewPoints   = errors.New("interp: at least two control points required")
	ErrLengthMismatch = errors.New("interp: xp and fp must have same length")
	ErrNotIncreasing  = errors.New("interp: xp must be strictly increasing")
)

// Extrapolation selects how positions outside the control range evaluate.
type Extrapolation int

const (
	Clamp Extrapolation = iota
	Extend
)

// Linear is a piecewise-linear interpolant through (xp[i], fp[i]).
type Linear struct {
	xp   []float64
	fp   []float64
	mode Extrapolation
}

// NewLinear copies the control points and returns an interpolant.
// xp must be strictly increasing.
func NewLinear(xp, fp []float64, mode Extrapolation) (*Linear, error) {
	if len(xp) != len(fp) {
		return nil, ErrLengthMismatch
	}
	if len(xp) < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(xp); i++ {
		if !(xp[i] > xp[i-1]) {
			return nil, ErrNotIncreasing
		}
	}

	return &Linear{
		xp:   append([]float64(nil), xp...),
		fp:   append([]float64(nil), fp...),
		mode: mode,
	}, nil
}

// At evaluates the interpolant at x.
func (l *Linear) At(x float64) float64 {
	n := len(l.xp)

	if x <= l.xp[0] {
		if x == l.xp[0] || l.mode == Clamp {
			return l.fp[0]
		}
		return l.segment(0, x)
	}

	if x >= l.xp[n-1] {
		if x == l.xp[n-1] || l.mode == Clamp {
			return l.fp[n-1]
		}
		return l.segment(n-2, x)
	}

	// xp[j-1] < x <= xp[j]
	j := sort.SearchFloat64s(l.xp, x)
	if l.xp[j] == x {
		return l.fp[j]
	}
	return l.segment(j-1, x)
}

// Eval writes At(x[i]) into dst[i]. dst must be at least len(x) long.
func (l *Linear) Eval(dst, x []float64) {
	for i, v := range x {
		dst[i] = l.At(v)
	}
}

func (l *Linear) segment(i int, x float64) float64 {
	x0, x1 := l.xp[i], l.xp[i+1]
	y0, y1 := l.fp[i], l.fp[i+1]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
