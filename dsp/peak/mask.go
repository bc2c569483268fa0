package peak

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xrd/dsp/core"
	"github.com/cwbudde/algo-xrd/dsp/interp"
)

var (
	ErrLengthMismatch   = errors.New("peak: signal and mask must have same length")
	ErrFullyMasked      = errors.New("peak: mask covers every sample")
	ErrInsufficientData = errors.New("peak: fewer than two unmasked samples")
	ErrNotMonotonic     = errors.New("peak: x must be strictly monotonic")
)

// Detect returns a mask that is true within width samples of every peak
// reported by Find. Overlapping windows merge.
func Detect(y []float64, opts ...Option) []bool {
	mask := make([]bool, len(y))
	if len(y) == 0 {
		return mask
	}

	cfg := applyOptions(opts)
	for _, p := range Find(y, opts...) {
		lo := core.ClampIndex(p.Index-cfg.width, len(y))
		hi := core.ClampIndex(p.Index+cfg.width, len(y))
		for i := lo; i <= hi; i++ {
			mask[i] = true
		}
	}
	return mask
}

// Coverage returns the fraction of samples marked in mask.
func Coverage(mask []bool) float64 {
	if len(mask) == 0 {
		return 0
	}
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return float64(n) / float64(len(mask))
}

// ApplyMask returns a copy of y in which every masked sample is replaced by
// the smallest unmasked value.
func ApplyMask(y []float64, mask []bool) ([]float64, error) {
	if len(mask) != len(y) {
		return nil, ErrLengthMismatch
	}

	floor, found := 0.0, false
	for i, m := range mask {
		if m {
			continue
		}
		if !found || y[i] < floor {
			floor = y[i]
			found = true
		}
	}

	out := core.Clone(y)
	if !found {
		if len(y) == 0 {
			return out, nil
		}
		return nil, ErrFullyMasked
	}

	for i, m := range mask {
		if m {
			out[i] = floor
		}
	}
	return out, nil
}

// FillByInterpolation returns a copy of y in which masked samples are
// linearly interpolated from the unmasked (x, y) pairs. Masked samples
// beyond the first or last unmasked sample take that sample's value.
// x must be strictly increasing or strictly decreasing.
func FillByInterpolation(x, y []float64, mask []bool) ([]float64, error) {
	if len(x) != len(y) || len(mask) != len(y) {
		return nil, ErrLengthMismatch
	}

	dir := core.Monotonic(x)
	if dir == core.NotMonotonic {
		return nil, ErrNotMonotonic
	}

	keep := make([]bool, len(mask))
	for i, m := range mask {
		keep[i] = !m
	}
	xp := core.Select(x, keep)
	fp := core.Select(y, keep)
	if len(xp) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrInsufficientData, len(xp))
	}

	if dir == core.Decreasing {
		reverse(xp)
		reverse(fp)
	}

	lin, err := interp.NewLinear(xp, fp, interp.Clamp)
	if err != nil {
		return nil, fmt.Errorf("peak: interpolation fill: %w", err)
	}

	out := core.Clone(y)
	for i, m := range mask {
		if m {
			out[i] = lin.At(x[i])
		}
	}
	return out, nil
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
