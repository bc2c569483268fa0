package baseline

import (
	"fmt"

	"github.com/cwbudde/algo-xrd/dsp/core"
)

// SNIP clips peaks by repeatedly replacing each sample with the mean of its
// neighbours k samples away when that mean is lower, for k = 1..Iterations.
// Each pass reads only the previous pass's values, so no sample ever
// increases. Samples closer than k to either end keep their value in pass k.
type SNIP struct {
	Iterations int
}

func (SNIP) estimator() {}

// Method implements Estimator.
func (SNIP) Method() Method { return MethodSNIP }

// Estimate implements Estimator. x is ignored.
func (s SNIP) Estimate(_, y []float64) ([]float64, error) {
	if s.Iterations < 0 {
		return nil, fmt.Errorf("%w: snip iterations %d", ErrInvalidParameter, s.Iterations)
	}

	n := len(y)
	b := core.Clone(y)
	prev := make([]float64, n)

	for k := 1; k <= s.Iterations && 2*k < n; k++ {
		copy(prev, b)
		for i := k; i < n-k; i++ {
			if avg := (prev[i-k] + prev[i+k]) / 2; avg < prev[i] {
				b[i] = avg
			}
		}
	}
	return b, nil
}
