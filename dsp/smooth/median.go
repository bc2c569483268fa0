package smooth

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-xrd/dsp/core"
)

// Median replaces each sample by the median of the kernelSize samples
// centred on it. Positions outside the signal repeat the nearest edge
// sample.
func Median(y []float64, kernelSize int) ([]float64, error) {
	if !validWindow(kernelSize, len(y)) {
		return nil, fmt.Errorf("%w: kernel=%d len=%d", ErrInvalidWindow, kernelSize, len(y))
	}

	n := len(y)
	half := kernelSize / 2
	out := make([]float64, n)
	scratch := make([]float64, kernelSize)

	for i := range out {
		for k := range scratch {
			scratch[k] = y[core.ClampIndex(i-half+k, n)]
		}
		sort.Float64s(scratch)
		out[i] = scratch[half]
	}
	return out, nil
}
