package baseline

import "fmt"

// RollingBall takes, for each sample, the minimum over a Window-long
// neighbourhood starting Window/2 samples to its left. Positions outside
// the trace repeat the edge sample. Widening the window never raises the
// result.
type RollingBall struct {
	Window int
}

func (RollingBall) estimator() {}

// Method implements Estimator.
func (RollingBall) Method() Method { return MethodRollingBall }

// Estimate implements Estimator. x is ignored.
func (r RollingBall) Estimate(_, y []float64) ([]float64, error) {
	if r.Window < 1 {
		return nil, fmt.Errorf("%w: rolling ball window %d must be >= 1", ErrInvalidParameter, r.Window)
	}

	n := len(y)
	out := make([]float64, n)
	left := r.Window / 2
	right := r.Window - 1 - left

	// Indices with increasing values; the front is the current minimum.
	queue := make([]int, 0, r.Window)
	next := 0

	for i := 0; i < n; i++ {
		hi := min(n-1, i+right)
		for ; next <= hi; next++ {
			for len(queue) > 0 && y[queue[len(queue)-1]] >= y[next] {
				queue = queue[:len(queue)-1]
			}
			queue = append(queue, next)
		}

		lo := max(0, i-left)
		for queue[0] < lo {
			queue = queue[1:]
		}
		out[i] = y[queue[0]]
	}
	return out, nil
}
