package baseline

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-xrd/dsp/interp"
)

// Point is an (x, y) control point.
type Point struct {
	X, Y float64
}

// Anchor draws straight lines through user-chosen points and extends the
// first and last segment beyond the outermost anchors. The baseline passes
// exactly through every anchor.
type Anchor struct {
	Anchors []Point
}

func (Anchor) estimator() {}

// Method implements Estimator.
func (Anchor) Method() Method { return MethodAnchor }

// Estimate implements Estimator. Only the length of y is used; a nil x
// uses sample indices.
func (a Anchor) Estimate(x, y []float64) ([]float64, error) {
	if len(a.Anchors) < 2 {
		return nil, fmt.Errorf("%w: anchor needs at least 2 points, have %d", ErrInsufficientData, len(a.Anchors))
	}

	xs, err := xAxis(x, y)
	if err != nil {
		return nil, err
	}

	pts := append([]Point(nil), a.Anchors...)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	ax := make([]float64, len(pts))
	ay := make([]float64, len(pts))
	for i, p := range pts {
		ax[i], ay[i] = p.X, p.Y
	}

	lin, err := interp.NewLinear(ax, ay, interp.Extend)
	if err != nil {
		return nil, fmt.Errorf("%w: anchors: %w", ErrInvalidParameter, err)
	}

	out := make([]float64, len(xs))
	lin.Eval(out, xs)
	return out, nil
}
