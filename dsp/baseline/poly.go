package baseline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xrd/dsp/core"
	"github.com/cwbudde/algo-xrd/internal/polyfit"
)

// Poly fits a least-squares polynomial of the given degree to the whole
// trace. It needs at least Degree+1 distinct x values.
type Poly struct {
	Degree int
}

func (Poly) estimator() {}

// Method implements Estimator.
func (Poly) Method() Method { return MethodPoly }

// Estimate implements Estimator. A nil x uses sample indices.
func (p Poly) Estimate(x, y []float64) ([]float64, error) {
	xs, err := xAxis(x, y)
	if err != nil {
		return nil, err
	}

	fit, err := fitPoly(xs, y, p.Degree)
	if err != nil {
		return nil, err
	}
	return fit.Eval(nil, xs), nil
}

// ModPoly starts from a Poly fit and refits Iterations times using only the
// samples at or below the current baseline. If a refit has too few samples
// left, the last successful baseline is returned.
type ModPoly struct {
	Degree     int
	Iterations int
}

func (ModPoly) estimator() {}

// Method implements Estimator.
func (ModPoly) Method() Method { return MethodModPoly }

// Estimate implements Estimator. A nil x uses sample indices.
func (m ModPoly) Estimate(x, y []float64) ([]float64, error) {
	if m.Iterations < 0 {
		return nil, fmt.Errorf("%w: modpoly iterations %d", ErrInvalidParameter, m.Iterations)
	}

	xs, err := xAxis(x, y)
	if err != nil {
		return nil, err
	}

	fit, err := fitPoly(xs, y, m.Degree)
	if err != nil {
		return nil, err
	}
	base := fit.Eval(nil, xs)

	keep := make([]bool, len(y))
	for it := 0; it < m.Iterations; it++ {
		for i := range keep {
			keep[i] = y[i] <= base[i]
		}

		refit, err := fitPoly(core.Select(xs, keep), core.Select(y, keep), m.Degree)
		if err != nil {
			break
		}
		base = refit.Eval(base, xs)
	}
	return base, nil
}

func fitPoly(x, y []float64, degree int) (polyfit.Poly, error) {
	if degree < 0 {
		return polyfit.Poly{}, fmt.Errorf("%w: degree %d", ErrInvalidParameter, degree)
	}

	fit, err := polyfit.Fit(x, y, degree)
	switch {
	case err == nil:
		return fit, nil
	case errors.Is(err, polyfit.ErrUnderdetermined):
		return polyfit.Poly{}, fmt.Errorf("%w: %w", ErrInsufficientData, err)
	case errors.Is(err, polyfit.ErrIllConditioned):
		return polyfit.Poly{}, fmt.Errorf("%w: %w", ErrSingular, err)
	default:
		return polyfit.Poly{}, fmt.Errorf("baseline: poly degree %d: %w", degree, err)
	}
}
