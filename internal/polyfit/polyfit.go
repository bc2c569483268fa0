// Package polyfit provides least-squares polynomial fitting shared by the
// baseline estimators and the Savitzky-Golay smoother.
//
// Abscissae are centred and scaled to [-1, 1] before the Vandermonde system
// is built, which keeps fits of degree 5-6 over 2θ ranges like 10..90
// well conditioned. The system is solved by QR factorisation.
package polyfit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-xrd/dsp/core"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnderdetermined is returned when fewer than degree+1 distinct
	// abscissae are available.
	ErrUnderdetermined = errors.New("polyfit: fewer distinct points than coefficients")
	ErrLengthMismatch  = errors.New("polyfit: x and y must have same length")
	ErrNegativeDegree  = errors.New("polyfit: degree must be >= 0")
	ErrIllConditioned  = errors.New("polyfit: ill-conditioned system")
)

// Poly is a fitted polynomial in the normalised variable (x-shift)/scale.
// Coeffs are in ascending power order.
type Poly struct {
	Coeffs []float64
	shift  float64
	scale  float64
}

// Fit returns the least-squares polynomial of the given degree through
// (x[i], y[i]).
func Fit(x, y []float64, degree int) (Poly, error) {
	if len(x) != len(y) {
		return Poly{}, ErrLengthMismatch
	}
	if degree < 0 {
		return Poly{}, ErrNegativeDegree
	}
	if core.DistinctCount(x) < degree+1 {
		return Poly{}, fmt.Errorf("%w: degree %d needs %d, have %d",
			ErrUnderdetermined, degree, degree+1, core.DistinctCount(x))
	}

	shift, scale := normalisation(x)
	rows, cols := len(x), degree+1

	a := mat.NewDense(rows, cols, nil)
	for i, xi := range x {
		t := (xi - shift) / scale
		v := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, v)
			v *= t
		}
	}
	b := mat.NewVecDense(rows, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(a)

	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, b); err != nil {
		return Poly{}, fmt.Errorf("%w: %v", ErrIllConditioned, err)
	}

	coeffs := make([]float64, cols)
	for j := range coeffs {
		coeffs[j] = c.AtVec(j)
	}
	return Poly{Coeffs: coeffs, shift: shift, scale: scale}, nil
}

// At evaluates p at x with Horner's scheme.
func (p Poly) At(x float64) float64 {
	scale := p.scale
	if scale == 0 {
		scale = 1
	}
	t := (x - p.shift) / scale

	var acc float64
	for j := len(p.Coeffs) - 1; j >= 0; j-- {
		acc = acc*t + p.Coeffs[j]
	}
	return acc
}

// Eval writes p(x[i]) into dst[i] and returns dst.
func (p Poly) Eval(dst, x []float64) []float64 {
	dst = core.EnsureLen(dst, len(x))
	for i, v := range x {
		dst[i] = p.At(v)
	}
	return dst
}

func normalisation(x []float64) (shift, scale float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range x {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	shift = (lo + hi) / 2
	scale = (hi - lo) / 2
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return shift, scale
}
