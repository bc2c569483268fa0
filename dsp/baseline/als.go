package baseline

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// ALS is the asymmetric least squares baseline. Each round solves
//
//	(W + λ·DᵀD) z = W y
//
// where D is the second-difference operator and W = diag(w). Samples above
// the current estimate get weight P, the rest 1-P, so peaks lose influence
// while λ keeps z smooth. The round count is fixed; convergence is not
// checked.
type ALS struct {
	Lambda     float64
	P          float64
	Iterations int
}

func (ALS) estimator() {}

// Method implements Estimator.
func (ALS) Method() Method { return MethodALS }

// Estimate implements Estimator. x is ignored.
func (a ALS) Estimate(_, y []float64) ([]float64, error) {
	if !(a.Lambda > 0) {
		return nil, fmt.Errorf("%w: als lambda %v must be > 0", ErrInvalidParameter, a.Lambda)
	}
	if !(a.P > 0 && a.P < 1) {
		return nil, fmt.Errorf("%w: als p %v must be in (0, 1)", ErrInvalidParameter, a.P)
	}
	if a.Iterations < 1 {
		return nil, fmt.Errorf("%w: als iterations %d must be >= 1", ErrInvalidParameter, a.Iterations)
	}

	n := len(y)
	if n < 3 {
		return nil, fmt.Errorf("%w: als needs at least 3 samples, have %d", ErrSingular, n)
	}

	d0, d1, d2 := secondDifferencePenalty(n)

	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	wy := make([]float64, n)
	z := make([]float64, n)

	for it := 0; it < a.Iterations; it++ {
		system := mat.NewSymBandDense(n, 2, nil)
		for i := 0; i < n; i++ {
			system.SetSymBand(i, i, w[i]+a.Lambda*d0[i])
			if i+1 < n {
				system.SetSymBand(i, i+1, a.Lambda*d1[i])
			}
			if i+2 < n {
				system.SetSymBand(i, i+2, a.Lambda*d2[i])
			}
		}

		var chol mat.BandCholesky
		if ok := chol.Factorize(system); !ok {
			return nil, fmt.Errorf("%w: als round %d: factorisation failed", ErrSingular, it)
		}

		vecmath.MulBlock(wy, w, y)

		sol := mat.NewVecDense(n, nil)
		if err := chol.SolveVecTo(sol, mat.NewVecDense(n, wy)); err != nil {
			return nil, fmt.Errorf("%w: als round %d: %v", ErrSingular, it, err)
		}
		for i := range z {
			z[i] = sol.AtVec(i)
		}

		for i := range w {
			if y[i] > z[i] {
				w[i] = a.P
			} else {
				w[i] = 1 - a.P
			}
		}
	}
	return z, nil
}

// secondDifferencePenalty returns the main, first and second diagonals of
// DᵀD for the (n-2)×n second-difference operator D.
func secondDifferencePenalty(n int) (d0, d1, d2 []float64) {
	d0 = make([]float64, n)
	d1 = make([]float64, n)
	d2 = make([]float64, n)

	stencil := [3]float64{1, -2, 1}
	for j := 0; j+2 < n; j++ {
		for a := 0; a < 3; a++ {
			d0[j+a] += stencil[a] * stencil[a]
			if a+1 < 3 {
				d1[j+a] += stencil[a] * stencil[a+1]
			}
			if a+2 < 3 {
				d2[j+a] += stencil[a] * stencil[a+2]
			}
		}
	}
	return d0, d1, d2
}
