package baseline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xrd/dsp/core"
)

var (
	ErrUnsupportedMethod = errors.New("baseline: unsupported method")
	ErrInvalidParameter  = errors.New("baseline: invalid parameter")
	ErrInsufficientData  = errors.New("baseline: insufficient data")
	ErrSingular          = errors.New("baseline: singular system")
	ErrLengthMismatch    = errors.New("baseline: x and y must have same length")
)

// Estimator computes a baseline for the intensities y sampled at x.
// Variants that do not use x accept nil.
type Estimator interface {
	Method() Method
	Estimate(x, y []float64) ([]float64, error)

	estimator()
}

// New returns the estimator for m configured with the method defaults and
// then opts. Options that do not apply to m are ignored.
func New(m Method, opts ...Option) (Estimator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch m {
	case MethodSNIP:
		return SNIP{Iterations: cfg.iterationsOr(DefaultSNIPIterations)}, nil
	case MethodALS:
		return ALS{Lambda: cfg.lambda, P: cfg.p, Iterations: cfg.iterationsOr(DefaultALSIterations)}, nil
	case MethodPoly:
		return Poly{Degree: cfg.degreeOr(DefaultPolyDegree)}, nil
	case MethodModPoly:
		return ModPoly{Degree: cfg.degreeOr(DefaultModPolyDegree), Iterations: cfg.iterationsOr(DefaultModPolyIterations)}, nil
	case MethodRollingBall:
		return RollingBall{Window: cfg.window}, nil
	case MethodAnchor:
		return Anchor{Anchors: cfg.anchors}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, m)
	}
}

// xAxis returns x, or sample indices when x is nil.
func xAxis(x, y []float64) ([]float64, error) {
	if x == nil {
		return core.Indices(len(y)), nil
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	return x, nil
}
