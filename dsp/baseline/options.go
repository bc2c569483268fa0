package baseline

import (
	"fmt"
	"math"
	"sort"
)

const (
	DefaultSNIPIterations    = 30
	DefaultALSLambda         = 1e5
	DefaultALSP              = 0.01
	DefaultALSIterations     = 10
	DefaultPolyDegree        = 4
	DefaultModPolyDegree     = 5
	DefaultModPolyIterations = 5
	DefaultRollingBallWindow = 50
)

// Option configures an estimator built by New.
type Option func(*config)

type config struct {
	iterations int
	lambda     float64
	p          float64
	degree     int
	window     int
	anchors    []Point
}

func defaultConfig() config {
	return config{
		iterations: -1,
		lambda:     DefaultALSLambda,
		p:          DefaultALSP,
		degree:     -1,
		window:     DefaultRollingBallWindow,
	}
}

func (c config) iterationsOr(def int) int {
	if c.iterations < 0 {
		return def
	}
	return c.iterations
}

func (c config) degreeOr(def int) int {
	if c.degree < 0 {
		return def
	}
	return c.degree
}

// WithIterations sets the iteration count for SNIP, ALS and ModPoly.
// Negative values are ignored.
func WithIterations(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.iterations = n
		}
	}
}

// WithLambda sets the ALS smoothness penalty. Values <= 0 are ignored.
func WithLambda(lambda float64) Option {
	return func(c *config) {
		if lambda > 0 && !math.IsInf(lambda, 0) {
			c.lambda = lambda
		}
	}
}

// WithP sets the ALS asymmetry. Values outside (0, 1) are ignored.
func WithP(p float64) Option {
	return func(c *config) {
		if p > 0 && p < 1 {
			c.p = p
		}
	}
}

// WithDegree sets the Poly and ModPoly degree. Negative values are ignored.
func WithDegree(d int) Option {
	return func(c *config) {
		if d >= 0 {
			c.degree = d
		}
	}
}

// WithWindow sets the RollingBall window length. Values < 1 are ignored.
func WithWindow(w int) Option {
	return func(c *config) {
		if w >= 1 {
			c.window = w
		}
	}
}

// WithAnchors sets the Anchor control points.
func WithAnchors(points ...Point) Option {
	copied := append([]Point(nil), points...)

	return func(c *config) {
		c.anchors = copied
	}
}

// OptionsFromParams converts a named parameter map, as produced by a
// settings dialog, into options. Recognised keys: iterations, n_iter,
// lambda, lam, p, degree, window. Integer-valued keys must hold whole
// numbers.
func OptionsFromParams(params map[string]float64) ([]Option, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := make([]Option, 0, len(keys))
	for _, k := range keys {
		v := params[k]
		switch k {
		case "iterations", "n_iter", "niter":
			n, err := wholeNumber(k, v)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithIterations(n))
		case "degree":
			n, err := wholeNumber(k, v)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithDegree(n))
		case "window":
			n, err := wholeNumber(k, v)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithWindow(n))
		case "lambda", "lam":
			opts = append(opts, WithLambda(v))
		case "p":
			opts = append(opts, WithP(v))
		default:
			return nil, fmt.Errorf("%w: unknown parameter %q", ErrInvalidParameter, k)
		}
	}
	return opts, nil
}

func wholeNumber(key string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidParameter, key, v)
	}
	return int(v), nil
}
