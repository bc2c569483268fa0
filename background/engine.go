package background

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-xrd/curve"
	"github.com/cwbudde/algo-xrd/dsp/baseline"
	"github.com/cwbudde/algo-xrd/dsp/peak"
	"github.com/cwbudde/algo-xrd/dsp/smooth"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoStore       = errors.New("background: engine has no curve store")
	ErrLengthChanged = errors.New("background: estimator returned wrong length")
	ErrUnknownFill   = errors.New("background: unknown fill mode")
)

// Fill selects how protected peak samples are neutralised before
// estimation.
type Fill int

const (
	// FillMinimum replaces masked samples with the lowest unmasked value.
	FillMinimum Fill = iota
	// FillInterpolate bridges masked runs with straight lines.
	FillInterpolate
)

var fillTags = map[Fill]string{
	FillMinimum:     "min",
	FillInterpolate: "interp",
}

// String returns the fill's tag, "min" or "interp".
func (f Fill) String() string {
	if tag, ok := fillTags[f]; ok {
		return tag
	}
	return fmt.Sprintf("Fill(%d)", int(f))
}

// ParseFill maps a tag to its Fill. Matching ignores case and surrounding
// whitespace.
func ParseFill(tag string) (Fill, error) {
	want := strings.ToLower(strings.TrimSpace(tag))
	for f, t := range fillTags {
		if t == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFill, tag)
}

// Request describes one background computation.
type Request struct {
	// CurveID selects the curve; empty means the store's active curve.
	CurveID curve.ID

	Estimator baseline.Estimator

	ProtectPeaks bool
	PeakOptions  []peak.Option
	Fill         Fill

	// Smoother, if set, runs on the working copy after filling and before
	// estimation.
	Smoother smooth.Smoother
}

// Result is the outcome of a successful computation.
type Result struct {
	CurveID   curve.ID
	Method    baseline.Method
	Baseline  []float64
	Corrected []float64
	// Mask is nil unless peaks were protected.
	Mask []bool
}

// Engine computes baselines for curves held in a store.
type Engine struct {
	store *curve.Store
}

// New returns an engine bound to store.
func New(store *curve.Store) *Engine {
	return &Engine{store: store}
}

// Store returns the store the engine writes to.
func (e *Engine) Store() *curve.Store {
	return e.store
}

// Compute runs req and, on success, stores the new baseline on the curve.
// On any error the stored curve is left as it was. If the curve is changed
// in the store while the baseline is being computed, the result is
// discarded and curve.ErrConflict returned.
func (e *Engine) Compute(req Request) (Result, error) {
	if e.store == nil {
		return Result{}, ErrNoStore
	}
	if req.Estimator == nil {
		return Result{}, fmt.Errorf("%w: no estimator", baseline.ErrUnsupportedMethod)
	}

	c, err := e.resolve(req.CurveID)
	if err != nil {
		return Result{}, err
	}

	x, y := c.X(), c.Y()
	res, err := Separate(x, y, req)
	if err != nil {
		return Result{}, fmt.Errorf("background: curve %s: %w", c.ID(), err)
	}
	res.CurveID = c.ID()

	if err := e.store.SwapBaseline(c, res.Baseline); err != nil {
		return Result{}, err
	}
	return res, nil
}

// ComputeTag is Compute with the estimator chosen by a method tag such as
// "als" and configured by opts.
func (e *Engine) ComputeTag(id curve.ID, tag string, opts ...baseline.Option) (Result, error) {
	m, err := baseline.ParseMethod(tag)
	if err != nil {
		return Result{}, err
	}
	est, err := baseline.New(m, opts...)
	if err != nil {
		return Result{}, err
	}
	return e.Compute(Request{CurveID: id, Estimator: est})
}

func (e *Engine) resolve(id curve.ID) (*curve.Curve, error) {
	if id == "" {
		return e.store.Active()
	}
	c, ok := e.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", curve.ErrNotFound, id)
	}
	return c, nil
}

// Separate runs the masking, smoothing, estimation and subtraction steps on
// raw arrays without touching any store. CurveID is left empty.
func Separate(x, y []float64, req Request) (Result, error) {
	if req.Estimator == nil {
		return Result{}, fmt.Errorf("%w: no estimator", baseline.ErrUnsupportedMethod)
	}

	if _, ok := fillTags[req.Fill]; !ok {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownFill, req.Fill)
	}

	work := y
	var mask []bool

	if req.ProtectPeaks {
		mask = peak.Detect(y, req.PeakOptions...)

		var err error
		switch req.Fill {
		case FillInterpolate:
			work, err = peak.FillByInterpolation(x, y, mask)
		case FillMinimum:
			work, err = peak.ApplyMask(y, mask)
		}
		if err != nil {
			return Result{}, fmt.Errorf("peak protection: %w", err)
		}
	}

	if req.Smoother != nil {
		smoothed, err := req.Smoother.Smooth(work)
		if err != nil {
			return Result{}, fmt.Errorf("pre-smoothing: %w", err)
		}
		work = smoothed
	}

	b, err := req.Estimator.Estimate(x, work)
	if err != nil {
		return Result{}, fmt.Errorf("%v baseline: %w", req.Estimator.Method(), err)
	}
	if len(b) != len(y) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthChanged, len(b), len(y))
	}

	corrected := make([]float64, len(y))
	floats.SubTo(corrected, y, b)

	return Result{
		Method:    req.Estimator.Method(),
		Baseline:  b,
		Corrected: corrected,
		Mask:      mask,
	}, nil
}
