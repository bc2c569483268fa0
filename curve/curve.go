// Package curve holds measured diffraction traces and the store that
// publishes changes to them.
//
// A [Curve] is an immutable snapshot: every derivation returns a new value.
// The [Store] swaps snapshots under a lock and notifies subscribers once
// per change, so observers never see a half-updated curve.
package curve

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xrd/dsp/core"
	"github.com/google/uuid"
)

var (
	ErrInvalidCurve   = errors.New("curve: x and y must have equal length >= 2")
	ErrLengthMismatch = errors.New("curve: baseline length differs from displayed data")
	ErrNotFound       = errors.New("curve: not found")
	ErrNonFinite      = errors.New("curve: samples must be finite")
	ErrConflict       = errors.New("curve: changed since it was read")
)

// ID identifies a curve for its whole lifetime. IDs are never reused.
type ID string

// Curve is one measured trace. Slices returned by accessors are copies.
type Curve struct {
	id       ID
	label    string
	rawX     []float64
	rawY     []float64
	x        []float64
	y        []float64
	baseline []float64
}

// New creates a curve from raw samples. The displayed data starts as a
// copy of the raw data and no baseline is set.
func New(x, y []float64, label string) (*Curve, error) {
	if err := checkSamples(x, y); err != nil {
		return nil, err
	}

	return &Curve{
		id:    ID(uuid.NewString()),
		label: label,
		rawX:  core.Clone(x),
		rawY:  core.Clone(y),
		x:     core.Clone(x),
		y:     core.Clone(y),
	}, nil
}

func (c *Curve) ID() ID            { return c.id }
func (c *Curve) Label() string     { return c.label }
func (c *Curve) Len() int          { return len(c.y) }
func (c *Curve) RawX() []float64   { return core.Clone(c.rawX) }
func (c *Curve) RawY() []float64   { return core.Clone(c.rawY) }
func (c *Curve) X() []float64      { return core.Clone(c.x) }
func (c *Curve) Y() []float64      { return core.Clone(c.y) }
func (c *Curve) HasBaseline() bool { return c.baseline != nil }

// Baseline returns the last computed baseline, or nil if none exists.
func (c *Curve) Baseline() []float64 { return core.Clone(c.baseline) }

// WithDisplayed returns a copy of c showing (x, y) instead of its current
// displayed data, e.g. after an upstream axis conversion. Any baseline is
// dropped because it no longer matches the samples.
func (c *Curve) WithDisplayed(x, y []float64) (*Curve, error) {
	if err := checkSamples(x, y); err != nil {
		return nil, err
	}

	next := *c
	next.x = core.Clone(x)
	next.y = core.Clone(y)
	next.baseline = nil
	return &next, nil
}

// WithLabel returns a copy of c with a new label.
func (c *Curve) WithLabel(label string) *Curve {
	next := *c
	next.label = label
	return &next
}

func checkSamples(x, y []float64) error {
	if len(x) != len(y) || len(x) < 2 {
		return fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrInvalidCurve, len(x), len(y))
	}
	if !core.AllFinite(x) || !core.AllFinite(y) {
		return fmt.Errorf("%w: NaN or Inf in x or y", ErrNonFinite)
	}
	return nil
}

func (c *Curve) withBaseline(b []float64) (*Curve, error) {
	if len(b) != len(c.y) {
		return nil, fmt.Errorf("%w: baseline %d, displayed %d", ErrLengthMismatch, len(b), len(c.y))
	}

	next := *c
	next.baseline = core.Clone(b)
	return &next, nil
}
