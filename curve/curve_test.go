package curve

import (
	"errors"
	"math"
	"testing"
)

func TestNewCopiesAndValidates(t *testing.T) {
	x := []float64{10, 10.1, 10.2}
	y := []float64{5, 6, 7}

	c, err := New(x, y, "sample-A")
	if err != nil {
		t.Fatal(err)
	}
	x[0], y[0] = -1, -1

	if c.RawX()[0] != 10 || c.Y()[0] != 5 {
		t.Fatal("curve shares storage with caller slices")
	}
	if c.Label() != "sample-A" || c.Len() != 3 {
		t.Fatalf("label=%q len=%d", c.Label(), c.Len())
	}
	if c.HasBaseline() || c.Baseline() != nil {
		t.Fatal("new curve should not have a baseline")
	}
	if c.ID() == "" {
		t.Fatal("empty id")
	}
}

func TestNewRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{name: "mismatch", x: []float64{1, 2, 3}, y: []float64{1, 2}},
		{name: "single sample", x: []float64{1}, y: []float64{1}},
		{name: "empty", x: nil, y: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.x, tt.y, ""); !errors.Is(err, ErrInvalidCurve) {
				t.Fatalf("err = %v, want ErrInvalidCurve", err)
			}
		})
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		c, err := New([]float64{0, 1}, []float64{0, 1}, "")
		if err != nil {
			t.Fatal(err)
		}
		if seen[c.ID()] {
			t.Fatalf("duplicate id %s", c.ID())
		}
		seen[c.ID()] = true
	}
}

func TestDerivationsLeaveOriginalUntouched(t *testing.T) {
	c, err := New([]float64{0, 1, 2}, []float64{3, 4, 5}, "a")
	if err != nil {
		t.Fatal(err)
	}

	withB, err := c.withBaseline([]float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if c.HasBaseline() || !withB.HasBaseline() {
		t.Fatal("withBaseline must return a new snapshot")
	}

	shown, err := withB.WithDisplayed([]float64{1, 2}, []float64{9, 9})
	if err != nil {
		t.Fatal(err)
	}
	if shown.HasBaseline() {
		t.Fatal("WithDisplayed should drop a stale baseline")
	}
	if shown.ID() != c.ID() || len(shown.RawX()) != 3 {
		t.Fatal("WithDisplayed must keep identity and raw data")
	}
	if withB.Len() != 3 {
		t.Fatal("WithDisplayed modified its receiver")
	}

	if relabelled := c.WithLabel("b"); relabelled.Label() != "b" || c.Label() != "a" {
		t.Fatal("WithLabel modified its receiver")
	}
}

func TestWithBaselineLengthMismatch(t *testing.T) {
	c, err := New([]float64{0, 1, 2}, []float64{3, 4, 5}, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.withBaseline([]float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestNonFiniteSamplesRejected(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	if _, err := New([]float64{0, 1, 2}, []float64{1, nan, 3}, ""); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("NaN in y: err = %v, want ErrNonFinite", err)
	}
	if _, err := New([]float64{0, inf, 2}, []float64{1, 2, 3}, ""); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("Inf in x: err = %v, want ErrNonFinite", err)
	}

	c, err := New([]float64{0, 1, 2}, []float64{1, 2, 3}, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.WithDisplayed([]float64{0, 1, 2}, []float64{1, 2, -inf}); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("WithDisplayed: err = %v, want ErrNonFinite", err)
	}
}
