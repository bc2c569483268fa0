package baseline

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-xrd/internal/testutil"
)

func TestAnchorExactness(t *testing.T) {
	x := testutil.Axis(0, 1, 21)
	y := make([]float64, len(x))

	est := Anchor{Anchors: []Point{{20, 15}, {0, 5}, {10, 5}}}
	b, err := est.Estimate(x, y)
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		i    int
		want float64
	}{
		{0, 5}, {5, 5}, {10, 5}, {15, 10}, {20, 15},
	} {
		if b[tc.i] != tc.want {
			t.Fatalf("baseline(%d) = %v, want %v", tc.i, b[tc.i], tc.want)
		}
	}
}

func TestAnchorExtrapolatesLinearly(t *testing.T) {
	x := []float64{-2, 0, 4, 6}
	est := Anchor{Anchors: []Point{{0, 0}, {4, 8}}}

	b, err := est.Estimate(x, make([]float64, len(x)))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, b, []float64{-4, 0, 8, 12}, 1e-12)
}

func TestAnchorErrors(t *testing.T) {
	y := make([]float64, 4)

	if _, err := (Anchor{Anchors: []Point{{1, 1}}}).Estimate(nil, y); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if _, err := (Anchor{Anchors: []Point{{1, 1}, {1, 2}}}).Estimate(nil, y); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}
