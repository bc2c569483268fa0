package baseline

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-xrd/internal/testutil"
)

func TestSNIPNeverIncreasesAcrossIterations(t *testing.T) {
	p := testutil.XRDPattern(401, 2, 11)

	prev := p.Y
	for k := 1; k <= 40; k++ {
		b, err := SNIP{Iterations: k}.Estimate(nil, p.Y)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != len(p.Y) {
			t.Fatalf("len = %d, want %d", len(b), len(p.Y))
		}
		testutil.RequireAtMost(t, b, prev, 0)
		prev = b
	}
}

func TestSNIPKeepsEndpoints(t *testing.T) {
	y := []float64{7, 1, 9, 2, 8, 3, 6}

	b, err := SNIP{Iterations: 30}.Estimate(nil, y)
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != y[0] || b[len(b)-1] != y[len(y)-1] {
		t.Fatalf("endpoints changed: %v", b)
	}
}

func TestSNIPSingleIteration(t *testing.T) {
	y := []float64{0, 10, 0, 4, 4}

	b, err := SNIP{Iterations: 1}.Estimate(nil, y)
	if err != nil {
		t.Fatal(err)
	}
	// b[1] = min(10, 0), b[2] = min(0, 7), b[3] = min(4, 2); reads use the
	// pre-pass values.
	testutil.RequireSliceNearlyEqual(t, b, []float64{0, 0, 0, 2, 4}, 0)
}

func TestSNIPTracksBackground(t *testing.T) {
	p := testutil.XRDPattern(801, 0, 0)

	b, err := SNIP{Iterations: 30}.Estimate(nil, p.Y)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireAtMost(t, b, p.Y, 0)
	for i := 100; i < 700; i++ {
		if b[i] > p.Background[i]+5 {
			t.Fatalf("index %d: baseline %v well above background %v", i, b[i], p.Background[i])
		}
	}
}

func TestSNIPDoesNotModifyInput(t *testing.T) {
	y := []float64{0, 10, 0}
	if _, err := (SNIP{Iterations: 1}).Estimate(nil, y); err != nil {
		t.Fatal(err)
	}
	if y[1] != 10 {
		t.Fatal("input modified")
	}
}

func TestSNIPInvalidIterations(t *testing.T) {
	if _, err := (SNIP{Iterations: -1}).Estimate(nil, []float64{1, 2, 3}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}
