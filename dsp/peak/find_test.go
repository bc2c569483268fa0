package peak

import (
	"testing"

	"github.com/cwbudde/algo-xrd/internal/testutil"
)

func TestFindSingleSpike(t *testing.T) {
	y := []float64{0, 0, 0, 10, 0, 0, 0}

	peaks := Find(y, WithProminence(5), WithDistance(1))
	if len(peaks) != 1 {
		t.Fatalf("len(peaks) = %d, want 1", len(peaks))
	}
	if p := peaks[0]; p.Index != 3 || p.Height != 10 || p.Prominence != 10 {
		t.Fatalf("peak = %+v, want index 3 height 10 prominence 10", p)
	}
}

func TestFindPlateauMidpoint(t *testing.T) {
	y := []float64{0, 1, 5, 5, 5, 5, 1, 0}

	peaks := Find(y, WithProminence(0))
	if len(peaks) != 1 || peaks[0].Index != 3 {
		t.Fatalf("peaks = %+v, want single peak at 3", peaks)
	}
}

func TestFindIgnoresEdges(t *testing.T) {
	// Boundary samples never qualify as local maxima.
	y := []float64{9, 1, 1, 1, 9}
	if peaks := Find(y, WithProminence(0)); len(peaks) != 0 {
		t.Fatalf("peaks = %+v, want none", peaks)
	}
}

func TestFindProminenceUsesHigherValley(t *testing.T) {
	// Peak at 3 has valleys 2 (left) and 6 (right, bounded by taller peak at 6).
	y := []float64{0, 2, 2, 8, 6, 6, 20, 0}

	peaks := Find(y, WithProminence(0), WithDistance(1))
	if len(peaks) != 2 {
		t.Fatalf("len(peaks) = %d, want 2", len(peaks))
	}
	if peaks[0].Index != 3 || peaks[0].Prominence != 2 {
		t.Fatalf("first peak = %+v, want index 3 prominence 2", peaks[0])
	}
	if peaks[1].Index != 6 || peaks[1].Prominence != 20 {
		t.Fatalf("second peak = %+v, want index 6 prominence 20", peaks[1])
	}

	strict := Find(y, WithProminence(5), WithDistance(1))
	if len(strict) != 1 || strict[0].Index != 6 {
		t.Fatalf("strict = %+v, want only index 6", strict)
	}
}

func TestFindHeightThreshold(t *testing.T) {
	y := []float64{0, 4, 0, 12, 0, 7, 0}

	peaks := Find(y, WithHeight(5), WithProminence(0), WithDistance(1))
	if len(peaks) != 2 || peaks[0].Index != 3 || peaks[1].Index != 5 {
		t.Fatalf("peaks = %+v, want indices 3 and 5", peaks)
	}
}

func TestFindDistanceKeepsTallest(t *testing.T) {
	y := []float64{0, 5, 0, 9, 0, 6, 0, 0, 0, 0, 4, 0}

	peaks := Find(y, WithProminence(0), WithDistance(4))

	got := make([]int, len(peaks))
	for i, p := range peaks {
		got[i] = p.Index
	}
	if len(got) != 2 || got[0] != 3 || got[1] != 10 {
		t.Fatalf("indices = %v, want [3 10]", got)
	}
}

func TestFindDefaultProminence(t *testing.T) {
	p := testutil.XRDPattern(801, 0, 0)

	peaks := Find(p.Y)
	if len(peaks) != 5 {
		t.Fatalf("found %d peaks, want 5 reflections", len(peaks))
	}
}

func TestFindInvalidOptionsKeepDefaults(t *testing.T) {
	cfg := applyOptions([]Option{WithDistance(0), WithWidth(-1), WithProminence(-3), nil})
	if cfg != defaultConfig() {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, defaultConfig())
	}
}
