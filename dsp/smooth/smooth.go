package smooth

import "errors"

var (
	ErrInvalidWindow    = errors.New("smooth: window must be odd, positive and no longer than the signal")
	ErrInvalidPolyOrder = errors.New("smooth: polynomial order must be >= 0 and below the window length")
)

// Smoother is a stateless signal-to-signal filter.
type Smoother interface {
	Smooth(y []float64) ([]float64, error)
}

// SavGolSmoother adapts SavGol to the Smoother interface.
type SavGolSmoother struct {
	Window    int
	PolyOrder int
}

// Smooth implements Smoother.
func (s SavGolSmoother) Smooth(y []float64) ([]float64, error) {
	return SavGol(y, s.Window, s.PolyOrder)
}

// MedianSmoother adapts Median to the Smoother interface.
type MedianSmoother struct {
	KernelSize int
}

// Smooth implements Smoother.
func (s MedianSmoother) Smooth(y []float64) ([]float64, error) {
	return Median(y, s.KernelSize)
}

func validWindow(window, n int) bool {
	return window >= 1 && window%2 == 1 && window <= n
}
