package smooth

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-xrd/internal/polyfit"
	"gonum.org/v1/gonum/mat"
)

// fftThreshold is the window length from which the interior convolution
// runs through an FFT instead of the direct sum.
const fftThreshold = 64

// SavGol smooths y by fitting a polynomial of order polyOrder to each
// window-length neighbourhood and taking its value at the centre.
//
// The first and last window/2 samples are evaluated from a single
// polynomial fitted to the first and last window respectively.
func SavGol(y []float64, window, polyOrder int) ([]float64, error) {
	if !validWindow(window, len(y)) {
		return nil, fmt.Errorf("%w: window=%d len=%d", ErrInvalidWindow, window, len(y))
	}
	if polyOrder < 0 || polyOrder >= window {
		return nil, fmt.Errorf("%w: order=%d window=%d", ErrInvalidPolyOrder, polyOrder, window)
	}

	coeffs, err := SavGolCoefficients(window, polyOrder)
	if err != nil {
		return nil, err
	}

	n := len(y)
	half := window / 2
	out := make([]float64, n)

	if window >= fftThreshold {
		if err := convolveValidFFT(out[half:n-half], y, coeffs); err != nil {
			return nil, err
		}
	} else {
		convolveValidDirect(out[half:n-half], y, coeffs)
	}

	if err := fitEdge(out, y, 0, window, polyOrder, 0, half); err != nil {
		return nil, err
	}
	if err := fitEdge(out, y, n-window, window, polyOrder, n-half, n); err != nil {
		return nil, err
	}
	return out, nil
}

// SavGolCoefficients returns the smoothing weights for a centred window.
// They solve c = A (AᵀA)⁻¹ e₀ for the Vandermonde matrix A of the window
// positions, which are scaled to [-1, 1] for conditioning.
func SavGolCoefficients(window, polyOrder int) ([]float64, error) {
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("%w: window=%d", ErrInvalidWindow, window)
	}
	if polyOrder < 0 || polyOrder >= window {
		return nil, fmt.Errorf("%w: order=%d window=%d", ErrInvalidPolyOrder, polyOrder, window)
	}

	half := window / 2
	scale := float64(half)
	if scale == 0 {
		scale = 1
	}

	cols := polyOrder + 1
	a := mat.NewDense(window, cols, nil)
	for i := 0; i < window; i++ {
		t := float64(i-half) / scale
		v := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, v)
			v *= t
		}
	}

	var ata mat.SymDense
	ata.SymOuterK(1, a.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(&ata); !ok {
		return nil, fmt.Errorf("%w: normal equations not positive definite", ErrInvalidPolyOrder)
	}

	e0 := mat.NewVecDense(cols, nil)
	e0.SetVec(0, 1)

	var g mat.VecDense
	if err := chol.SolveVecTo(&g, e0); err != nil {
		return nil, fmt.Errorf("smooth: savgol coefficients: %w", err)
	}

	var c mat.VecDense
	c.MulVec(a, &g)

	out := make([]float64, window)
	for i := range out {
		out[i] = c.AtVec(i)
	}
	return out, nil
}

// convolveValidDirect writes dst[i] = Σ c[j]·y[i+j] for every full overlap.
func convolveValidDirect(dst, y, c []float64) {
	for i := range dst {
		var acc float64
		for j, w := range c {
			acc += w * y[i+j]
		}
		dst[i] = acc
	}
}

// convolveValidFFT computes the same result as convolveValidDirect through
// a zero-padded FFT. c is symmetric, so convolution equals correlation.
func convolveValidFFT(dst, y, c []float64) error {
	n, m := len(y), len(c)
	size := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	yPad := make([]complex128, size)
	cPad := make([]complex128, size)
	for i, v := range y {
		yPad[i] = complex(v, 0)
	}
	for i, v := range c {
		cPad[i] = complex(v, 0)
	}

	yFreq := make([]complex128, size)
	cFreq := make([]complex128, size)
	if err := plan.Forward(yFreq, yPad); err != nil {
		return fmt.Errorf("smooth: forward FFT failed: %w", err)
	}
	if err := plan.Forward(cFreq, cPad); err != nil {
		return fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	for i := range yFreq {
		yFreq[i] *= cFreq[i]
	}

	full := make([]complex128, size)
	if err := plan.Inverse(full, yFreq); err != nil {
		return fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(full[i+m-1])
	}
	return nil
}

// fitEdge fills out[lo:hi] from a polynomial fitted to y[start:start+window].
func fitEdge(out, y []float64, start, window, polyOrder, lo, hi int) error {
	if lo >= hi {
		return nil
	}

	pos := make([]float64, window)
	for i := range pos {
		pos[i] = float64(start + i)
	}

	p, err := polyfit.Fit(pos, y[start:start+window], polyOrder)
	if err != nil {
		return fmt.Errorf("smooth: savgol edge fit: %w", err)
	}
	for i := lo; i < hi; i++ {
		out[i] = p.At(float64(i))
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
