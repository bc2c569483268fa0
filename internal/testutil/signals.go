package testutil

import "github.com/cwbudde/algo-xrd/internal/synth"

// Pattern is a synthetic scan with its known background and peaks.
type Pattern = synth.Pattern

// XRDPattern forwards to synth.XRDPattern.
func XRDPattern(n int, noise float64, seed int64) Pattern {
	return synth.XRDPattern(n, noise, seed)
}

// Axis forwards to synth.Axis.
func Axis(start, step float64, n int) []float64 {
	return synth.Axis(start, step, n)
}

// DeterministicNoise returns seeded uniform noise of the given amplitude.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	return synth.Noise(seed, amplitude, length)
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Spikes returns a zero signal of the given length with height placed at
// each position.
func Spikes(length int, height float64, positions ...int) []float64 {
	out := make([]float64, length)
	for _, p := range positions {
		if p >= 0 && p < length {
			out[p] = height
		}
	}
	return out
}
