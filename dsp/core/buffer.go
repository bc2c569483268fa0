// Package core holds slice and numeric helpers shared by the dsp packages.
package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Clone returns a copy of src. A nil src yields nil.
func Clone(src []float64) []float64 {
	if src == nil {
		return nil
	}
	return append(make([]float64, 0, len(src)), src...)
}

// Indices returns [0, 1, ..., n-1] as float64 sample positions.
// It stands in for an x axis when a caller only has intensities.
func Indices(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Select returns the values of src at positions where keep is true.
// keep must have the same length as src.
func Select(src []float64, keep []bool) []float64 {
	out := make([]float64, 0, len(src))
	for i, k := range keep {
		if k {
			out = append(out, src[i])
		}
	}
	return out
}
