// Package smooth provides stateless noise-reduction filters for intensity
// traces: Savitzky-Golay polynomial smoothing and sliding median.
//
// Both filters return a new slice of the input length and never modify
// their input. The [Smoother] interface lets callers plug either filter in
// as a pre-processing step.
package smooth
