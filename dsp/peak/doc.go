// Package peak locates diffraction peaks in a sampled intensity trace and
// builds protection masks from them.
//
// [Find] returns local maxima filtered by absolute height, minimum spacing
// and prominence. [Detect] widens each surviving peak into a protected
// window, yielding a boolean mask with one entry per sample.
//
// Masked samples can then be neutralised before baseline estimation:
//
//   - [ApplyMask]:           replace with the minimum unmasked intensity
//   - [FillByInterpolation]: bridge with straight lines between unmasked samples
//
// Neither fill modifies its input.
package peak
