// Package interp provides piecewise-linear interpolation over sampled axes.
//
// A [Linear] interpolant is built once from control points and evaluated at
// arbitrary positions. Behaviour outside the control range is selected with
// an [Extrapolation] mode:
//
//   - [Clamp]:  hold the first/last control value (numpy interp style)
//   - [Extend]: continue the first/last segment linearly
//
// Evaluation at a control abscissa returns that control value exactly.
package interp
