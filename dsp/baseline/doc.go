// Package baseline estimates the slowly varying background under a
// diffraction trace.
//
// Each algorithm is a variant implementing [Estimator]:
//
//   - [SNIP]:        iterative peak clipping
//   - [ALS]:         asymmetric least squares (Whittaker smoother with
//     asymmetric weights, solved as a banded system)
//   - [Poly]:        least-squares polynomial
//   - [ModPoly]:     polynomial refitted on points at or below the fit
//   - [RollingBall]: sliding minimum
//   - [Anchor]:      straight lines through user-picked points
//
// The variant set is closed; [New] builds one from a [Method] tag with
// defaults matching the tag's documented parameters. Estimators are pure:
// they never modify their inputs and always return a fresh slice of the
// input length.
package baseline
