// Package background separates a stored diffraction curve into baseline
// and corrected signal.
//
// [Engine.Compute] runs one curve through the pipeline
//
//	optional peak mask -> fill -> optional smoothing -> estimator -> y - baseline
//
// and swaps the new baseline into the [curve.Store] in one step. It does no
// logging of its own. [Batch] fans Compute out over many curves with
// bounded parallelism, logging and metrics.
package background
