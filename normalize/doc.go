// Package normalize rescales a 2-D point set into the unit square using
// per-axis min-max normalization.
//
// Normalization must run exactly once per clustering run, before any
// centroid is placed. Re-normalizing already normalized data re-derives the
// bounds and shifts the coordinate frame under existing centroids.
//
// # Zero span
//
// When every point shares the same coordinate on an axis the span of that
// axis is zero. CollapseZeroSpan (the default) maps that axis to 0;
// RejectZeroSpan returns ErrZeroSpan instead.
package normalize
