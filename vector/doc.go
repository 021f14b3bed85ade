// Package vector provides the 2-D point type used throughout kcluster.
//
// Vec2 is a plain value type. All arithmetic is componentwise and never
// mutates its receiver.
//
// # Reductions
//
// Min, Max and Bounds reduce each axis independently:
//
//	lo, hi, err := vector.Bounds(points)
//	// lo.X is the smallest X, lo.Y the smallest Y (possibly from different points)
//
// # Usage
//
//	d := vector.Distance(a, b)
//	mid := vector.Lerp(a, b, 0.5)
package vector
