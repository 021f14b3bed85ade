package normalize

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/kcluster/vector"
)

var (
	// ErrEmpty is returned when normalizing an empty point set.
	ErrEmpty = errors.New("cannot normalize empty point set")

	// ErrZeroSpan is returned under RejectZeroSpan when an axis has no extent.
	ErrZeroSpan = errors.New("axis has zero span")

	// ErrNonFinite is returned when the input contains NaN or Inf.
	ErrNonFinite = errors.New("non-finite input point")
)

// ZeroSpanPolicy decides how an axis without extent is mapped.
type ZeroSpanPolicy int

const (
	// CollapseZeroSpan maps every coordinate of a zero-span axis to 0.
	CollapseZeroSpan ZeroSpanPolicy = iota
	// RejectZeroSpan fails with ErrZeroSpan.
	RejectZeroSpan
)

func (p ZeroSpanPolicy) String() string {
	switch p {
	case CollapseZeroSpan:
		return "collapse"
	case RejectZeroSpan:
		return "reject"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

type options struct {
	zeroSpan ZeroSpanPolicy
}

// Option configures normalization.
type Option func(*options)

// WithZeroSpanPolicy selects the zero-span handling.
func WithZeroSpanPolicy(p ZeroSpanPolicy) Option {
	return func(o *options) {
		o.zeroSpan = p
	}
}

// Bounds captures the affine map used by a normalization.
// A zero Span component marks a collapsed axis.
type Bounds struct {
	Min  vector.Vec2 `json:"min" yaml:"min"`
	Span vector.Vec2 `json:"span" yaml:"span"`
}

// Apply maps a point from source units into the normalized frame.
func (b Bounds) Apply(p vector.Vec2) vector.Vec2 {
	return vector.Vec2{
		X: scale(p.X, b.Min.X, b.Span.X),
		Y: scale(p.Y, b.Min.Y, b.Span.Y),
	}
}

// Invert maps a point from the normalized frame back into source units.
func (b Bounds) Invert(p vector.Vec2) vector.Vec2 {
	return vector.Vec2{
		X: b.Min.X + p.X*b.Span.X,
		Y: b.Min.Y + p.Y*b.Span.Y,
	}
}

// InvertAll maps every point back into source units.
func (b Bounds) InvertAll(points []vector.Vec2) []vector.Vec2 {
	out := make([]vector.Vec2, len(points))
	for i, p := range points {
		out[i] = b.Invert(p)
	}
	return out
}

func scale(v, lo, span float64) float64 {
	if span == 0 {
		return 0
	}
	return (v - lo) / span
}

// Fit derives the bounds of points without modifying them.
func Fit(points []vector.Vec2, optFns ...Option) (Bounds, error) {
	o := applyOptions(optFns)

	if i := vector.AllFinite(points); i >= 0 {
		return Bounds{}, fmt.Errorf("%w: index %d", ErrNonFinite, i)
	}

	lo, hi, err := vector.Bounds(points)
	if err != nil {
		return Bounds{}, ErrEmpty
	}

	// Finite extremes of opposite sign can still overflow the span.
	span := hi.Sub(lo)
	if math.IsInf(span.X, 0) {
		return Bounds{}, fmt.Errorf("%w: x span overflows", ErrNonFinite)
	}
	if math.IsInf(span.Y, 0) {
		return Bounds{}, fmt.Errorf("%w: y span overflows", ErrNonFinite)
	}

	if o.zeroSpan == RejectZeroSpan {
		if span.X == 0 {
			return Bounds{}, fmt.Errorf("%w: x", ErrZeroSpan)
		}
		if span.Y == 0 {
			return Bounds{}, fmt.Errorf("%w: y", ErrZeroSpan)
		}
	}

	return Bounds{Min: lo, Span: span}, nil
}

// InPlace normalizes points into the unit square, overwriting them.
// The input is left untouched on error.
func InPlace(points []vector.Vec2, optFns ...Option) (Bounds, error) {
	b, err := Fit(points, optFns...)
	if err != nil {
		return Bounds{}, err
	}

	for i, p := range points {
		points[i] = b.Apply(p)
	}

	return b, nil
}

// Copy returns a normalized copy of points.
func Copy(points []vector.Vec2, optFns ...Option) ([]vector.Vec2, Bounds, error) {
	dst := vector.Clone(points)
	b, err := InPlace(dst, optFns...)
	if err != nil {
		return nil, Bounds{}, err
	}
	return dst, b, nil
}

func applyOptions(optFns []Option) options {
	o := options{zeroSpan: CollapseZeroSpan}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
