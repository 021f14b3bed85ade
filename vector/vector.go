package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmpty is returned by reductions over an empty point slice.
var ErrEmpty = errors.New("empty point set")

// Vec2 is a point (or displacement) in the plane.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// New returns the point (x, y).
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return Distance(v, o)
}

// IsFinite reports whether neither coordinate is NaN or ±Inf.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Distance calculates the Euclidean distance between a and b.
// Inputs must be finite (caller's responsibility).
func Distance(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp moves a toward b by the fraction t: a + (b-a)*t.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Min returns the per-axis minimum of points.
func Min(points []Vec2) (Vec2, error) {
	lo, _, err := Bounds(points)
	return lo, err
}

// Max returns the per-axis maximum of points.
func Max(points []Vec2) (Vec2, error) {
	_, hi, err := Bounds(points)
	return hi, err
}

// Bounds returns the per-axis minimum and maximum of points in one pass.
func Bounds(points []Vec2) (lo, hi Vec2, err error) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}, ErrEmpty
	}

	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}

	return lo, hi, nil
}

// Clone returns a copy of points.
func Clone(points []Vec2) []Vec2 {
	if points == nil {
		return nil
	}
	out := make([]Vec2, len(points))
	copy(out, points)
	return out
}

// AllFinite returns the index of the first non-finite point, or -1.
func AllFinite(points []Vec2) int {
	for i, p := range points {
		if !p.IsFinite() {
			return i
		}
	}
	return -1
}
