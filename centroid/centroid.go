package centroid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/kcluster/vector"
)

var (
	// ErrInvalidK is returned when the centroid count is not positive.
	ErrInvalidK = errors.New("centroid count must be positive")

	// ErrNilSource is returned when Random is requested without a Source.
	ErrNilSource = errors.New("random strategy requires a source")
)

// Source supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Strategy selects how centroids are placed.
type Strategy int

const (
	// Ring places centroids evenly on a circle inside the unit square.
	Ring Strategy = iota
	// Random draws centroids uniformly from the unit square.
	Random
)

func (s Strategy) String() string {
	switch s {
	case Ring:
		return "ring"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to a Strategy.
// "improved" is accepted as an alias for ring.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ring", "improved":
		return Ring, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("unknown centroid strategy %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Initialize returns k fresh centroids placed by strategy.
// src is only consulted by Random and may be nil for Ring.
func Initialize(strategy Strategy, k int, src Source) ([]vector.Vec2, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}

	switch strategy {
	case Ring:
		return NewRing(k), nil
	case Random:
		if src == nil {
			return nil, ErrNilSource
		}
		return NewRandom(k, src), nil
	default:
		return nil, fmt.Errorf("unknown centroid strategy: %v", strategy)
	}
}

// NewRing places k centroids at angle i*2π/k on the circle of radius 0.5
// around (0.5, 0.5). The first centroid sits at (0.5, 1).
func NewRing(k int) []vector.Vec2 {
	centroids := make([]vector.Vec2, k)
	for i := range centroids {
		theta := float64(i) * 2 * math.Pi / float64(k)
		centroids[i] = vector.Vec2{
			X: math.Sin(theta)*0.5 + 0.5,
			Y: math.Cos(theta)*0.5 + 0.5,
		}
	}
	return centroids
}

// NewRandom draws k centroids from src, x before y for each centroid.
func NewRandom(k int, src Source) []vector.Vec2 {
	centroids := make([]vector.Vec2, k)
	for i := range centroids {
		x := src.Float64()
		y := src.Float64()
		centroids[i] = vector.Vec2{X: x, Y: y}
	}
	return centroids
}
