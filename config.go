package kcluster

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/kcluster/centroid"
	"github.com/hupe1980/kcluster/cluster"
)

// Defaults for Config.
const (
	DefaultK             = 2
	DefaultMaxIterations = 300
	DefaultGoalDiff      = 0.0
)

// Variant selects the relocation strategy.
type Variant int

const (
	// VariantFuzzy selects Fuzzy C-Means (cluster.Fuzzy).
	VariantFuzzy Variant = iota
	// VariantPivot selects the pivot-threshold update (cluster.PivotThreshold).
	VariantPivot
)

func (v Variant) String() string {
	switch v {
	case VariantFuzzy:
		return "fuzzy"
	case VariantPivot:
		return "pivot"
	default:
		return fmt.Sprintf("Unknown(%d)", int(v))
	}
}

// ParseVariant maps a variant name to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fuzzy", "fcm":
		return VariantFuzzy, nil
	case "pivot", "pivot-threshold":
		return VariantPivot, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Config describes a complete clustering run.
type Config struct {
	K             int               `yaml:"k"`
	Variant       Variant           `yaml:"variant"`
	PivotRate     float64           `yaml:"pivot_rate"`
	Strategy      centroid.Strategy `yaml:"strategy"`
	MaxIterations int               `yaml:"max_iterations"`
	GoalDiff      float64           `yaml:"goal_diff"`
	// Workers bounds parallel centroid updates for the fuzzy variant.
	Workers int `yaml:"workers"`
	// Seed feeds the random source of centroid.Random.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{
		K:             DefaultK,
		Variant:       VariantFuzzy,
		PivotRate:     cluster.DefaultPivotRate,
		Strategy:      centroid.Ring,
		MaxIterations: DefaultMaxIterations,
		GoalDiff:      DefaultGoalDiff,
		Workers:       1,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if c.K < 1 {
		return &ErrInvalidConfig{Field: "k", Value: c.K, cause: ErrInvalidK}
	}
	if c.Variant != VariantFuzzy && c.Variant != VariantPivot {
		return &ErrInvalidConfig{Field: "variant", Value: c.Variant}
	}
	if c.Variant == VariantPivot && !(c.PivotRate > 0 && c.PivotRate < 1) {
		return &ErrInvalidConfig{Field: "pivot_rate", Value: c.PivotRate, cause: ErrInvalidPivotRate}
	}
	if c.Strategy != centroid.Ring && c.Strategy != centroid.Random {
		return &ErrInvalidConfig{Field: "strategy", Value: c.Strategy}
	}
	if c.MaxIterations < 0 {
		return &ErrInvalidConfig{Field: "max_iterations", Value: c.MaxIterations, cause: ErrInvalidMaxIterations}
	}
	if math.IsNaN(c.GoalDiff) || c.GoalDiff < 0 {
		return &ErrInvalidConfig{Field: "goal_diff", Value: c.GoalDiff}
	}
	if c.Workers < 0 {
		return &ErrInvalidConfig{Field: "workers", Value: c.Workers}
	}
	return nil
}

// Stepper builds the relocation step selected by the config.
func (c Config) Stepper() (cluster.Stepper, error) {
	switch c.Variant {
	case VariantFuzzy:
		return &cluster.Fuzzy{Workers: c.Workers}, nil
	case VariantPivot:
		p, err := cluster.NewPivotThreshold(c.PivotRate)
		if err != nil {
			return nil, translateError(err)
		}
		return p, nil
	default:
		return nil, &ErrInvalidConfig{Field: "variant", Value: c.Variant}
	}
}
