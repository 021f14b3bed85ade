package kcluster

import (
	"testing"

	"github.com/hupe1980/kcluster/centroid"
	"github.com/hupe1980/kcluster/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.K)
	assert.Equal(t, VariantFuzzy, cfg.Variant)
	assert.Equal(t, 0.8, cfg.PivotRate)
	assert.Equal(t, centroid.Ring, cfg.Strategy)
	assert.Equal(t, 300, cfg.MaxIterations)
	assert.Zero(t, cfg.GoalDiff)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
k: 3
variant: pivot
pivot_rate: 0.6
strategy: random
max_iterations: 50
goal_diff: 0.001
seed: 7
`))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.K)
	assert.Equal(t, VariantPivot, cfg.Variant)
	assert.Equal(t, 0.6, cfg.PivotRate)
	assert.Equal(t, centroid.Random, cfg.Strategy)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 0.001, cfg.GoalDiff)
	assert.Equal(t, int64(7), cfg.Seed)
	// untouched fields keep their defaults
	assert.Equal(t, 1, cfg.Workers)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("variant: kmeans\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("k: 0\n"))
	var ic *ErrInvalidConfig
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, "k", ic.Field)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = ParseConfig([]byte("k: [\n"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"K", func(c *Config) { c.K = -1 }, "k"},
		{"Variant", func(c *Config) { c.Variant = Variant(5) }, "variant"},
		{"PivotRate", func(c *Config) { c.Variant = VariantPivot; c.PivotRate = 1 }, "pivot_rate"},
		{"Strategy", func(c *Config) { c.Strategy = centroid.Strategy(5) }, "strategy"},
		{"MaxIterations", func(c *Config) { c.MaxIterations = -1 }, "max_iterations"},
		{"GoalDiff", func(c *Config) { c.GoalDiff = -0.5 }, "goal_diff"},
		{"Workers", func(c *Config) { c.Workers = -2 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var ic *ErrInvalidConfig
			require.ErrorAs(t, err, &ic)
			assert.Equal(t, tt.field, ic.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	// the pivot rate only matters for the pivot variant
	cfg := DefaultConfig()
	cfg.PivotRate = 0
	assert.NoError(t, cfg.Validate())
}

func TestConfigStepper(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 3

	s, err := cfg.Stepper()
	require.NoError(t, err)
	assert.Equal(t, &cluster.Fuzzy{Workers: 3}, s)

	cfg.Variant = VariantPivot
	s, err = cfg.Stepper()
	require.NoError(t, err)
	assert.Equal(t, &cluster.PivotThreshold{Rate: 0.8}, s)

	cfg.PivotRate = 0
	_, err = cfg.Stepper()
	assert.ErrorIs(t, err, ErrInvalidPivotRate)

	cfg.Variant = Variant(9)
	_, err = cfg.Stepper()
	assert.Error(t, err)
}

func TestVariant(t *testing.T) {
	for _, name := range []string{"fuzzy", "FCM", " fuzzy "} {
		v, err := ParseVariant(name)
		require.NoError(t, err)
		assert.Equal(t, VariantFuzzy, v)
	}

	v, err := ParseVariant("pivot-threshold")
	require.NoError(t, err)
	assert.Equal(t, VariantPivot, v)

	_, err = ParseVariant("dbscan")
	assert.Error(t, err)

	b, err := VariantPivot.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pivot", string(b))
	assert.Equal(t, "Unknown(7)", Variant(7).String())
}
