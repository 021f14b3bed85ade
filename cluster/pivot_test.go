package cluster

import (
	"context"
	"math"
	"testing"

	"github.com/hupe1980/kcluster/testutil"
	"github.com/hupe1980/kcluster/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() []vector.Vec2 {
	return []vector.Vec2{
		vector.New(0, 0),
		vector.New(1, 0),
		vector.New(0, 1),
		vector.New(1, 1),
	}
}

func TestNewPivotThreshold(t *testing.T) {
	for _, rate := range []float64{0.01, 0.5, DefaultPivotRate, 0.99} {
		p, err := NewPivotThreshold(rate)
		require.NoError(t, err)
		assert.Equal(t, rate, p.Rate)
	}

	for _, rate := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err := NewPivotThreshold(rate)
		assert.ErrorIs(t, err, ErrInvalidPivotRate)
	}
}

func TestPivotThreshold_SequentialNudge(t *testing.T) {
	ctx := context.Background()
	p := &PivotThreshold{Rate: 0.01}

	centroids := []vector.Vec2{vector.New(0, 0)}
	moved, err := p.Step(ctx, unitSquare(), centroids)
	require.NoError(t, err)

	// Influences: √2, √2-1, √2-1, 0. Pivot is the smallest weight (0), so
	// the three nearer points pull in index order.
	w := (math.Sqrt2 - 1) / (3*math.Sqrt2 - 2)
	want := vector.New(w*(1-w), w)

	assert.InDelta(t, want.X, centroids[0].X, 1e-12)
	assert.InDelta(t, want.Y, centroids[0].Y, 1e-12)
	assert.InDelta(t, vector.Distance(want, vector.New(0, 0)), moved, 1e-12)

	// A simultaneous update would land on (w, w).
	assert.NotEqual(t, centroids[0].X, centroids[0].Y)
}

func TestPivotThreshold_PivotIsExclusive(t *testing.T) {
	ctx := context.Background()
	p := &PivotThreshold{Rate: 0.5}

	// floor(4*0.5) = 2 picks one of the two equal middle weights, so only
	// the point under the centroid (no pull) survives.
	centroids := []vector.Vec2{vector.New(0, 0)}
	moved, err := p.Step(ctx, unitSquare(), centroids)
	require.NoError(t, err)
	assert.Equal(t, vector.New(0, 0), centroids[0])
	assert.Zero(t, moved)
}

func TestPivotThreshold_Equidistant(t *testing.T) {
	ctx := context.Background()
	p := &PivotThreshold{Rate: DefaultPivotRate}

	centroids := []vector.Vec2{vector.New(0.5, 0.5)}
	moved, err := p.Step(ctx, unitSquare(), centroids)
	require.NoError(t, err)
	assert.Equal(t, vector.New(0.5, 0.5), centroids[0])
	assert.Zero(t, moved)

	// single point: max distance equals the distance
	single := []vector.Vec2{vector.New(0.2, 0.3)}
	centroids = []vector.Vec2{vector.New(0.9, 0.9), vector.New(0.2, 0.3)}
	moved, err = p.Step(ctx, single, centroids)
	require.NoError(t, err)
	assert.Zero(t, moved)
	assert.Equal(t, -1, vector.AllFinite(centroids))
}

func TestPivotThreshold_MovesTowardData(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(11)
	p := &PivotThreshold{Rate: DefaultPivotRate}

	data, _ := rng.SeparatedBlobs(50, []vector.Vec2{vector.New(0.2, 0.2), vector.New(0.8, 0.8)}, 0.05)
	centroids := []vector.Vec2{vector.New(0, 0), vector.New(1, 1)}
	before := vector.Clone(centroids)

	moved, err := p.Step(ctx, data, centroids)
	require.NoError(t, err)
	assert.Greater(t, moved, 0.0)

	assert.Less(t, vector.Distance(centroids[0], vector.New(0.2, 0.2)), vector.Distance(before[0], vector.New(0.2, 0.2)))
	assert.Less(t, vector.Distance(centroids[1], vector.New(0.8, 0.8)), vector.Distance(before[1], vector.New(0.8, 0.8)))
}

func TestPivotThreshold_DoesNotMutateData(t *testing.T) {
	ctx := context.Background()
	data := unitSquare()
	centroids := []vector.Vec2{vector.New(0.1, 0.1), vector.New(0.9, 0.7)}

	_, err := (&PivotThreshold{Rate: 0.3}).Step(ctx, data, centroids)
	require.NoError(t, err)
	assert.Equal(t, unitSquare(), data)
}

func TestPivotThreshold_Errors(t *testing.T) {
	ctx := context.Background()
	p := &PivotThreshold{Rate: DefaultPivotRate}

	_, err := p.Step(ctx, nil, []vector.Vec2{vector.New(0, 0)})
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = p.Step(ctx, unitSquare(), nil)
	assert.ErrorIs(t, err, ErrNoCentroids)

	_, err = (&PivotThreshold{}).Step(ctx, unitSquare(), []vector.Vec2{vector.New(0, 0)})
	assert.ErrorIs(t, err, ErrInvalidPivotRate)

	centroids := []vector.Vec2{vector.New(0, 0)}
	_, err = p.Step(ctx, []vector.Vec2{vector.New(math.Inf(1), 0)}, centroids)
	var nf *NonFiniteError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "input", nf.Stage)
	assert.ErrorIs(t, err, ErrNonFinite)
	assert.Equal(t, vector.New(0, 0), centroids[0])

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Step(cctx, unitSquare(), centroids)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPivotThreshold_Name(t *testing.T) {
	var s Stepper = &PivotThreshold{Rate: DefaultPivotRate}
	assert.Equal(t, "pivot", s.Name())
}
