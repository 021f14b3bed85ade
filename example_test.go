package kcluster_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/centroid"
	"github.com/hupe1980/kcluster/cluster"
	"github.com/hupe1980/kcluster/testutil"
	"github.com/hupe1980/kcluster/vector"
)

func ExampleClusterer_StepOnce() {
	ctx := context.Background()

	data := []vector.Vec2{
		vector.New(0, 0), vector.New(1, 0),
		vector.New(0, 1), vector.New(1, 1),
	}
	centroids, _ := kcluster.InitializeCentroids(centroid.Ring, 2, nil)

	c, _ := kcluster.New(&cluster.Fuzzy{})
	moved, _ := c.StepOnce(ctx, data, centroids)

	fmt.Printf("moved %.4f\n", moved)
	for _, p := range centroids {
		fmt.Printf("(%.4f, %.4f)\n", p.X, p.Y)
	}

	// Output:
	// moved 0.0385
	// (0.5000, 0.9615)
	// (0.5000, 0.0385)
}

func ExampleRun() {
	rng := testutil.NewRNG(1)
	points, _ := rng.SeparatedBlobs(50, []vector.Vec2{
		vector.New(0, 0),
		vector.New(10, 0),
		vector.New(5, 10),
	}, 0.5)

	cfg := kcluster.DefaultConfig()
	cfg.K = 3
	cfg.GoalDiff = 1e-9

	res, err := kcluster.Run(context.Background(), points, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Sizes())

	// Output:
	// [50 50 50]
}
