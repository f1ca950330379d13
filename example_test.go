package clusterkit_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/dataset"
)

var points = [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

// Example_cluster demonstrates clustering with a fixed k.
func Example_cluster() {
	sol, err := clusterkit.Cluster(context.Background(), points, 2, clusterkit.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(sol.Centroids), sol.DidReachSteadyState)
	// Output: 2 true
}

// Example_autoCluster demonstrates the sweep over k.
func Example_autoCluster() {
	best, trials, err := clusterkit.AutoCluster(context.Background(), points, 1, 4, 3,
		clusterkit.WithSeed(42),
		clusterkit.WithConcurrency(2),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(trials), best.Error <= trials[0].Error)
	// Output: 9 true
}

// Example_classify demonstrates KNN classification.
func Example_classify() {
	train := dataset.Labeled{
		Points: points,
		Labels: []string{"left", "left", "right", "right"},
	}

	p, err := clusterkit.Classify(train, 3, []float64{9, 0.5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.Label, p.VoteCounts["right"])
	// Output: right 2
}

// Example_metrics demonstrates the in-memory metrics collector.
func Example_metrics() {
	metrics := &clusterkit.BasicMetricsCollector{}

	_, _, err := clusterkit.AutoCluster(context.Background(), points, 1, 3, 2,
		clusterkit.WithSeed(1),
		clusterkit.WithMetricsCollector(metrics),
	)
	if err != nil {
		log.Fatal(err)
	}

	stats := metrics.GetStats()
	fmt.Println(stats.SolveCount, stats.SweepCount, stats.SweepTrials)
	// Output: 4 1 4
}
