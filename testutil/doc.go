// Package testutil provides testing utilities for clusterkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random datasets, scripting the random
// source of a solver, and computing exact nearest neighbours.
//
// # Random Dataset Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(100, 2, 0, 10)
//	blobs := rng.Blobs([][]float64{{0, 0}, {10, 10}}, 50, 0.5)
//
// # Scripted Randomness
//
//	src := testutil.NewSequenceSource(0.01, 0.5, 0.99, 0.5)
//	s, _ := kmeans.New(2, points, kmeans.WithRandSource(src))
//
// # Exact Search (Ground Truth)
//
//	neighbors := testutil.BruteForceNeighbors(points, query, k)
package testutil
