// Package kmeans implements k-means clustering with Lloyd's algorithm and an
// automatic search over the number of clusters.
//
// # Solver
//
// A Solver clusters a dataset into a fixed number k of clusters:
//
//	s, _ := kmeans.New(3, points, kmeans.WithSeed(42))
//	sol, _ := s.Solve(ctx, kmeans.DefaultMaxIterations)
//	fmt.Println(sol.Centroids, sol.Error, sol.DidReachSteadyState)
//
// Centroids start at uniformly random positions inside the per-dimension
// bounds of the data. Every iteration assigns each point to its nearest
// centroid (Euclidean distance), moves each centroid to the mean of its
// points and records the root-mean-square point-to-centroid distance in an
// IterationLog. The loop stops when no assignment changes (steady state) or
// after maxIterations iterations.
//
// Centroids that lose all of their points are handled by the
// EmptyClusterPolicy: moved to the farthest point (default), redrawn at
// random, or reported as a *DegenerateCentroidError.
//
// # AutoSolver
//
// An AutoSolver sweeps k over [kMin, kMax) and runs maxTrials fresh solvers
// per k, keeping the solution with the lowest error:
//
//	a, _ := kmeans.NewAutoSolver(1, 5, 5, points, kmeans.WithSeed(7), kmeans.WithConcurrency(4))
//	best, err := a.Solve(ctx, kmeans.DefaultMaxIterations)
//
// The error decreases as k grows, so the selected k is biased towards the
// upper end of the range.
//
// Trials can run concurrently (WithConcurrency). With WithSeed every trial
// draws from its own stream derived from (seed, k, trial), so a sweep gives
// the same result at any concurrency level.
package kmeans
