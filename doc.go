// Package clusterkit provides k-means clustering with automatic selection of
// the cluster count, plus KNN and naive Bayes baseline classifiers.
//
// # Quick Start
//
// Cluster a dataset into a fixed number of clusters:
//
//	ctx := context.Background()
//	sol, _ := clusterkit.Cluster(ctx, points, 3, clusterkit.WithSeed(42))
//	fmt.Println(sol.Centroids, sol.Error)
//
// Search k over [kMin, kMax) with several random restarts per k:
//
//	best, log, _ := clusterkit.AutoCluster(ctx, points, 1, 8, 5,
//	    clusterkit.WithSeed(42),
//	    clusterkit.WithConcurrency(4),
//	)
//
// The reported error shrinks as k grows, so AutoCluster favours the upper
// end of the range. Pick the range with that in mind.
//
// Classify a point by its nearest labelled neighbours:
//
//	p, _ := clusterkit.Classify(dataset.Labeled{Points: pts, Labels: lbls}, 3, query)
//
// # Packages
//
//   - kmeans: Solver and AutoSolver (Lloyd's algorithm, empty-cluster policies)
//   - knn: brute-force k-nearest-neighbour classifier
//   - bayes: naive Bayes text classifier
//   - dataset: validation, bounds and YAML/JSON loading
//   - distance: distance metrics
//   - observability: Prometheus metrics
//   - resource: worker slots shared between concurrent sweeps
//
// # Observability
//
// Every entry point accepts WithLogger (log/slog) and WithMetricsCollector.
// observability.PrometheusObserver implements MetricsCollector.
package clusterkit
