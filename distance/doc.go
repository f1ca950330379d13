// Package distance provides point distance calculations over float64 slices.
//
// The kernels are backed by gonum's floats package.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean (L2) distance (default)
//   - MetricSquaredEuclidean: Squared Euclidean distance
//   - MetricManhattan: Manhattan (L1) distance
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	f, _ := distance.Provider(distance.MetricManhattan)
//	d, err := distance.Compute(distance.MetricEuclidean, a, b) // checks lengths
package distance
