package kmeans

import (
	"fmt"
	"math"

	"github.com/hupe1980/clusterkit/distance"
)

// EmptyClusterPolicy decides what happens to a centroid that has no
// assigned points after an assignment pass.
type EmptyClusterPolicy int

const (
	// EmptyClusterFarthestPoint moves the centroid onto the point farthest
	// from every placed centroid. This is the default.
	EmptyClusterFarthestPoint EmptyClusterPolicy = iota
	// EmptyClusterRandom redraws the centroid uniformly within the dataset bounds.
	EmptyClusterRandom
	// EmptyClusterFail aborts the solve with a *DegenerateCentroidError.
	EmptyClusterFail
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterFarthestPoint:
		return "FarthestPoint"
	case EmptyClusterRandom:
		return "Random"
	case EmptyClusterFail:
		return "Fail"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// reseed relocates the empty centroids according to the configured policy.
// Centroids of non-empty clusters must already be updated.
func (s *Solver) reseed(empty []int) error {
	switch s.opts.emptyCluster {
	case EmptyClusterFail:
		return &DegenerateCentroidError{Centroid: empty[0], Iteration: s.iterations}
	case EmptyClusterRandom:
		for _, c := range empty {
			s.randomize(s.centroids[c])
		}
	default:
		placed := make([]int, 0, len(empty))
		for _, c := range empty {
			idx := s.farthestPoint(placed)
			if idx < 0 {
				s.randomize(s.centroids[c])
			} else {
				copy(s.centroids[c], s.data[idx])
			}
			placed = append(placed, c)
		}
	}

	return nil
}

// farthestPoint returns the index of the point with the largest distance to
// the nearer of its assigned centroid and the centroids placed so far in
// this round, or -1 if every point sits on such a centroid.
func (s *Solver) farthestPoint(placed []int) int {
	best := -1
	bestDist := 0.0

	for i, p := range s.data {
		var d float64
		if a := s.assignments[i]; a >= 0 {
			d = distance.Euclidean(p, s.centroids[a])
		} else {
			_, d = s.nearest(p)
		}
		for _, c := range placed {
			d = math.Min(d, distance.Euclidean(p, s.centroids[c]))
		}
		if d > bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
