package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/clusterkit/distance"
)

// Neighbor is a ground-truth nearest neighbour.
type Neighbor struct {
	Index    int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies kmeans.RandomSource.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates points with coordinates in range [minVal, maxVal).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dimensions int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)
	span := maxVal - minVal

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// Blobs generates perCenter points around each center with Gaussian noise of
// the given standard deviation. Points are grouped by center, in center order.
func (r *RNG) Blobs(centers [][]float64, perCenter int, stddev float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, 0, len(centers)*perCenter)
	for _, c := range centers {
		for range perCenter {
			p := make([]float64, len(c))
			for j := range c {
				p[j] = c[j] + r.rand.NormFloat64()*stddev
			}
			points = append(points, p)
		}
	}

	return points
}

// BlobLabels returns the label of every point generated by Blobs for the given labels.
func BlobLabels(labels []string, perCenter int) []string {
	out := make([]string, 0, len(labels)*perCenter)
	for _, l := range labels {
		for range perCenter {
			out = append(out, l)
		}
	}
	return out
}

// BruteForceNeighbors performs exact nearest neighbour search for ground truth.
// Ties are ordered by index.
func BruteForceNeighbors(points [][]float64, query []float64, k int) []Neighbor {
	results := make([]Neighbor, len(points))
	for i, p := range points {
		results[i] = Neighbor{Index: i, Distance: distance.Euclidean(query, p)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}

	return results
}

// SequenceSource replays a fixed list of values in [0, 1), cycling when it
// runs out. It scripts centroid placement in tests.
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource creates a SequenceSource. It panics if values is empty.
func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		panic("testutil: empty sequence")
	}
	return &SequenceSource{values: values}
}

// Float64 returns the next value of the sequence.
func (s *SequenceSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
