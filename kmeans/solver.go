package kmeans

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
)

// DefaultMaxIterations is the iteration cap used when callers have no better bound.
const DefaultMaxIterations = 1000

// prepared is a validated dataset with the values every solver needs.
// It is computed once and shared read-only by all trials of a sweep.
type prepared struct {
	points   [][]float64
	bounds   []dataset.Range
	distinct int
}

func prepare(data [][]float64) (prepared, error) {
	if err := dataset.Validate(data); err != nil {
		return prepared{}, err
	}

	return prepared{
		points:   data,
		bounds:   dataset.Bounds(data),
		distinct: dataset.DistinctCount(data),
	}, nil
}

// Solver runs Lloyd's algorithm for a fixed k.
//
// A Solver is not safe for concurrent use.
type Solver struct {
	k      int
	data   [][]float64
	bounds []dataset.Range

	centroids   [][]float64
	assignments []int
	members     []*roaring.Bitmap

	iterations int
	errValue   float64
	log        []IterationLog
	done       bool

	opts options
}

// New creates a Solver for k clusters over data and places the initial
// centroids.
//
// data is referenced, not copied, and must not be modified while the
// solver is in use.
func New(k int, data [][]float64, optFns ...Option) (*Solver, error) {
	p, err := prepare(data)
	if err != nil {
		return nil, err
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.source = solverSource(opts)

	return newSolver(k, p, opts)
}

func newSolver(k int, p prepared, opts options) (*Solver, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidK, k)
	}
	if k > p.distinct {
		return nil, fmt.Errorf("%w: k=%d exceeds %d distinct points", ErrInvalidK, k, p.distinct)
	}

	dim := len(p.bounds)
	s := &Solver{
		k:           k,
		data:        p.points,
		bounds:      p.bounds,
		centroids:   make([][]float64, k),
		assignments: make([]int, len(p.points)),
		members:     make([]*roaring.Bitmap, k),
		opts:        opts,
	}

	backing := make([]float64, k*dim)
	for c := range k {
		s.centroids[c] = backing[c*dim : (c+1)*dim : (c+1)*dim]
		s.members[c] = roaring.New()
	}

	s.Reset()

	return s, nil
}

// Reset clears the error, iteration count, log and assignments and draws
// new centroids. Every coordinate is drawn uniformly from the [min, max)
// range of its dimension over the dataset.
func (s *Solver) Reset() {
	s.errValue = 0
	s.iterations = 0
	s.log = nil
	s.done = false

	for i := range s.assignments {
		s.assignments[i] = -1
	}
	for _, m := range s.members {
		m.Clear()
	}
	for _, c := range s.centroids {
		s.randomize(c)
	}
}

func (s *Solver) randomize(dst []float64) {
	for d, r := range s.bounds {
		dst[d] = r.Min + s.opts.source.Float64()*r.Span()
	}
}

// nearest returns the index of the closest centroid and the distance to it.
// Ties go to the lowest index.
func (s *Solver) nearest(p []float64) (int, float64) {
	best := 0
	minDist := math.Inf(1)

	for c, centroid := range s.centroids {
		if d := distance.Euclidean(p, centroid); d < minDist {
			minDist = d
			best = c
		}
	}

	return best, minDist
}

// AssignPointsToCentroids assigns every point to its nearest centroid and
// reports whether any assignment differs from the previous pass. Points
// without a previous assignment count as changed.
func (s *Solver) AssignPointsToCentroids() bool {
	changed := false

	for _, m := range s.members {
		m.Clear()
	}

	for i, p := range s.data {
		c, _ := s.nearest(p)
		if s.assignments[i] != c {
			s.assignments[i] = c
			changed = true
		}
		s.members[c].Add(uint32(i))
	}

	return changed
}

// UpdateCentroidLocations moves every centroid to the mean of its assigned
// points. Centroids without points are handled by the EmptyClusterPolicy;
// their indices are returned.
func (s *Solver) UpdateCentroidLocations() ([]int, error) {
	var empty []int

	for c, m := range s.members {
		if m.IsEmpty() {
			empty = append(empty, c)
			continue
		}

		centroid := s.centroids[c]
		clear(centroid)

		it := m.Iterator()
		for it.HasNext() {
			floats.Add(centroid, s.data[it.Next()])
		}
		floats.Scale(1/float64(m.GetCardinality()), centroid)
	}

	if len(empty) == 0 {
		return nil, nil
	}

	if err := s.reseed(empty); err != nil {
		return nil, err
	}

	return empty, nil
}

// CalculateError returns the root-mean-square distance between each point
// and its assigned centroid and stores it as the current error.
// Points that were never assigned are measured against their nearest centroid.
func (s *Solver) CalculateError() float64 {
	var sum float64

	for i, p := range s.data {
		var d float64
		if c := s.assignments[i]; c >= 0 {
			d = distance.Euclidean(p, s.centroids[c])
		} else {
			_, d = s.nearest(p)
		}
		sum += d * d
	}

	s.errValue = math.Sqrt(sum / float64(len(s.data)))

	return s.errValue
}

// Solve iterates assign → update → error until no assignment changes or
// maxIterations iterations have run, and returns the last IterationLog.
//
// A solver that already finished is re-initialized with Reset first.
// ctx is checked before every iteration.
func (s *Solver) Solve(ctx context.Context, maxIterations int) (IterationLog, error) {
	if maxIterations <= 0 {
		return IterationLog{}, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIterations)
	}

	if s.done {
		s.Reset()
	}

	start := time.Now()
	sol, err := s.solve(ctx, maxIterations)
	s.opts.observer.OnSolve(s.k, len(s.log), sol.DidReachSteadyState, time.Since(start), err)

	return sol, err
}

func (s *Solver) solve(ctx context.Context, maxIterations int) (IterationLog, error) {
	defer func() { s.done = true }()

	for s.iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			return IterationLog{}, err
		}

		changed := s.AssignPointsToCentroids()

		reseeded, err := s.UpdateCentroidLocations()
		if err != nil {
			return IterationLog{}, err
		}

		s.CalculateError()

		entry := IterationLog{
			Iteration:           s.iterations,
			Centroids:           dataset.Clone(s.centroids),
			Error:               s.errValue,
			DidReachSteadyState: !changed && len(reseeded) == 0,
			Reseeded:            reseeded,
		}
		s.log = append(s.log, entry)

		s.opts.logger.Debug("kmeans iteration",
			"k", s.k,
			"iteration", entry.Iteration,
			"error", entry.Error,
			"changed", changed,
			"reseeded", len(reseeded),
		)

		if entry.DidReachSteadyState {
			break
		}

		s.iterations++
	}

	return s.log[len(s.log)-1].Clone(), nil
}

// K returns the number of clusters.
func (s *Solver) K() int { return s.k }

// Error returns the error computed by the last CalculateError call.
func (s *Solver) Error() float64 { return s.errValue }

// Iterations returns the number of iterations logged since the last Reset.
func (s *Solver) Iterations() int { return len(s.log) }

// Centroids returns a copy of the current centroids.
func (s *Solver) Centroids() [][]float64 { return dataset.Clone(s.centroids) }

// Assignments returns a copy of the current point-to-centroid assignments.
// Unassigned points are -1.
func (s *Solver) Assignments() []int { return slices.Clone(s.assignments) }

// Members returns the indices of the points assigned to centroid c.
// The returned bitmap is a copy.
func (s *Solver) Members(c int) *roaring.Bitmap {
	if c < 0 || c >= s.k {
		return roaring.New()
	}
	return s.members[c].Clone()
}

// Log returns a copy of the iteration log.
func (s *Solver) Log() []IterationLog {
	out := make([]IterationLog, len(s.log))
	for i, l := range s.log {
		out[i] = l.Clone()
	}
	return out
}
