package kmeans

import (
	"log/slog"

	"github.com/hupe1980/clusterkit/resource"
)

type options struct {
	source        RandomSource
	seed          int64
	seeded        bool
	sourceFactory func(k, trial int) RandomSource
	emptyCluster  EmptyClusterPolicy
	logger        *slog.Logger
	observer      MetricsObserver
	concurrency   int
	skipFailed    bool
	resources     *resource.Controller
}

func defaultOptions() options {
	return options{
		emptyCluster: EmptyClusterFarthestPoint,
		logger:       slog.New(slog.DiscardHandler),
		observer:     NoopMetricsObserver{},
		concurrency:  1,
	}
}

// Option configures a Solver or an AutoSolver.
type Option func(*options)

// WithRandSource sets the random source used to place centroids.
//
// For a Solver it takes precedence over WithSeed. An AutoSolver draws every
// trial from this single source; with WithConcurrency > 1 the draws are
// serialized, so the assignment of numbers to trials depends on scheduling.
// Use WithSeed or WithSourceFactory for reproducible parallel sweeps.
func WithRandSource(src RandomSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeed seeds the random source.
//
// An AutoSolver derives an independent source for every (k, trial) pair
// from the seed, so results are identical for any concurrency level.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSourceFactory sets the function an AutoSolver calls to obtain the
// random source of each trial. It takes precedence over every other
// randomness option. Ignored by a plain Solver.
func WithSourceFactory(fn func(k, trial int) RandomSource) Option {
	return func(o *options) {
		o.sourceFactory = fn
	}
}

// WithEmptyClusterPolicy sets how centroids that lose all of their points are handled.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithMetricsObserver sets the metrics observer. If nil is passed, a no-op
// observer is used.
func WithMetricsObserver(obs MetricsObserver) Option {
	return func(o *options) {
		if obs == nil {
			obs = NoopMetricsObserver{}
		}
		o.observer = obs
	}
}

// WithConcurrency sets how many trials an AutoSolver runs at the same time.
// Values below 1 are treated as 1 (strictly sequential, the default).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// WithSkipFailedTrials makes an AutoSolver record failing trials and continue
// the sweep instead of aborting on the first failure.
func WithSkipFailedTrials(skip bool) Option {
	return func(o *options) {
		o.skipFailed = skip
	}
}

// WithResourceController shares worker slots between several AutoSolvers.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}
