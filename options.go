package clusterkit

import (
	"log/slog"

	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	seed             int64
	seeded           bool
	maxIterations    int
	concurrency      int
	emptyCluster     kmeans.EmptyClusterPolicy
	skipFailed       bool
	metric           distance.Metric
	resources        *resource.Controller
}

// Option configures Cluster, AutoCluster and Classify.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &clusterkit.BasicMetricsCollector{}
//	_, _ = clusterkit.Cluster(ctx, points, 3, clusterkit.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Solves: %d, Avg latency: %dns\n", stats.SolveCount, stats.SolveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := clusterkit.NewJSONLogger(slog.LevelInfo)
//	_, _ = clusterkit.Cluster(ctx, points, 3, clusterkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSeed makes centroid placement reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMaxIterations caps the iterations of every solve.
// Defaults to kmeans.DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithConcurrency sets how many AutoCluster trials run at the same time.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithEmptyClusterPolicy sets how centroids that lose all of their points are handled.
func WithEmptyClusterPolicy(p kmeans.EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

// WithSkipFailedTrials makes AutoCluster continue past failing trials.
func WithSkipFailedTrials(skip bool) Option {
	return func(o *options) {
		o.skipFailed = skip
	}
}

// WithMetric sets the distance metric used by Classify.
// Clustering always uses Euclidean distance.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithResourceController bounds the trials running across several
// AutoCluster calls.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxIterations:    kmeans.DefaultMaxIterations,
		concurrency:      1,
		emptyCluster:     kmeans.EmptyClusterFarthestPoint,
		metric:           distance.MetricEuclidean,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o options) kmeansOptions() []kmeans.Option {
	opts := []kmeans.Option{
		kmeans.WithLogger(o.logger.Logger),
		kmeans.WithMetricsObserver(collectorObserver{mc: o.metricsCollector}),
		kmeans.WithConcurrency(o.concurrency),
		kmeans.WithEmptyClusterPolicy(o.emptyCluster),
		kmeans.WithSkipFailedTrials(o.skipFailed),
		kmeans.WithResourceController(o.resources),
	}
	if o.seeded {
		opts = append(opts, kmeans.WithSeed(o.seed))
	}
	return opts
}
