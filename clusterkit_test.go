package clusterkit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/knn"
	"github.com/hupe1980/clusterkit/observability"
	"github.com/hupe1980/clusterkit/resource"
)

var _ MetricsCollector = (*observability.PrometheusObserver)(nil)

func fourPoints() [][]float64 {
	return [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
}

func TestCluster(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	sol, err := Cluster(context.Background(), fourPoints(), 4, WithSeed(1), WithMetricsCollector(metrics))
	require.NoError(t, err)

	assert.True(t, sol.DidReachSteadyState)
	assert.InDelta(t, 0, sol.Error, 1e-12)
	assert.Len(t, sol.Centroids, 4)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.SolveCount)
	assert.Equal(t, int64(1), stats.SolveConverged)
	assert.Equal(t, int64(0), stats.SolveErrors)
}

func TestClusterErrors(t *testing.T) {
	tests := []struct {
		name string
		data [][]float64
		k    int
		opts []Option
		want error
	}{
		{"EmptyDataset", nil, 1, nil, ErrInvalidDataset},
		{"InvalidK", fourPoints(), 0, nil, ErrInvalidK},
		{"KExceedsDistinct", fourPoints(), 5, nil, ErrInvalidK},
		{"InvalidIterations", fourPoints(), 2, []Option{WithMaxIterations(0)}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cluster(context.Background(), tt.data, tt.k, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClusterKeepsCause(t *testing.T) {
	_, err := Cluster(context.Background(), nil, 1)

	assert.ErrorIs(t, err, ErrInvalidDataset)
	assert.ErrorIs(t, err, dataset.ErrInvalidDataset)
}

func TestClusterDegenerateCentroid(t *testing.T) {
	// With three centroids on two well separated pairs the middle centroid
	// usually ends up without points. Try seeds until it does.
	for seed := range int64(100) {
		_, err := Cluster(context.Background(), fourPoints(), 3,
			WithSeed(seed),
			WithEmptyClusterPolicy(kmeans.EmptyClusterFail),
		)
		if err == nil {
			continue
		}

		assert.ErrorIs(t, err, ErrDegenerateCentroid)
		assert.ErrorIs(t, err, kmeans.ErrDegenerateCentroid)

		var dce *kmeans.DegenerateCentroidError
		assert.ErrorAs(t, err, &dce)
		return
	}

	t.Fatal("no seed produced an empty cluster")
}

func TestAutoCluster(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	best, log, err := AutoCluster(context.Background(), fourPoints(), 1, 4, 3,
		WithSeed(7),
		WithConcurrency(3),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.Len(t, log, 9)

	for _, entry := range log {
		assert.LessOrEqual(t, best.Error, entry.Error)
	}
	t.Logf("best k=%d trial=%d error=%g", best.K, best.Trial, best.Error)

	stats := metrics.GetStats()
	assert.Equal(t, int64(9), stats.SolveCount)
	assert.Equal(t, int64(1), stats.SweepCount)
	assert.Equal(t, int64(9), stats.SweepTrials)
}

func TestAutoClusterErrors(t *testing.T) {
	_, _, err := AutoCluster(context.Background(), fourPoints(), 3, 3, 2)
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.ErrorIs(t, err, kmeans.ErrNoSolution)

	_, _, err = AutoCluster(context.Background(), fourPoints(), 1, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = AutoCluster(context.Background(), [][]float64{{1, 2}, {3}}, 1, 3, 1)
	assert.ErrorIs(t, err, ErrInvalidDataset)

	// k=5 and k=6 exceed the four distinct points.
	_, log, err := AutoCluster(context.Background(), fourPoints(), 3, 7, 1, WithSeed(1))
	assert.ErrorIs(t, err, ErrInvalidK)
	var te *kmeans.TrialError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 5, te.K)
	assert.Len(t, log, 2)

	best, log, err := AutoCluster(context.Background(), fourPoints(), 3, 7, 1, WithSeed(1), WithSkipFailedTrials(true))
	require.NoError(t, err)
	assert.NotNil(t, best)
	assert.Len(t, log, 2)
}

func TestAutoClusterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := AutoCluster(ctx, fourPoints(), 1, 4, 2, WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAutoClusterResourceController(t *testing.T) {
	rc := resource.NewController(resource.Config{MaxWorkers: 2})

	_, log, err := AutoCluster(context.Background(), fourPoints(), 1, 3, 2,
		WithSeed(1),
		WithConcurrency(4),
		WithResourceController(rc),
	)
	require.NoError(t, err)
	assert.Len(t, log, 4)
	assert.Equal(t, int64(0), rc.Active())
}

func TestClassify(t *testing.T) {
	train := dataset.Labeled{
		Points: fourPoints(),
		Labels: []string{"low", "high", "low", "high"},
	}
	metrics := &BasicMetricsCollector{}

	p, err := Classify(train, 1, []float64{9, 0.9}, WithMetricsCollector(metrics))
	require.NoError(t, err)
	assert.Equal(t, "high", p.Label)

	p, err = Classify(train, 1, []float64{9, 0.1}, WithMetric(distance.MetricManhattan))
	require.NoError(t, err)
	assert.Equal(t, "low", p.Label)

	_, err = Classify(train, 1, []float64{1, 2, 3}, WithMetricsCollector(metrics))
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)

	var inner *distance.ErrDimensionMismatch
	assert.ErrorAs(t, err, &inner)

	_, err = Classify(train, 0, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidK)
	assert.ErrorIs(t, err, knn.ErrInvalidK)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ClassifyCount)
	assert.Equal(t, int64(1), stats.ClassifyErrors)
}

func TestNewTextClassifier(t *testing.T) {
	c := NewTextClassifier()
	c.Train("spam", "cheap pills")

	p, err := c.Predict("cheap pills")
	require.NoError(t, err)
	assert.Equal(t, "spam", p.Label)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Cluster(context.Background(), fourPoints(), 2, WithSeed(1), WithLogger(logger.WithCount(4)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "cluster completed")
	assert.Contains(t, out, `"count":4`)
	assert.Contains(t, out, "kmeans iteration")

	buf.Reset()
	logger.WithTrial(1).WithDimension(2).LogClassify(context.Background(), 3, "", errors.New("boom"))
	assert.Contains(t, buf.String(), "classify failed")
	assert.Contains(t, buf.String(), `"trial":1`)

	buf.Reset()
	logger.LogSweep(context.Background(), 1, 4, 9, 3, nil)
	assert.Contains(t, buf.String(), `"best_k":3`)

	assert.NotNil(t, NoopLogger())
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := observability.NewPrometheusObserver(reg)
	require.NoError(t, err)

	_, err = Cluster(context.Background(), fourPoints(), 2, WithSeed(1), WithMetricsCollector(obs))
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilOptions(t *testing.T) {
	_, err := Cluster(context.Background(), fourPoints(), 2, nil, WithLogger(nil), WithMetricsCollector(nil))
	assert.NoError(t, err)
}
