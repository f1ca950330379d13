package clusterkit

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/clusterkit/kmeans"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus;
// observability.PrometheusObserver satisfies it.
type MetricsCollector interface {
	// RecordSolve is called after every k-means solve, including each trial
	// of an automatic sweep.
	RecordSolve(k, iterations int, converged bool, duration time.Duration, err error)

	// RecordSweep is called after each automatic sweep. trials counts the
	// finished trials, failed the skipped ones among them.
	RecordSweep(trials, failed int, duration time.Duration, err error)

	// RecordClassify is called after each KNN classification.
	RecordClassify(k int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordSweep(int, int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordClassify(int, time.Duration, error)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount         atomic.Int64
	SolveErrors        atomic.Int64
	SolveConverged     atomic.Int64
	SolveIterations    atomic.Int64
	SolveTotalNanos    atomic.Int64
	SweepCount         atomic.Int64
	SweepErrors        atomic.Int64
	SweepTrials        atomic.Int64
	SweepFailed        atomic.Int64
	ClassifyCount      atomic.Int64
	ClassifyErrors     atomic.Int64
	ClassifyTotalNanos atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(k, iterations int, converged bool, duration time.Duration, err error) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SolveErrors.Add(1)
		return
	}
	b.SolveIterations.Add(int64(iterations))
	if converged {
		b.SolveConverged.Add(1)
	}
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(trials, failed int, duration time.Duration, err error) {
	b.SweepCount.Add(1)
	b.SweepTrials.Add(int64(trials))
	b.SweepFailed.Add(int64(failed))
	if err != nil {
		b.SweepErrors.Add(1)
	}
}

// RecordClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassify(k int, duration time.Duration, err error) {
	b.ClassifyCount.Add(1)
	b.ClassifyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClassifyErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:       b.SolveCount.Load(),
		SolveErrors:      b.SolveErrors.Load(),
		SolveConverged:   b.SolveConverged.Load(),
		SolveIterations:  b.SolveIterations.Load(),
		SolveAvgNanos:    avg(b.SolveTotalNanos.Load(), b.SolveCount.Load()),
		SweepCount:       b.SweepCount.Load(),
		SweepErrors:      b.SweepErrors.Load(),
		SweepTrials:      b.SweepTrials.Load(),
		SweepFailed:      b.SweepFailed.Load(),
		ClassifyCount:    b.ClassifyCount.Load(),
		ClassifyErrors:   b.ClassifyErrors.Load(),
		ClassifyAvgNanos: avg(b.ClassifyTotalNanos.Load(), b.ClassifyCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SolveCount       int64
	SolveErrors      int64
	SolveConverged   int64
	SolveIterations  int64
	SolveAvgNanos    int64
	SweepCount       int64
	SweepErrors      int64
	SweepTrials      int64
	SweepFailed      int64
	ClassifyCount    int64
	ClassifyErrors   int64
	ClassifyAvgNanos int64
}

// collectorObserver feeds kmeans solver events into a MetricsCollector.
type collectorObserver struct {
	mc MetricsCollector
}

func (o collectorObserver) OnSolve(k, iterations int, converged bool, d time.Duration, err error) {
	o.mc.RecordSolve(k, iterations, converged, d, err)
}

func (o collectorObserver) OnSweep(trials, failed int, d time.Duration, err error) {
	o.mc.RecordSweep(trials, failed, d, err)
}

var _ kmeans.MetricsObserver = collectorObserver{}
