package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/clusterkit/kmeans"
)

// Namespace prefixes every metric registered by PrometheusObserver.
const Namespace = "clusterkit"

// Compile time check to ensure PrometheusObserver satisfies kmeans.MetricsObserver.
var _ kmeans.MetricsObserver = (*PrometheusObserver)(nil)

// PrometheusObserver records solver and sweep metrics as Prometheus collectors.
type PrometheusObserver struct {
	opLatency   *prometheus.HistogramVec
	iterations  *prometheus.HistogramVec
	solves      *prometheus.CounterVec
	sweepTrials *prometheus.CounterVec
	classifies  *prometheus.CounterVec
}

// NewPrometheusObserver creates the collectors and registers them with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &PrometheusObserver{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of clustering and classification operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "status"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solve_iterations",
			Help:      "Iterations run by a single k-means solve",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}, []string{"converged"}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solves_total",
			Help:      "Total k-means solves by k and status",
		}, []string{"k", "status"}),
		sweepTrials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sweep_trials_total",
			Help:      "Total auto-solver trials by outcome",
		}, []string{"outcome"}),
		classifies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "classifications_total",
			Help:      "Total classifications by classifier and status",
		}, []string{"classifier", "status"}),
	}

	for _, c := range []prometheus.Collector{o.opLatency, o.iterations, o.solves, o.sweepTrials, o.classifies} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// OnSolve implements kmeans.MetricsObserver.
func (o *PrometheusObserver) OnSolve(k, iterations int, converged bool, d time.Duration, err error) {
	st := status(err)
	o.opLatency.WithLabelValues("solve", st).Observe(d.Seconds())
	o.solves.WithLabelValues(strconv.Itoa(k), st).Inc()
	if err == nil {
		label := "false"
		if converged {
			label = "true"
		}
		o.iterations.WithLabelValues(label).Observe(float64(iterations))
	}
}

// OnSweep implements kmeans.MetricsObserver.
func (o *PrometheusObserver) OnSweep(trials, failed int, d time.Duration, err error) {
	o.opLatency.WithLabelValues("sweep", status(err)).Observe(d.Seconds())
	o.sweepTrials.WithLabelValues("success").Add(float64(trials - failed))
	o.sweepTrials.WithLabelValues("failed").Add(float64(failed))
}

// OnClassify records a KNN or naive Bayes prediction.
func (o *PrometheusObserver) OnClassify(classifier string, d time.Duration, err error) {
	st := status(err)
	o.opLatency.WithLabelValues("classify", st).Observe(d.Seconds())
	o.classifies.WithLabelValues(classifier, st).Inc()
}

// RecordSolve forwards to OnSolve so the observer also serves as a
// clusterkit.MetricsCollector.
func (o *PrometheusObserver) RecordSolve(k, iterations int, converged bool, d time.Duration, err error) {
	o.OnSolve(k, iterations, converged, d, err)
}

// RecordSweep forwards to OnSweep.
func (o *PrometheusObserver) RecordSweep(trials, failed int, d time.Duration, err error) {
	o.OnSweep(trials, failed, d, err)
}

// RecordClassify records a KNN classification.
func (o *PrometheusObserver) RecordClassify(_ int, d time.Duration, err error) {
	o.OnClassify("knn", d, err)
}
