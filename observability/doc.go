// Package observability exports clusterkit metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	obs, _ := observability.NewPrometheusObserver(reg)
//	a, _ := kmeans.NewAutoSolver(1, 8, 5, points, kmeans.WithMetricsObserver(obs))
//
// Serve reg with promhttp.HandlerFor to expose the metrics.
package observability
