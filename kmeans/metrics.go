package kmeans

import "time"

// MetricsObserver observes solver and sweep events.
//
// The AutoSolver may run trials concurrently, so implementations must be
// safe for concurrent use.
type MetricsObserver interface {
	// OnSolve is called when a Solver finishes, successfully or not.
	// iterations is the number of log entries produced.
	OnSolve(k, iterations int, converged bool, duration time.Duration, err error)

	// OnSweep is called when an AutoSolver sweep finishes.
	OnSweep(trials, failed int, duration time.Duration, err error)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnSolve(int, int, bool, time.Duration, error) {}
func (NoopMetricsObserver) OnSweep(int, int, time.Duration, error)       {}
