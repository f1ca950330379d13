package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive or exceeds the number of
	// distinct points in the dataset.
	ErrInvalidK = errors.New("invalid k")

	// ErrInvalidTrials is returned when the number of trials per k is not positive.
	ErrInvalidTrials = errors.New("maxTrials must be positive")

	// ErrInvalidIterations is returned when maxIterations is not positive.
	ErrInvalidIterations = errors.New("maxIterations must be positive")

	// ErrDegenerateCentroid is returned when a centroid loses all of its points
	// and the solver is configured with EmptyClusterFail.
	ErrDegenerateCentroid = errors.New("degenerate centroid")

	// ErrNoSolution is returned by AutoSolver.Solve when no trial produced a solution.
	ErrNoSolution = errors.New("no solution found")
)

// DegenerateCentroidError reports the centroid that lost all assigned points.
//
// It wraps ErrDegenerateCentroid.
type DegenerateCentroidError struct {
	Centroid  int
	Iteration int
}

func (e *DegenerateCentroidError) Error() string {
	return fmt.Sprintf("degenerate centroid: centroid %d has no points at iteration %d", e.Centroid, e.Iteration)
}

func (e *DegenerateCentroidError) Unwrap() error { return ErrDegenerateCentroid }

// TrialError wraps the failure of a single auto-solver trial.
//
// The original underlying error can be accessed via errors.Unwrap.
type TrialError struct {
	K     int
	Trial int
	Err   error
}

func (e *TrialError) Error() string {
	return fmt.Sprintf("trial %d for k=%d failed: %v", e.Trial, e.K, e.Err)
}

func (e *TrialError) Unwrap() error { return e.Err }
