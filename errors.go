package clusterkit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/knn"
)

var (
	// ErrInvalidDataset is returned when the dataset is empty, ragged,
	// zero-dimensional or contains NaN or Inf values.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrInvalidK is returned when k is not positive or exceeds the number of
	// distinct points.
	ErrInvalidK = errors.New("invalid k")

	// ErrInvalidArgument is returned for a non-positive iteration or trial count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateCentroid is returned when a centroid loses all of its points
	// under kmeans.EmptyClusterFail.
	ErrDegenerateCentroid = errors.New("degenerate centroid")

	// ErrNoSolution is returned when an automatic sweep produced no solution.
	ErrNoSolution = errors.New("no solution found")
)

// ErrDimensionMismatch indicates a query/dataset dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// An empty sweep may also carry the per-trial causes.
	if errors.Is(err, kmeans.ErrNoSolution) {
		return fmt.Errorf("%w: %w", ErrNoSolution, err)
	}

	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	switch {
	case errors.Is(err, dataset.ErrInvalidDataset):
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	case errors.Is(err, kmeans.ErrInvalidK), errors.Is(err, knn.ErrInvalidK):
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	case errors.Is(err, kmeans.ErrInvalidIterations), errors.Is(err, kmeans.ErrInvalidTrials):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	case errors.Is(err, kmeans.ErrDegenerateCentroid):
		return fmt.Errorf("%w: %w", ErrDegenerateCentroid, err)
	}

	return err
}
