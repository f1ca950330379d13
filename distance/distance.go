package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the Euclidean (L2) distance between two points.
// Assumes points are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared Euclidean distance between two points.
// Assumes points are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// Manhattan calculates the L1 distance between two points.
// Assumes points are the same length (caller's responsibility).
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// ErrDimensionMismatch indicates that two points have different lengths.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Compute calculates the distance between a and b under m.
// Unlike the raw functions it checks that both points have the same length.
func Compute(m Metric, a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	f, err := Provider(m)
	if err != nil {
		return 0, err
	}

	return f(a, b), nil
}
