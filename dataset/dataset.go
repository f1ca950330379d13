package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidDataset is returned for empty datasets and datasets whose points
// do not share one non-zero dimensionality.
var ErrInvalidDataset = errors.New("invalid dataset")

// DimensionError reports a point whose length differs from the first point.
//
// It wraps ErrInvalidDataset.
type DimensionError struct {
	Index    int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dataset: point %d has dimension %d, expected %d", e.Index, e.Actual, e.Expected)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDataset }

// Range is the closed interval of values observed in one dimension.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Validate checks that points is non-empty, that every point has the
// dimensionality of the first one, that this dimensionality is positive and
// that all coordinates are finite.
func Validate(points [][]float64) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: no points", ErrInvalidDataset)
	}

	dim := len(points[0])
	if dim == 0 {
		return fmt.Errorf("%w: zero-dimensional points", ErrInvalidDataset)
	}

	for i, p := range points {
		if len(p) != dim {
			return &DimensionError{Index: i, Expected: dim, Actual: len(p)}
		}
		for d, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: point %d has non-finite value at dimension %d", ErrInvalidDataset, i, d)
			}
		}
	}

	return nil
}

// Dimension returns the dimensionality inferred from the first point.
// It returns 0 for an empty dataset.
func Dimension(points [][]float64) int {
	if len(points) == 0 {
		return 0
	}
	return len(points[0])
}

// Bounds returns the per-dimension [min, max] range over all points.
// Each dimension is computed independently. Callers must validate first.
func Bounds(points [][]float64) []Range {
	dim := Dimension(points)
	ranges := make([]Range, dim)

	for d := range dim {
		ranges[d] = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	}

	for _, p := range points {
		for d, v := range p {
			if v < ranges[d].Min {
				ranges[d].Min = v
			}
			if v > ranges[d].Max {
				ranges[d].Max = v
			}
		}
	}

	return ranges
}

// DistinctCount returns the number of distinct points.
// Two points are equal when all coordinates are equal (-0 equals +0).
func DistinctCount(points [][]float64) int {
	seen := make(map[string]struct{}, len(points))

	var buf []byte
	for _, p := range points {
		buf = buf[:0]
		for _, v := range p {
			if v == 0 {
				v = 0 // fold -0 onto +0
			}
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
		seen[string(buf)] = struct{}{}
	}

	return len(seen)
}

// Clone returns a deep copy of points.
func Clone(points [][]float64) [][]float64 {
	if points == nil {
		return nil
	}

	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = slices.Clone(p)
	}

	return out
}
