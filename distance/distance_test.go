package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{0, 0}, []float64{3, 4}, 5},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Negative", []float64{-1, -1}, []float64{2, 3}, 5},
		{"Single", []float64{2}, []float64{-3}, 5},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Euclidean(tt.a, tt.b), 1e-12)
			// Symmetric
			assert.InDelta(t, tt.expected, Euclidean(tt.b, tt.a), 1e-12)
		})
	}
}

func TestSquaredEuclidean(t *testing.T) {
	assert.InDelta(t, 27.0, SquaredEuclidean([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-9)
	assert.InDelta(t, 8.0, SquaredEuclidean([]float64{1, -1}, []float64{-1, 1}), 1e-9)
	assert.Equal(t, 0.0, SquaredEuclidean([]float64{1, 1}, []float64{1, 1}))
}

func TestManhattan(t *testing.T) {
	assert.InDelta(t, 7.0, Manhattan([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.InDelta(t, 4.0, Manhattan([]float64{1, -1}, []float64{-1, 1}), 1e-12)
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Euclidean", MetricEuclidean.String())
		assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
		assert.Equal(t, "Manhattan", MetricManhattan.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider(MetricEuclidean)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, f([]float64{0, 0}, []float64{3, 4}), 1e-12)

		f, err = Provider(MetricSquaredEuclidean)
		require.NoError(t, err)
		assert.InDelta(t, 25.0, f([]float64{0, 0}, []float64{3, 4}), 1e-9)

		f, err = Provider(MetricManhattan)
		require.NoError(t, err)
		assert.InDelta(t, 7.0, f([]float64{0, 0}, []float64{3, 4}), 1e-12)

		_, err = Provider(Metric(99))
		assert.Error(t, err)
	})
}

func TestCompute(t *testing.T) {
	d, err := Compute(MetricEuclidean, []float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	_, err = Compute(MetricEuclidean, []float64{0, 0}, []float64{1, 2, 3})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
	assert.EqualError(t, err, "dimension mismatch: expected 2, got 3")

	_, err = Compute(Metric(42), []float64{0}, []float64{1})
	assert.Error(t, err)
}
