package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		points  [][]float64
		wantErr bool
	}{
		{"Valid", [][]float64{{0, 0}, {1, 1}}, false},
		{"SinglePoint", [][]float64{{3}}, false},
		{"Nil", nil, true},
		{"Empty", [][]float64{}, true},
		{"ZeroDimension", [][]float64{{}, {}}, true},
		{"Ragged", [][]float64{{0, 0}, {1}}, true},
		{"NaN", [][]float64{{0, math.NaN()}}, true},
		{"Inf", [][]float64{{math.Inf(1), 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.points)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDataset)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("DimensionError", func(t *testing.T) {
		err := Validate([][]float64{{0, 0}, {1, 1}, {2, 2, 2}})
		var de *DimensionError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 2, de.Index)
		assert.Equal(t, 2, de.Expected)
		assert.Equal(t, 3, de.Actual)
	})
}

func TestBounds(t *testing.T) {
	points := [][]float64{{0, 5}, {10, -1}, {3, 2}}

	b := Bounds(points)
	require.Len(t, b, 2)
	assert.Equal(t, Range{Min: 0, Max: 10}, b[0])
	assert.Equal(t, Range{Min: -1, Max: 5}, b[1])
	assert.Equal(t, 10.0, b[0].Span())

	assert.Empty(t, Bounds(nil))
}

func TestDistinctCount(t *testing.T) {
	assert.Equal(t, 0, DistinctCount(nil))
	assert.Equal(t, 4, DistinctCount([][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}))
	assert.Equal(t, 2, DistinctCount([][]float64{{1, 2}, {1, 2}, {2, 1}}))
	assert.Equal(t, 1, DistinctCount([][]float64{{0}, {math.Copysign(0, -1)}}))
}

func TestClone(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	dst := Clone(src)
	assert.Equal(t, src, dst)

	dst[0][0] = 99
	assert.Equal(t, 1.0, src[0][0])

	assert.Nil(t, Clone(nil))
}

func TestLabeled(t *testing.T) {
	l := Labeled{Points: [][]float64{{0}, {1}}, Labels: []string{"a", "b"}}
	assert.NoError(t, l.Validate())
	assert.Equal(t, 2, l.Len())

	l.Labels = l.Labels[:1]
	assert.ErrorIs(t, l.Validate(), ErrInvalidDataset)

	assert.ErrorIs(t, Labeled{}.Validate(), ErrInvalidDataset)
}

func TestDecode(t *testing.T) {
	t.Run("Sequence", func(t *testing.T) {
		points, err := Decode(strings.NewReader("- [0, 0]\n- [0, 1]\n- [10, 0]\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{0, 0}, {0, 1}, {10, 0}}, points)
	})

	t.Run("JSON", func(t *testing.T) {
		points, err := Decode(strings.NewReader(`{"points": [[1.5, 2], [3, 4]]}`))
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1.5, 2}, {3, 4}}, points)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrInvalidDataset)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		_, err := Decode(strings.NewReader("[]"))
		assert.ErrorIs(t, err, ErrInvalidDataset)
	})

	t.Run("Scalar", func(t *testing.T) {
		_, err := Decode(strings.NewReader("42"))
		assert.ErrorIs(t, err, ErrInvalidDataset)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Decode(strings.NewReader("- [0, x]\n"))
		assert.Error(t, err)
	})

	t.Run("Ragged", func(t *testing.T) {
		_, err := Decode(strings.NewReader("[[0, 0], [1]]"))
		var de *DimensionError
		assert.ErrorAs(t, err, &de)
	})
}

func TestDecodeLabeled(t *testing.T) {
	doc := `
points:
  - [0, 0]
  - [255, 255]
labels: [black, white]
`
	l, err := DecodeLabeled(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"black", "white"}, l.Labels)
	assert.Len(t, l.Points, 2)

	_, err = DecodeLabeled(strings.NewReader("- [0, 0]\n"))
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "points.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- [1, 2]\n- [3, 4]\n"), 0o600))

	points, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	labeledPath := filepath.Join(dir, "labeled.json")
	require.NoError(t, os.WriteFile(labeledPath, []byte(`{"points": [[1], [2]], "labels": ["a", "b"]}`), 0o600))

	l, err := LoadLabeled(labeledPath)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadLabeled(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
