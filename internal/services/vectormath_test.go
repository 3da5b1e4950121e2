package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 0.0, Magnitude([]float64{0, 0, 0}))
	assert.Equal(t, 0.0, Magnitude(nil))
	assert.InDelta(t, 5.0, Magnitude([]float64{3, 4}), 1e-9)
}

func TestDotProduct(t *testing.T) {
	t.Run("computes the inner product", func(t *testing.T) {
		dot, err := DotProduct([]float64{1, 2, 3}, []float64{4, 5, 6})
		require.NoError(t, err)
		assert.InDelta(t, 32.0, dot, 1e-9)
	})

	t.Run("fails on mismatched lengths", func(t *testing.T) {
		_, err := DotProduct([]float64{1, 2, 3}, []float64{1, 2})
		assert.ErrorIs(t, err, ErrVectorLengthMismatch)
	})

	t.Run("empty vectors dot to zero", func(t *testing.T) {
		dot, err := DotProduct(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, dot)
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		sim, ok, err := CosineSimilarity([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5})
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, 1.0, sim, 1e-9)
	})

	t.Run("opposite vectors score -1", func(t *testing.T) {
		sim, ok, err := CosineSimilarity([]float64{1, 2, 3}, []float64{-1, -2, -3})
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, -1.0, sim, 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		sim, ok, err := CosineSimilarity([]float64{1, 0}, []float64{0, 1})
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, 0.0, sim, 1e-9)
	})

	t.Run("zero magnitude is undefined, not an error", func(t *testing.T) {
		_, ok, err := CosineSimilarity([]float64{0, 0, 0}, []float64{1, 2, 3})
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = CosineSimilarity([]float64{0, 0}, []float64{0, 0})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("mismatched lengths fail", func(t *testing.T) {
		_, _, err := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2})
		assert.ErrorIs(t, err, ErrVectorLengthMismatch)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []float64{0.3, 1.7, 0, 2.2}
		b := []float64{1.1, 0, 0.4, 0.9}

		ab, ok, err := CosineSimilarity(a, b)
		require.NoError(t, err)
		require.True(t, ok)

		ba, ok, err := CosineSimilarity(b, a)
		require.NoError(t, err)
		require.True(t, ok)

		assert.InDelta(t, ab, ba, 1e-12)
	})

	t.Run("scale invariant for positive factors", func(t *testing.T) {
		a := []float64{1, 0.5, 2}
		b := []float64{0.2, 3, 1}

		base, ok, err := CosineSimilarity(a, b)
		require.NoError(t, err)
		require.True(t, ok)

		scaled := make([]float64, len(a))
		for i, v := range a {
			scaled[i] = v * 7.3
		}

		sim, ok, err := CosineSimilarity(scaled, b)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, base, sim, 1e-9)
	})

	t.Run("stays within [-1,1]", func(t *testing.T) {
		vectors := [][]float64{
			{1, 2}, {2, 4}, {1, 0}, {1, 1}, {5, 0}, {0, 5}, {-3, 2},
		}
		for _, a := range vectors {
			for _, b := range vectors {
				sim, ok, err := CosineSimilarity(a, b)
				require.NoError(t, err)
				require.True(t, ok)
				assert.GreaterOrEqual(t, sim, -1.0-1e-9)
				assert.LessOrEqual(t, sim, 1.0+1e-9)
			}
		}
	})

	t.Run("known angles", func(t *testing.T) {
		cases := []struct {
			a, b     []float64
			expected float64
		}{
			{[]float64{1, 2}, []float64{2, 4}, 1},
			{[]float64{1, 0}, []float64{1, 1}, 0.70710678},
			{[]float64{5, 0}, []float64{0, 5}, 0},
			{[]float64{1, 2, 3}, []float64{-1, -2, -3}, -1},
		}

		for _, tc := range cases {
			sim, ok, err := CosineSimilarity(tc.a, tc.b)
			require.NoError(t, err)
			require.True(t, ok)
			assert.InDelta(t, tc.expected, sim, 1e-6)
		}
	})
}
