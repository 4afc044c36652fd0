// Package dense_test: vector level-1 operations.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelienfalco/hmat-oss/dense"
)

// TestDotConjugated pins the conjugated DOT convention: for complex
// operands the first argument is conjugated, so DOT(v,v) is the real
// squared norm.
func TestDotConjugated(t *testing.T) {
	x := dense.VectorFromSlice([]complex128{complex(1, 2), complex(0, -1)})
	y := dense.VectorFromSlice([]complex128{complex(3, 0), complex(2, 2)})

	// conj(1+2i)·3 + conj(-i)·(2+2i) = (3-6i) + (-2+2i) = 1-4i
	require.InDelta(t, 1.0, real(dense.Dot(x, y)), 1e-15)
	require.InDelta(t, -4.0, imag(dense.Dot(x, y)), 1e-15)

	require.InDelta(t, 6.0, x.NormSqr(), 1e-15) // |1+2i|² + |-i|² = 5+1
}

// TestAxpyScale verifies AXPY, SCAL and the convenience wrappers.
func TestAxpyScale(t *testing.T) {
	v := dense.VectorFromSlice([]float64{1, 2, 3})
	x := dense.VectorFromSlice([]float64{1, 1, 1})

	v.Axpy(2, x)
	require.Equal(t, []float64{3, 4, 5}, v.Data())

	v.SubToMe(x)
	require.Equal(t, []float64{2, 3, 4}, v.Data())

	v.Scale(0.5)
	require.Equal(t, []float64{1, 1.5, 2}, v.Data())

	v.Clear()
	require.Equal(t, []float64{0, 0, 0}, v.Data())
}

// TestAbsoluteMaxIndex verifies the i_amax semantics: first index of the
// largest magnitude.
func TestAbsoluteMaxIndex(t *testing.T) {
	v := dense.VectorFromSlice([]float64{1, -5, 5, 2})
	require.Equal(t, 1, v.AbsoluteMaxIndex()) // first of the ties

	c := dense.VectorFromSlice([]complex128{complex(0, 0), complex(3, 4), complex(1, 1)})
	require.Equal(t, 1, c.AbsoluteMaxIndex())
}

// TestGemv verifies y = A·x and y = Aᵀ·x.
func TestGemv(t *testing.T) {
	a, err := dense.NewMatrix[float64](2, 3)
	require.NoError(t, err)
	fill(a, func(i, j int) float64 { return float64(i + 2*j) })
	x := dense.VectorFromSlice([]float64{1, 1, 1})
	y := dense.VectorFromSlice([]float64{0, 0})

	y.Gemv('N', 1, a, x, 0)
	require.InDelta(t, a.At(0, 0)+a.At(0, 1)+a.At(0, 2), y.At(0), 1e-14)
	require.InDelta(t, a.At(1, 0)+a.At(1, 1)+a.At(1, 2), y.At(1), 1e-14)

	xt := dense.VectorFromSlice([]float64{1, -1})
	yt := dense.VectorFromSlice([]float64{0, 0, 0})
	yt.Gemv('T', 1, a, xt, 0)
	for j := 0; j < 3; j++ {
		require.InDelta(t, a.At(0, j)-a.At(1, j), yt.At(j), 1e-14)
	}
}

// TestVectorInvalidLength ensures the constructor rejects non-positive
// lengths.
func TestVectorInvalidLength(t *testing.T) {
	_, err := dense.NewVector[float64](0)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
}
