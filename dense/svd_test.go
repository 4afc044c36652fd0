// Package dense_test: full SVD over the real and complex kernels.
package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// reconstructSVD materializes U·Σ·Vᵀ.
func reconstructSVD[T scalar.Scalar](u *dense.Matrix[T], sigma []float64, vt *dense.Matrix[T]) *dense.Matrix[T] {
	us := u.Copy()
	for col := 0; col < us.Cols(); col++ {
		us.ColumnView(col).Scale(scalar.FromFloat[T](sigma[col]))
	}
	full, err := dense.NewMatrix[T](u.Rows(), vt.Cols())
	if err != nil {
		panic(err)
	}
	full.Gemm('N', 'N', scalar.FromFloat[T](1), us, vt, scalar.FromFloat[T](0))

	return full
}

// TestSVDFloat64Reconstruction verifies shapes, descending singular
// values and the reconstruction of a rectangular block.
func TestSVDFloat64Reconstruction(t *testing.T) {
	const rows, cols = 7, 5
	m, err := dense.NewMatrix[float64](rows, cols)
	require.NoError(t, err)
	fill(m, func(i, j int) float64 {
		return math.Cos(float64(i)) * math.Sin(float64(j+1)) * float64(1+i+j)
	})
	original := m.Copy()

	u, sigma, vt, err := m.SVD()
	require.NoError(t, err)
	require.Equal(t, rows, u.Rows())
	require.Equal(t, cols, u.Cols()) // min(rows, cols) columns
	require.Equal(t, cols, vt.Rows())
	require.Equal(t, cols, vt.Cols())
	for i := 1; i < len(sigma); i++ {
		require.LessOrEqual(t, sigma[i], sigma[i-1]) // descending order
	}

	full := reconstructSVD(u, sigma, vt)
	full.Axpy(-1, original)
	require.LessOrEqual(t, full.Norm(), 1e-12*original.Norm())
}

// TestSVDRankOne checks a rank-1 block yields one dominant singular value.
func TestSVDRankOne(t *testing.T) {
	const n = 8
	m, err := dense.NewMatrix[float64](n, n)
	require.NoError(t, err)
	fill(m, func(i, j int) float64 { return float64((i + 1) * (j + 2)) })

	_, sigma, _, err := m.SVD()
	require.NoError(t, err)
	require.Greater(t, sigma[0], 1.0)
	for _, s := range sigma[1:] {
		require.LessOrEqual(t, s, 1e-12*sigma[0]) // numerically rank 1
	}
}

// TestSVDComplexReconstruction exercises the Jacobi kernel on complex128.
func TestSVDComplexReconstruction(t *testing.T) {
	const rows, cols = 6, 4
	m, err := dense.NewMatrix[complex128](rows, cols)
	require.NoError(t, err)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Set(i, j, complex(math.Sin(float64(i*j+1)), math.Cos(float64(i+2*j))))
		}
	}
	original := m.Copy()

	u, sigma, vt, err := m.SVD()
	require.NoError(t, err)
	for i := 1; i < len(sigma); i++ {
		require.LessOrEqual(t, sigma[i], sigma[i-1])
	}

	full := reconstructSVD(u, sigma, vt)
	full.Axpy(complex(-1, 0), original)
	require.LessOrEqual(t, full.Norm(), 1e-11*original.Norm())
}

// TestSVDFloat32Promotion exercises the promoted single-precision path.
func TestSVDFloat32Promotion(t *testing.T) {
	const n = 5
	m, err := dense.NewMatrix[float32](n, n)
	require.NoError(t, err)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			m.Set(i, j, float32(i+1)*float32(j+1)+float32(i%2))
		}
	}
	original := m.Copy()

	u, sigma, vt, err := m.SVD()
	require.NoError(t, err)

	full := reconstructSVD(u, sigma, vt)
	full.Axpy(-1, original)
	require.LessOrEqual(t, full.Norm(), 1e-5*original.Norm()) // float32 precision
}
