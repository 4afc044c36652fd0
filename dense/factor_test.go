// Package dense_test: factorizations and solves.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelienfalco/hmat-oss/dense"
)

// spd returns a small symmetric positive definite matrix.
func spd(n int) *dense.Matrix[float64] {
	m, err := dense.NewMatrix[float64](n, n)
	if err != nil {
		panic(err)
	}
	fill(m, func(i, j int) float64 {
		if i == j {
			return float64(n) + 1
		}

		return 1 / float64(1+i+j)
	})

	return m
}

// identity returns the n×n identity.
func identity(n int) *dense.Matrix[float64] {
	m, err := dense.NewMatrix[float64](n, n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// TestLUSolveRoundTrip verifies M · solve(I) = I up to LAPACK-level
// precision.
func TestLUSolveRoundTrip(t *testing.T) {
	const n = 6
	m, err := dense.NewMatrix[float64](n, n)
	require.NoError(t, err)
	fill(m, func(i, j int) float64 {
		if i == j {
			return float64(2*n + i)
		}

		return float64((i*7+j*3)%5) - 2
	})
	original := m.Copy()

	require.NoError(t, m.FactorLU())
	x := identity(n)
	m.Solve(x) // x ← M⁻¹

	product, err := dense.NewMatrix[float64](n, n)
	require.NoError(t, err)
	product.Gemm('N', 'N', 1, original, x, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, product.At(i, j), 1e-10)
		}
	}
}

// TestLUSingular ensures a zero pivot column reports ErrSingular.
func TestLUSingular(t *testing.T) {
	m, err := dense.NewMatrix[float64](3, 3)
	require.NoError(t, err) // all-zero matrix: first pivot column is zero
	require.ErrorIs(t, m.FactorLU(), dense.ErrSingular)
}

// TestSolveWithoutFactorizationPanics pins the programmer-error contract.
func TestSolveWithoutFactorizationPanics(t *testing.T) {
	m := spd(3)
	x := identity(3)
	require.Panics(t, func() { m.Solve(x) })
}

// TestCholeskyReconstruction verifies L·Lᵀ = M for SPD M and that the
// strict upper triangle is zeroed.
func TestCholeskyReconstruction(t *testing.T) {
	const n = 5
	m := spd(n)
	original := m.Copy()

	require.NoError(t, m.FactorLLt())
	require.True(t, m.IsTriLower())
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			require.Equal(t, 0.0, m.At(i, j)) // strict upper explicitly zero
		}
	}

	product, err := dense.NewMatrix[float64](n, n)
	require.NoError(t, err)
	product.Gemm('N', 'T', 1, m, m, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, original.At(i, j), product.At(i, j), 1e-12)
		}
	}
}

// TestCholeskyRejectsIndefinite ensures a non-SPD input is reported.
func TestCholeskyRejectsIndefinite(t *testing.T) {
	m, err := dense.NewMatrix[float64](2, 2)
	require.NoError(t, err)
	m.Set(0, 0, -1)
	m.Set(1, 1, 1)
	require.ErrorIs(t, m.FactorLLt(), dense.ErrNotPositiveDefinite)
}

// TestLDLtReconstruction verifies L·D·Lᵀ = M with D stored separately
// and L unit lower.
func TestLDLtReconstruction(t *testing.T) {
	const n = 4
	m := spd(n)
	original := m.Copy()

	require.NoError(t, m.FactorLDLt())
	require.True(t, m.IsTriLower())
	d := m.Diagonal()
	require.NotNil(t, d)
	for i := 0; i < n; i++ {
		require.Equal(t, 1.0, m.At(i, i)) // unit diagonal stored in L
	}

	// L·D
	ld := m.Copy()
	ld.MulDiag(d, false, false)
	product, err := dense.NewMatrix[float64](n, n)
	require.NoError(t, err)
	product.Gemm('N', 'T', 1, ld, m, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, original.At(i, j), product.At(i, j), 1e-11)
		}
	}
}

// TestTriangularSolves verifies the left/right solves against a Cholesky
// factor, including the lowerStored transpose-upper mode.
func TestTriangularSolves(t *testing.T) {
	const n = 4
	m := spd(n)
	original := m.Copy()
	require.NoError(t, m.FactorLLt())

	// Solve L·Y = M, then Lᵀ·X = Y through the lowerStored mode:
	// X = L⁻ᵀ·L⁻¹·M = M⁻¹·M = I.
	x := original.Copy()
	m.SolveLowerTriangularLeft(x, false)
	m.SolveUpperTriangularLeft(x, false, true)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, x.At(i, j), 1e-10)
		}
	}

	// Right-sided: X·Lᵀ = M through lowerStored as well.
	y := original.Copy()
	m.SolveUpperTriangularRight(y, false, true)
	check, err := dense.NewMatrix[float64](n, n)
	require.NoError(t, err)
	check.Gemm('N', 'T', 1, y, m, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, original.At(i, j), check.At(i, j), 1e-10)
		}
	}
}

// TestInverse verifies M·M⁻¹ = I.
func TestInverse(t *testing.T) {
	const n = 4
	m := spd(n)
	original := m.Copy()
	require.NoError(t, m.Inverse())

	product, err := dense.NewMatrix[float64](n, n)
	require.NoError(t, err)
	product.Gemm('N', 'N', 1, original, m, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, product.At(i, j), 1e-10)
		}
	}
}

// TestComplexLUSolve exercises the generic factorization on complex
// storage.
func TestComplexLUSolve(t *testing.T) {
	const n = 3
	m, err := dense.NewMatrix[complex128](n, n)
	require.NoError(t, err)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v := complex(float64(1+(i*5+j*3)%7), float64((i-j)%3))
			if i == j {
				v += complex(10, 0)
			}
			m.Set(i, j, v)
		}
	}
	original := m.Copy()
	require.NoError(t, m.FactorLU())

	x, err := dense.NewMatrix[complex128](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		x.Set(i, i, 1)
	}
	m.Solve(x)

	product, err := dense.NewMatrix[complex128](n, n)
	require.NoError(t, err)
	product.Gemm('N', 'N', 1, original, x, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			require.InDelta(t, real(want), real(product.At(i, j)), 1e-10)
			require.InDelta(t, imag(want), imag(product.At(i, j)), 1e-10)
		}
	}
}
