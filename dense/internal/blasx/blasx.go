// Package blasx dispatches generic BLAS calls onto gonum's kernels.
//
// The dense package stores matrices column-major (Fortran layout) while
// gonum's BLAS implementation is row-major. The two layouts are reconciled
// here, and nowhere else, with the same swap/flip rules the CBLAS
// column-major adapter uses:
//
//   - vector kernels (DOT, AXPY, SCAL, IAMAX) are layout-free;
//   - GEMM: C = op(A)·op(B) column-major is computed as
//     Cᵀ = op(B)ᵀ·op(A)ᵀ row-major — operands swap, transpose flags keep;
//   - GEMV: the transpose flag toggles and the dimensions swap;
//   - GER (unconjugated): the two vectors swap;
//   - TRSM: the side and the triangle flip, the dimensions swap.
//
// Flags follow the BLAS character convention ('N'/'T', 'L'/'R', 'U'/'L')
// so call sites read like the Fortran interfaces they mirror. Invalid
// arguments panic inside gonum, which is the intended fatal behavior for
// programmer errors.
package blasx

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/aurelienfalco/hmat-oss/scalar"
)

// impl is the shared, stateless gonum BLAS implementation.
var impl gonum.Implementation

// trans converts a BLAS character flag into gonum's Transpose constant.
func trans(flag byte) blas.Transpose {
	if flag == 'T' {
		return blas.Trans
	}

	return blas.NoTrans
}

// toggle flips 'N' ↔ 'T'.
func toggle(flag byte) byte {
	if flag == 'T' {
		return 'N'
	}

	return 'T'
}

// Dot returns Σ conj(xᵢ)·yᵢ. The first operand is conjugated for complex
// kinds (DOTC); the convention is load-bearing for norm estimates.
func Dot[T scalar.Scalar](n int, x []T, incX int, y []T, incY int) T {
	switch xv := any(x).(type) {
	case []float32:
		return any(impl.Sdot(n, xv, incX, any(y).([]float32), incY)).(T)
	case []float64:
		return any(impl.Ddot(n, xv, incX, any(y).([]float64), incY)).(T)
	case []complex64:
		return any(impl.Cdotc(n, xv, incX, any(y).([]complex64), incY)).(T)
	case []complex128:
		return any(impl.Zdotc(n, xv, incX, any(y).([]complex128), incY)).(T)
	}

	var zero T

	return zero
}

// Axpy computes y ← α·x + y.
func Axpy[T scalar.Scalar](n int, alpha T, x []T, incX int, y []T, incY int) {
	switch xv := any(x).(type) {
	case []float32:
		impl.Saxpy(n, any(alpha).(float32), xv, incX, any(y).([]float32), incY)
	case []float64:
		impl.Daxpy(n, any(alpha).(float64), xv, incX, any(y).([]float64), incY)
	case []complex64:
		impl.Caxpy(n, any(alpha).(complex64), xv, incX, any(y).([]complex64), incY)
	case []complex128:
		impl.Zaxpy(n, any(alpha).(complex128), xv, incX, any(y).([]complex128), incY)
	}
}

// Scal computes x ← α·x.
func Scal[T scalar.Scalar](n int, alpha T, x []T, incX int) {
	switch xv := any(x).(type) {
	case []float32:
		impl.Sscal(n, any(alpha).(float32), xv, incX)
	case []float64:
		impl.Dscal(n, any(alpha).(float64), xv, incX)
	case []complex64:
		impl.Cscal(n, any(alpha).(complex64), xv, incX)
	case []complex128:
		impl.Zscal(n, any(alpha).(complex128), xv, incX)
	}
}

// Iamax returns the index of the first element with the largest absolute
// value, following the BLAS convention (|re|+|im| for complex kinds).
// Returns -1 when n < 1.
func Iamax[T scalar.Scalar](n int, x []T, incX int) int {
	switch xv := any(x).(type) {
	case []float32:
		return impl.Isamax(n, xv, incX)
	case []float64:
		return impl.Idamax(n, xv, incX)
	case []complex64:
		return impl.Icamax(n, xv, incX)
	case []complex128:
		return impl.Izamax(n, xv, incX)
	}

	return -1
}

// Ger performs the unconjugated rank-1 update A ← A + α·x·yᵀ on a
// column-major m×n matrix. Row-major duality: Aᵀ ← Aᵀ + α·y·xᵀ.
func Ger[T scalar.Scalar](m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int) {
	switch av := any(a).(type) {
	case []float32:
		impl.Sger(n, m, any(alpha).(float32), any(y).([]float32), incY, any(x).([]float32), incX, av, lda)
	case []float64:
		impl.Dger(n, m, any(alpha).(float64), any(y).([]float64), incY, any(x).([]float64), incX, av, lda)
	case []complex64:
		impl.Cgeru(n, m, any(alpha).(complex64), any(y).([]complex64), incY, any(x).([]complex64), incX, av, lda)
	case []complex128:
		impl.Zgeru(n, m, any(alpha).(complex128), any(y).([]complex128), incY, any(x).([]complex128), incX, av, lda)
	}
}

// Gemm performs C ← α·op(A)·op(B) + β·C on column-major operands, where
// op(A) is m×k, op(B) is k×n and C is m×n. Row-major duality:
// Cᵀ ← α·op(B)ᵀ·op(A)ᵀ + β·Cᵀ, with the original transpose flags.
func Gemm[T scalar.Scalar](transA, transB byte, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	tA, tB := trans(transA), trans(transB)
	switch cv := any(c).(type) {
	case []float32:
		impl.Sgemm(tB, tA, n, m, k, any(alpha).(float32), any(b).([]float32), ldb, any(a).([]float32), lda, any(beta).(float32), cv, ldc)
	case []float64:
		impl.Dgemm(tB, tA, n, m, k, any(alpha).(float64), any(b).([]float64), ldb, any(a).([]float64), lda, any(beta).(float64), cv, ldc)
	case []complex64:
		impl.Cgemm(tB, tA, n, m, k, any(alpha).(complex64), any(b).([]complex64), ldb, any(a).([]complex64), lda, any(beta).(complex64), cv, ldc)
	case []complex128:
		impl.Zgemm(tB, tA, n, m, k, any(alpha).(complex128), any(b).([]complex128), ldb, any(a).([]complex128), lda, any(beta).(complex128), cv, ldc)
	}
}

// Gemv performs y ← α·op(A)·x + β·y on a column-major m×n matrix A.
// Row-major duality: the flag toggles and the dimensions swap.
func Gemv[T scalar.Scalar](transA byte, m, n int, alpha T, a []T, lda int, x []T, beta T, y []T) {
	tA := trans(toggle(transA))
	switch av := any(a).(type) {
	case []float32:
		impl.Sgemv(tA, n, m, any(alpha).(float32), av, lda, any(x).([]float32), 1, any(beta).(float32), any(y).([]float32), 1)
	case []float64:
		impl.Dgemv(tA, n, m, any(alpha).(float64), av, lda, any(x).([]float64), 1, any(beta).(float64), any(y).([]float64), 1)
	case []complex64:
		impl.Cgemv(tA, n, m, any(alpha).(complex64), av, lda, any(x).([]complex64), 1, any(beta).(complex64), any(y).([]complex64), 1)
	case []complex128:
		impl.Zgemv(tA, n, m, any(alpha).(complex128), av, lda, any(x).([]complex128), 1, any(beta).(complex128), any(y).([]complex128), 1)
	}
}

// Trsm solves op(A)·X = α·B (side 'L') or X·op(A) = α·B (side 'R') in
// place of the column-major m×n matrix B, with A triangular. Row-major
// duality: side and triangle flip, dimensions swap, flags keep.
func Trsm[T scalar.Scalar](side, uplo, transA, diag byte, m, n int, alpha T, a []T, lda int, b []T, ldb int) {
	s := blas.Left
	if side == 'L' {
		s = blas.Right
	}
	ul := blas.Lower
	if uplo == 'L' {
		ul = blas.Upper
	}
	tA := trans(transA)
	d := blas.NonUnit
	if diag == 'U' {
		d = blas.Unit
	}

	switch bv := any(b).(type) {
	case []float32:
		impl.Strsm(s, ul, tA, d, n, m, any(alpha).(float32), any(a).([]float32), lda, bv, ldb)
	case []float64:
		impl.Dtrsm(s, ul, tA, d, n, m, any(alpha).(float64), any(a).([]float64), lda, bv, ldb)
	case []complex64:
		impl.Ctrsm(s, ul, tA, d, n, m, any(alpha).(complex64), any(a).([]complex64), lda, bv, ldb)
	case []complex128:
		impl.Ztrsm(s, ul, tA, d, n, m, any(alpha).(complex128), any(a).([]complex128), lda, bv, ldb)
	}
}
