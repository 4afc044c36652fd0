// Package dense: BLAS level-2/3 products on matrices.

package dense

import (
	"github.com/aurelienfalco/hmat-oss/dense/internal/blasx"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// opRows returns the row count of op(a) under a 'N'/'T' flag.
func opRows[T scalar.Scalar](flag byte, a *Matrix[T]) int {
	if flag == 'N' {
		return a.rows
	}

	return a.cols
}

// opCols returns the column count of op(a) under a 'N'/'T' flag.
func opCols[T scalar.Scalar](flag byte, a *Matrix[T]) int {
	if flag == 'N' {
		return a.cols
	}

	return a.rows
}

// Gemm computes m ← alpha·op(a)·op(b) + beta·m, with transA/transB each
// one of 'N' or 'T'. Shapes must conform; a mismatch panics.
func (m *Matrix[T]) Gemm(transA, transB byte, alpha T, a, b *Matrix[T], beta T) {
	rows := opRows(transA, a)
	cols := opCols(transB, b)
	inner := opCols(transA, a)
	if rows != m.rows || cols != m.cols || inner != opRows(transB, b) {
		panic(panicShapeMismatch)
	}

	work := int64(rows) * int64(cols) * int64(inner)
	addFlops((scalar.AddOps[T]() + scalar.MulOps[T]()) * work)

	blasx.Gemm(transA, transB, rows, cols, inner, alpha, a.data, a.ld, b.data, b.ld, beta, m.data, m.ld)
}

// Ger applies the unconjugated rank-1 update m ← m + alpha·x·yᵀ.
func (m *Matrix[T]) Ger(alpha T, x, y *Vector[T]) {
	if x.rows != m.rows || y.rows != m.cols {
		panic(panicShapeMismatch)
	}
	work := int64(m.rows) * int64(m.cols)
	addFlops((scalar.AddOps[T]() + scalar.MulOps[T]()) * work)
	blasx.Ger(m.rows, m.cols, alpha, x.data, 1, y.data, 1, m.data, m.ld)
}

// MulDiag multiplies m in place by the diagonal matrix diag(d): from the
// left when left is true (rows scaled), from the right otherwise (columns
// scaled). When inverse is set the reciprocal diagonal is applied; a zero
// diagonal entry then panics — the factorization invariants promise it
// cannot occur.
func (m *Matrix[T]) MulDiag(d *Vector[T], inverse, left bool) {
	if (left && m.rows != d.rows) || (!left && m.cols != d.rows) {
		panic(panicShapeMismatch)
	}
	addFlops(scalar.MulOps[T]() * int64(m.rows) * int64(m.cols))

	var zero T
	one := scalar.FromFloat[T](1)
	if left {
		diag := d.data
		if inverse {
			// Invert once up front rather than once per column.
			diag = make([]T, d.rows)
			for i, v := range d.data {
				if v == zero {
					panic(panicZeroDiagonal)
				}
				diag[i] = one / v
			}
		}
		for col := 0; col < m.cols; col++ {
			off := col * m.ld
			for row := 0; row < m.rows; row++ {
				m.data[off+row] *= diag[row]
			}
		}

		return
	}
	for col := 0; col < m.cols; col++ {
		factor := d.data[col]
		if inverse {
			if factor == zero {
				panic(panicZeroDiagonal)
			}
			factor = one / factor
		}
		blasx.Scal(m.rows, factor, m.data[col*m.ld:], 1)
	}
}
