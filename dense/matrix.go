// Package dense: Matrix storage, lifecycle and structural operations.
//
// Purpose:
//   - Column-major buffer with explicit leading dimension (offset row + col·ld).
//   - Owned buffers are zero-initialized on creation; adopted buffers are
//     borrowed and never freed here.
//   - Triangular flags and factorization auxiliaries (pivots, diagonal)
//     travel with the matrix and round-trip through Transpose/Copy as the
//     factorization semantics require.

package dense

import (
	"math"

	"github.com/aurelienfalco/hmat-oss/dense/internal/blasx"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// Matrix is a column-major dense matrix over one of the four element kinds.
type Matrix[T scalar.Scalar] struct {
	rows, cols int
	ld         int // leading dimension, ≥ rows at all times
	data       []T
	owned      bool // owns its allocation (vs. borrowing a caller buffer)

	triUpper, triLower bool       // triangular structure flags
	pivots             []int      // present iff LU-factorized
	diagonal           *Vector[T] // present iff LDLᵀ-factorized
}

// NewMatrix allocates an owned, zero-initialized rows×cols matrix with
// ld == rows. Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
func NewMatrix[T scalar.Scalar](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newMatrix[T](rows, cols), nil
}

// newMatrix is the internal allocating constructor; shapes are assumed
// valid because they derive from existing matrices or index sets.
func newMatrix[T scalar.Scalar](rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		rows:  rows,
		cols:  cols,
		ld:    rows,
		data:  make([]T, rows*cols),
		owned: true,
	}
}

// NewMatrixFromSlice adopts buf as the backing store of a rows×cols matrix
// with leading dimension ld. The matrix borrows buf: the caller keeps
// ownership and must keep it alive for the lifetime of the matrix.
func NewMatrixFromSlice[T scalar.Scalar](buf []T, rows, cols, ld int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 || ld < rows || len(buf) < ld*(cols-1)+rows {
		return nil, ErrInvalidDimensions
	}

	return &Matrix[T]{rows: rows, cols: cols, ld: ld, data: buf}, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// LeadingDim returns the leading dimension of the storage.
func (m *Matrix[T]) LeadingDim() int { return m.ld }

// Data exposes the backing buffer (column-major, leading dimension
// LeadingDim). Intended for oracle assembly and interop; mutating it is
// mutating the matrix.
func (m *Matrix[T]) Data() []T { return m.data }

// IsTriUpper reports whether the matrix is flagged upper-triangular.
func (m *Matrix[T]) IsTriUpper() bool { return m.triUpper }

// IsTriLower reports whether the matrix is flagged lower-triangular.
func (m *Matrix[T]) IsTriLower() bool { return m.triLower }

// Diagonal returns the separately stored diagonal installed by the LDLᵀ
// factorization, or nil.
func (m *Matrix[T]) Diagonal() *Vector[T] { return m.diagonal }

// get reads element (row, col) without bounds checking beyond the slice's.
func (m *Matrix[T]) get(row, col int) T { return m.data[row+col*m.ld] }

// set writes element (row, col).
func (m *Matrix[T]) set(row, col int, v T) { m.data[row+col*m.ld] = v }

// At returns element (row, col), panicking on an out-of-range index.
func (m *Matrix[T]) At(row, col int) T {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(panicOutOfRange)
	}

	return m.get(row, col)
}

// Set writes element (row, col), panicking on an out-of-range index.
func (m *Matrix[T]) Set(row, col int, v T) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(panicOutOfRange)
	}
	m.set(row, col, v)
}

// ColumnView returns a borrowed vector aliasing column col. The view must
// not outlive the matrix and sees every later write to that column.
func (m *Matrix[T]) ColumnView(col int) *Vector[T] {
	if col < 0 || col >= m.cols {
		panic(panicOutOfRange)
	}
	off := col * m.ld

	return &Vector[T]{rows: m.rows, data: m.data[off : off+m.rows]}
}

// Clear zeroes the rows·cols payload and, when present, the stored
// diagonal. The gap columns of a strided borrow are left untouched.
func (m *Matrix[T]) Clear() {
	if m.ld == m.rows {
		clear(m.data[:m.rows*m.cols])
	} else {
		for col := 0; col < m.cols; col++ {
			off := col * m.ld
			clear(m.data[off : off+m.rows])
		}
	}
	if m.diagonal != nil {
		m.diagonal.Clear()
	}
}

// Transpose transposes the matrix in place: square matrices swap across
// the diagonal, rectangular ones go through a temporary buffer. The
// triangular flags flip, rows/cols swap and ld is reset to the new row
// count. Requires contiguous storage (ld == rows).
func (m *Matrix[T]) Transpose() {
	if m.ld != m.rows {
		panic(panicNotContiguous)
	}
	if m.rows == m.cols {
		for col := 0; col < m.cols; col++ {
			for row := 0; row < col; row++ {
				m.data[row+col*m.ld], m.data[col+row*m.ld] = m.data[col+row*m.ld], m.data[row+col*m.ld]
			}
		}
	} else {
		tmp := newMatrix[T](m.rows, m.cols)
		tmp.CopyAtOffset(m, 0, 0)
		m.rows, m.cols = m.cols, m.rows
		m.ld = m.rows
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				m.set(i, j, tmp.get(j, i))
			}
		}
	}

	switch {
	case m.triUpper:
		m.triUpper, m.triLower = false, true
	case m.triLower:
		m.triLower, m.triUpper = false, true
	}
}

// Copy returns an owned deep copy, carrying over the triangular flags and
// the stored diagonal (pivots are factorization state and do not travel).
func (m *Matrix[T]) Copy() *Matrix[T] {
	result := newMatrix[T](m.rows, m.cols)
	if m.ld == m.rows {
		copy(result.data, m.data[:m.rows*m.cols])
	} else {
		for col := 0; col < m.cols; col++ {
			copy(result.data[col*result.ld:col*result.ld+m.rows], m.data[col*m.ld:col*m.ld+m.rows])
		}
	}
	if m.diagonal != nil {
		result.diagonal = newVector[T](m.rows)
		copy(result.diagonal.data, m.diagonal.data)
	}
	result.triUpper, result.triLower = m.triUpper, m.triLower

	return result
}

// CopyAndTranspose returns an owned cols×rows copy holding the transpose
// (no conjugation for complex kinds).
func (m *Matrix[T]) CopyAndTranspose() *Matrix[T] {
	result := newMatrix[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.set(j, i, m.get(i, j))
		}
	}

	return result
}

// CopyAtOffset copies all of src into m starting at (rowOffset, colOffset).
// A single memcpy serves the whole-matrix case when both sides are
// contiguous; otherwise the copy runs column by column.
func (m *Matrix[T]) CopyAtOffset(src *Matrix[T], rowOffset, colOffset int) {
	if rowOffset+src.rows > m.rows || colOffset+src.cols > m.cols {
		panic(panicShapeMismatch)
	}
	if rowOffset == 0 && colOffset == 0 &&
		src.rows == m.rows && src.cols == m.cols &&
		src.ld == src.rows && m.ld == m.rows {
		copy(m.data, src.data[:src.rows*src.cols])

		return
	}
	for col := 0; col < src.cols; col++ {
		dst := m.data[rowOffset+(colOffset+col)*m.ld:]
		copy(dst[:src.rows], src.data[col*src.ld:col*src.ld+src.rows])
	}
}

// CopyWindowAtOffset copies the leading rowsToCopy×colsToCopy window of
// src into m starting at (rowOffset, colOffset).
func (m *Matrix[T]) CopyWindowAtOffset(src *Matrix[T], rowOffset, colOffset, rowsToCopy, colsToCopy int) {
	if rowOffset+rowsToCopy > m.rows || colOffset+colsToCopy > m.cols ||
		rowsToCopy > src.rows || colsToCopy > src.cols {
		panic(panicShapeMismatch)
	}
	for col := 0; col < colsToCopy; col++ {
		dst := m.data[rowOffset+(colOffset+col)*m.ld:]
		copy(dst[:rowsToCopy], src.data[col*src.ld:col*src.ld+rowsToCopy])
	}
}

// Scale multiplies every element (and the stored diagonal, when present)
// by alpha. Zero alpha short-circuits to Clear.
func (m *Matrix[T]) Scale(alpha T) {
	addFlops(scalar.MulOps[T]() * int64(m.rows) * int64(m.cols))
	var zero T
	if alpha == zero {
		m.Clear()

		return
	}
	if m.ld == m.rows {
		blasx.Scal(m.rows*m.cols, alpha, m.data, 1)
	} else {
		for col := 0; col < m.cols; col++ {
			blasx.Scal(m.rows, alpha, m.data[col*m.ld:], 1)
		}
	}
	if m.diagonal != nil {
		blasx.Scal(m.rows, alpha, m.diagonal.data, 1)
	}
}

// Axpy computes m ← m + alpha·a elementwise. Contiguous operands take a
// single flat BLAS call; strided ones go column by column.
func (m *Matrix[T]) Axpy(alpha T, a *Matrix[T]) {
	if m.rows != a.rows || m.cols != a.cols {
		panic(panicShapeMismatch)
	}
	size := int64(m.rows) * int64(m.cols)
	weight := scalar.AddOps[T]() * size
	if alpha != scalar.FromFloat[T](1) {
		weight += scalar.MulOps[T]() * size
	}
	addFlops(weight)

	if m.ld == m.rows && a.ld == a.rows {
		blasx.Axpy(m.rows*m.cols, alpha, a.data, 1, m.data, 1)

		return
	}
	for col := 0; col < m.cols; col++ {
		blasx.Axpy(m.rows, alpha, a.data[col*a.ld:], 1, m.data[col*m.ld:], 1)
	}
}

// NormSqr returns the squared Frobenius norm via conjugated DOT, flat for
// contiguous storage, per column otherwise.
func (m *Matrix[T]) NormSqr() float64 {
	if m.ld == m.rows {
		n := m.rows * m.cols

		return scalar.RealPart(blasx.Dot(n, m.data, 1, m.data, 1))
	}
	var result T
	for col := 0; col < m.cols; col++ {
		colSlice := m.data[col*m.ld:]
		result += blasx.Dot(m.rows, colSlice, 1, colSlice, 1)
	}

	return scalar.RealPart(result)
}

// Norm returns the Frobenius norm.
func (m *Matrix[T]) Norm() float64 {
	return math.Sqrt(m.NormSqr())
}

// CheckNaN panics if any element is NaN (for complex kinds: either part).
func (m *Matrix[T]) CheckNaN() {
	for col := 0; col < m.cols; col++ {
		for row := 0; row < m.rows; row++ {
			if scalar.IsNaN(m.get(row, col)) {
				panic(panicNaN)
			}
		}
	}
}

// StoredZeros counts the elements with magnitude below 1e-16.
func (m *Matrix[T]) StoredZeros() int {
	result := 0
	for col := 0; col < m.cols; col++ {
		for row := 0; row < m.rows; row++ {
			if scalar.AbsSqr(m.get(row, col)) < 1e-32 {
				result++
			}
		}
	}

	return result
}

// MemorySize returns the payload size in bytes.
func (m *Matrix[T]) MemorySize() int {
	return m.rows * m.cols * scalar.Size[T]()
}
