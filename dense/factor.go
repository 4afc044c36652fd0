// Package dense: factorizations (LU, LLᵀ, LDLᵀ) and the solves that
// consume them.
//
// The LU factors stay in place with the pivot vector recorded on the
// matrix; solving applies the recorded row interchanges and then the two
// triangular solves, exactly the GETRS decomposition of the problem. The
// LDLᵀ factorization extracts the diagonal into a separate vector and
// leaves the unit lower triangle in the matrix, which is what the
// H-arithmetic layers above expect to combine with MulDiag.

package dense

import (
	"math"

	"github.com/aurelienfalco/hmat-oss/dense/internal/blasx"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// FactorLU computes an in-place LU factorization with partial pivoting
// (GETRF). The pivot vector is recorded for Solve and the triangular
// solves. Returns ErrSingular on a zero pivot column; the factors are
// then only partially formed.
func (m *Matrix[T]) FactorLU() error {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	{
		r, c := int64(m.rows), int64(m.cols)
		muls := r*c*c/2 - c*c*c/6 + r*c/2 - c*c/2 + 2*c/3
		adds := r*c*c/2 - c*c*c/6 + r*c/2 + c/6
		addFlops(scalar.AddOps[T]()*adds + scalar.MulOps[T]()*muls)
	}

	minDim := min(m.rows, m.cols)
	m.pivots = make([]int, minDim)
	var zero T
	one := scalar.FromFloat[T](1)

	for j := 0; j < minDim; j++ {
		// Partial pivoting: largest magnitude in column j at or below the
		// diagonal.
		p := j
		best := scalar.AbsSqr(m.get(j, j))
		for i := j + 1; i < m.rows; i++ {
			if norm := scalar.AbsSqr(m.get(i, j)); norm > best {
				best = norm
				p = i
			}
		}
		m.pivots[j] = p
		if m.get(p, j) == zero {
			return ErrSingular
		}
		if p != j {
			for col := 0; col < m.cols; col++ {
				m.data[j+col*m.ld], m.data[p+col*m.ld] = m.data[p+col*m.ld], m.data[j+col*m.ld]
			}
		}

		inv := one / m.get(j, j)
		for i := j + 1; i < m.rows; i++ {
			m.data[i+j*m.ld] *= inv
		}
		for col := j + 1; col < m.cols; col++ {
			factor := m.get(j, col)
			if factor == zero {
				continue
			}
			off := col * m.ld
			for i := j + 1; i < m.rows; i++ {
				m.data[i+off] -= m.get(i, j) * factor
			}
		}
	}

	return nil
}

// applyPivots applies the recorded row interchanges of m to x, in the
// order the elimination produced them (LASWP forward direction).
func (m *Matrix[T]) applyPivots(x *Matrix[T]) {
	for j, p := range m.pivots {
		if p == j {
			continue
		}
		for col := 0; col < x.cols; col++ {
			x.data[j+col*x.ld], x.data[p+col*x.ld] = x.data[p+col*x.ld], x.data[j+col*x.ld]
		}
	}
}

// SolveLowerTriangularLeft solves L·X = x in place of x, using the lower
// triangle of m. When m carries LU pivots the row interchanges are applied
// to x first, mirroring the GETRS forward pass.
func (m *Matrix[T]) SolveLowerTriangularLeft(x *Matrix[T], unitriangular bool) {
	if x.rows == 0 || x.cols == 0 {
		return
	}
	if m.rows != m.cols {
		panic(panicTriangularUse)
	}
	{
		r, n := int64(m.rows), int64(x.cols)
		addFlops(scalar.AddOps[T]()*(n*r*(r-1)/2) + scalar.MulOps[T]()*(n*r*(r+1)/2))
	}
	if m.pivots != nil {
		m.applyPivots(x)
	}
	blasx.Trsm('L', 'L', 'N', diagFlag(unitriangular), x.rows, x.cols, scalar.FromFloat[T](1), m.data, m.ld, x.data, x.ld)
}

// SolveUpperTriangularRight solves X·U = x in place of x. With
// lowerStored the lower triangle of m is used as the implicit transpose
// of U.
func (m *Matrix[T]) SolveUpperTriangularRight(x *Matrix[T], unitriangular, lowerStored bool) {
	if x.rows == 0 || x.cols == 0 {
		return
	}
	if m.rows != m.cols {
		panic(panicTriangularUse)
	}
	{
		r, n := int64(m.rows), int64(x.cols)
		addFlops(scalar.AddOps[T]()*(n*r*(r-1)/2) + scalar.MulOps[T]()*(n*r*(r+1)/2))
	}
	uplo, transA := byte('U'), byte('N')
	if lowerStored {
		uplo, transA = 'L', 'T'
	}
	blasx.Trsm('R', uplo, transA, diagFlag(unitriangular), x.rows, x.cols, scalar.FromFloat[T](1), m.data, m.ld, x.data, x.ld)
}

// SolveUpperTriangularLeft solves U·X = x in place of x. With lowerStored
// the lower triangle of m is used as the implicit transpose of U.
func (m *Matrix[T]) SolveUpperTriangularLeft(x *Matrix[T], unitriangular, lowerStored bool) {
	if x.rows == 0 || x.cols == 0 {
		return
	}
	if m.rows != m.cols {
		panic(panicTriangularUse)
	}
	{
		r, n := int64(m.rows), int64(x.cols)
		addFlops(scalar.AddOps[T]()*(n*r*(r-1)/2) + scalar.MulOps[T]()*(n*r*(r+1)/2))
	}
	uplo, transA := byte('U'), byte('N')
	if lowerStored {
		uplo, transA = 'L', 'T'
	}
	blasx.Trsm('L', uplo, transA, diagFlag(unitriangular), x.rows, x.cols, scalar.FromFloat[T](1), m.data, m.ld, x.data, x.ld)
}

// diagFlag maps the unitriangular switch onto the BLAS diag character.
func diagFlag(unitriangular bool) byte {
	if unitriangular {
		return 'U'
	}

	return 'N'
}

// Solve solves m·X = x in place of x using the recorded LU factors
// (GETRS: row interchanges, unit-lower solve, upper solve). Panics if
// FactorLU has not run — that is a programming error, not a data error.
func (m *Matrix[T]) Solve(x *Matrix[T]) {
	if x.rows == 0 || x.cols == 0 {
		return
	}
	if m.pivots == nil {
		panic(panicNotFactorized)
	}
	{
		n, nrhs := int64(m.rows), int64(x.cols)
		addFlops(scalar.AddOps[T]()*(n*n*nrhs) + scalar.MulOps[T]()*((n*n-n)*nrhs))
	}
	m.applyPivots(x)
	one := scalar.FromFloat[T](1)
	blasx.Trsm('L', 'L', 'N', 'U', x.rows, x.cols, one, m.data, m.ld, x.data, x.ld)
	blasx.Trsm('L', 'U', 'N', 'N', x.rows, x.cols, one, m.data, m.ld, x.data, x.ld)
}

// Inverse replaces m with its inverse, through the LU factors and a solve
// against the identity. Returns ErrSingular when the factorization fails.
func (m *Matrix[T]) Inverse() error {
	if m.rows != m.cols {
		panic(panicTriangularUse)
	}
	{
		n := int64(m.rows)
		// GETRF + GETRI operation counts.
		adds := n*n*n/2 - n*n*n/6 - n*n/2 + n/6 + (2*n*n*n)/3 - (3*n*n)/2 + (5*n)/6
		muls := n*n*n/2 - n*n*n/6 + 2*n/3 + (2*n*n*n)/3 + n*n/2 + (5*n)/6
		addFlops(scalar.AddOps[T]()*adds + scalar.MulOps[T]()*muls)
	}
	if err := m.FactorLU(); err != nil {
		return err
	}
	ident := newMatrix[T](m.rows, m.cols)
	one := scalar.FromFloat[T](1)
	for i := 0; i < m.rows; i++ {
		ident.set(i, i, one)
	}
	m.Solve(ident)
	m.pivots = nil
	m.CopyAtOffset(ident, 0, 0)

	return nil
}

// FactorLLt computes the in-place Cholesky factorization m = L·Lᴴ
// (POTRF, lower). The strict upper triangle is explicitly zeroed and the
// matrix is flagged lower-triangular. Returns ErrNotPositiveDefinite on a
// non-positive pivot.
func (m *Matrix[T]) FactorLLt() error {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	if m.rows != m.cols {
		panic(panicTriangularUse)
	}
	{
		n := int64(m.rows)
		n2 := n * n
		n3 := n2 * n
		addFlops(scalar.AddOps[T]()*(n3/6-n/6) + scalar.MulOps[T]()*(n3/6+n2/2+n/3))
	}

	n := m.rows
	for j := 0; j < n; j++ {
		d := scalar.RealPart(m.get(j, j))
		for k := 0; k < j; k++ {
			d -= scalar.AbsSqr(m.get(j, k))
		}
		if d <= 0 || math.IsNaN(d) {
			return ErrNotPositiveDefinite
		}
		pivot := scalar.FromFloat[T](math.Sqrt(d))
		m.set(j, j, pivot)
		for i := j + 1; i < n; i++ {
			sum := m.get(i, j)
			for k := 0; k < j; k++ {
				sum -= m.get(i, k) * scalar.Conj(m.get(j, k))
			}
			m.set(i, j, sum/pivot)
		}
	}

	m.triLower = true
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			var zero T
			m.set(i, j, zero)
		}
	}

	return nil
}

// FactorLDLt computes the in-place LDLᵀ factorization of a symmetric
// matrix. The diagonal D moves into a separate vector, the unit lower
// triangle L stays in the matrix (unit diagonal stored, strict upper
// zeroed) and the matrix is flagged lower-triangular. Returns ErrZeroPivot
// when a diagonal pivot other than the last vanishes; a zero last pivot
// needs no division and is kept in D.
func (m *Matrix[T]) FactorLDLt() error {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	if m.rows != m.cols {
		panic(panicTriangularUse)
	}

	n := m.rows
	m.diagonal = newVector[T](n)
	var zero T
	one := scalar.FromFloat[T](1)

	// Column-oriented LDLᵀ with the auxiliary vector v to avoid repeated
	// D-scaled reloads of row j.
	v := make([]T, n)
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			v[i] = m.get(j, i) * m.get(i, i)
		}
		v[j] = m.get(j, j)
		for i := 0; i < j; i++ {
			v[j] = v[j] - m.get(j, i)*v[i]
		}
		m.set(j, j, v[j])
		for i := 0; i < j; i++ {
			for k := j + 1; k < n; k++ {
				m.set(k, j, m.get(k, j)-m.get(k, i)*v[i])
			}
		}
		if v[j] == zero && j+1 < n {
			return ErrZeroPivot
		}
		for k := j + 1; k < n; k++ {
			m.set(k, j, m.get(k, j)/v[j])
		}
	}

	for i := 0; i < n; i++ {
		m.diagonal.data[i] = m.get(i, i)
		m.set(i, i, one)
		for j := i + 1; j < n; j++ {
			m.set(i, j, zero)
		}
	}
	m.triLower = true

	return nil
}
