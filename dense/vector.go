// Package dense: the Vector type and its BLAS level-1 operations.
//
// A Vector is a contiguous one-dimensional buffer, owned or borrowed.
// The conjugated DOT convention (Σ conj(xᵢ)·yᵢ) is load-bearing: the ACA
// norm estimates rely on real(DOT(a,a)·DOT(b,b)) being ‖a‖²·‖b‖².

package dense

import (
	"math"

	"github.com/aurelienfalco/hmat-oss/dense/internal/blasx"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// Vector is a dense vector over one of the four element kinds.
type Vector[T scalar.Scalar] struct {
	rows  int
	data  []T
	owned bool
}

// NewVector allocates an owned, zero-initialized vector of length rows.
func NewVector[T scalar.Scalar](rows int) (*Vector[T], error) {
	if rows <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newVector[T](rows), nil
}

// newVector is the internal allocating constructor for derived lengths.
func newVector[T scalar.Scalar](rows int) *Vector[T] {
	return &Vector[T]{rows: rows, data: make([]T, rows), owned: true}
}

// VectorFromSlice adopts buf as a borrowed vector of length len(buf).
func VectorFromSlice[T scalar.Scalar](buf []T) *Vector[T] {
	return &Vector[T]{rows: len(buf), data: buf}
}

// Len returns the vector length.
func (v *Vector[T]) Len() int { return v.rows }

// Data exposes the backing buffer; mutating it is mutating the vector.
func (v *Vector[T]) Data() []T { return v.data }

// At returns element i, panicking on an out-of-range index.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.rows {
		panic(panicOutOfRange)
	}

	return v.data[i]
}

// Set writes element i, panicking on an out-of-range index.
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= v.rows {
		panic(panicOutOfRange)
	}
	v.data[i] = x
}

// Clear zeroes the vector.
func (v *Vector[T]) Clear() {
	clear(v.data)
}

// Scale multiplies the vector by alpha; zero alpha short-circuits.
func (v *Vector[T]) Scale(alpha T) {
	var zero T
	if alpha == zero {
		v.Clear()

		return
	}
	blasx.Scal(v.rows, alpha, v.data, 1)
}

// Axpy computes v ← v + alpha·x.
func (v *Vector[T]) Axpy(alpha T, x *Vector[T]) {
	if v.rows != x.rows {
		panic(panicVectorMismatch)
	}
	blasx.Axpy(v.rows, alpha, x.data, 1, v.data, 1)
}

// AddToMe computes v ← v + x.
func (v *Vector[T]) AddToMe(x *Vector[T]) {
	v.Axpy(scalar.FromFloat[T](1), x)
}

// SubToMe computes v ← v − x.
func (v *Vector[T]) SubToMe(x *Vector[T]) {
	v.Axpy(scalar.FromFloat[T](-1), x)
}

// Gemv computes v ← alpha·op(a)·x + beta·v with trans one of 'N'/'T'.
func (v *Vector[T]) Gemv(trans byte, alpha T, a *Matrix[T], x *Vector[T], beta T) {
	if trans == 'N' {
		if v.rows != a.rows || x.rows != a.cols {
			panic(panicShapeMismatch)
		}
	} else {
		if v.rows != a.cols || x.rows != a.rows {
			panic(panicShapeMismatch)
		}
	}
	addFlops((scalar.AddOps[T]() + scalar.MulOps[T]()) * int64(a.rows) * int64(a.cols))
	blasx.Gemv(trans, a.rows, a.cols, alpha, a.data, a.ld, x.data, beta, v.data)
}

// AbsoluteMaxIndex returns the index of the first element with the
// largest absolute value (BLAS i_amax semantics).
func (v *Vector[T]) AbsoluteMaxIndex() int {
	return blasx.Iamax(v.rows, v.data, 1)
}

// Dot returns the conjugated dot product Σ conj(xᵢ)·yᵢ.
func Dot[T scalar.Scalar](x, y *Vector[T]) T {
	if x.rows != y.rows {
		panic(panicVectorMismatch)
	}

	return blasx.Dot(x.rows, x.data, 1, y.data, 1)
}

// NormSqr returns the squared Euclidean norm real(DOT(v,v)).
func (v *Vector[T]) NormSqr() float64 {
	return scalar.RealPart(Dot(v, v))
}

// Norm returns the Euclidean norm.
func (v *Vector[T]) Norm() float64 {
	return math.Sqrt(v.NormSqr())
}
