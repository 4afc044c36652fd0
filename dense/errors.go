// Package dense: sentinel error set.
//
// All sentinels carry the "dense: " prefix and are returned unwrapped from
// the site that detects the condition; facades may add context with
// fmt.Errorf("…: %w", err). Tests match with errors.Is. Panics are reserved
// for programmer errors; their messages live in the panic* constants so
// call sites stay grep-able.

package dense

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested shape is not
	// strictly positive, or an adopted buffer is too short for it.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0 and fit the buffer")

	// ErrSingular is returned by the LU factorization when a zero pivot
	// column is encountered; the factors are left partially formed.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrNotPositiveDefinite is returned by the Cholesky factorization
	// when a non-positive pivot shows the matrix is not SPD.
	ErrNotPositiveDefinite = errors.New("dense: matrix is not positive definite")

	// ErrZeroPivot is returned by the LDLᵀ factorization when a zero
	// diagonal pivot makes the decomposition impossible.
	ErrZeroPivot = errors.New("dense: zero pivot in LDLt factorization")

	// ErrSVDFailed is returned when the SVD driver does not converge.
	ErrSVDFailed = errors.New("dense: SVD did not converge")

	// ErrBadDumpHeader is returned when a matrix dump file is truncated
	// or its header is inconsistent with the payload size.
	ErrBadDumpHeader = errors.New("dense: malformed matrix dump header")

	// ErrDumpTypeMismatch is returned when a dump holds a different
	// element kind than the one requested.
	ErrDumpTypeMismatch = errors.New("dense: dump element type mismatch")
)

const (
	panicShapeMismatch  = "dense: operand shapes do not conform"
	panicNotContiguous  = "dense: operation requires ld == rows"
	panicNotFactorized  = "dense: Solve requires a prior LU factorization"
	panicZeroDiagonal   = "dense: zero entry in diagonal inversion"
	panicNaN            = "dense: NaN encountered"
	panicOutOfRange     = "dense: index out of range"
	panicTriangularUse  = "dense: triangular solve on a non-square matrix"
	panicVectorMismatch = "dense: vector lengths do not conform"
)
