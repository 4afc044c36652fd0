// Package dense provides the dense matrix and vector primitives the
// compression algorithms are built on: BLAS-level products and updates,
// LAPACK-level factorizations and solves, Frobenius norms, NaN checks,
// a binary dump format, and a global floating-point-operation counter.
//
// Storage is column-major with an explicit leading dimension ld ≥ rows
// (offset formula row + col·ld), which keeps the BLAS call shapes of the
// Fortran interfaces and makes column slicing free. A Matrix either owns
// its buffer (allocating constructors, zero-initialized) or borrows one
// (adopting constructors and column views); borrowed views must not
// outlive their owner.
//
// Products, rank-1 updates, level-1 vector kernels and triangular solves
// route through gonum's BLAS implementation (see internal/blasx for the
// column-major dispatch); the LU, LLᵀ and LDLᵀ eliminations are plain
// loops. Factorizations record their auxiliaries on the matrix itself: LU
// keeps the pivot vector, LDLᵀ keeps the extracted diagonal. The matrix
// products, updates, scalings, diagonal multiplies, LU and LLᵀ
// factorizations, solves, Inverse, SVD and Vector.Gemv increment the flop
// counter with element-kind-appropriate weights; FactorLDLt, the norms
// and the other Vector operations (Scale, Axpy, Dot) do not count. The
// counter is best-effort observability, not an accounting invariant.
//
// Error policy: constructors and factorizations return sentinel errors
// (ErrInvalidDimensions, ErrSingular, ErrNotPositiveDefinite, …) matched
// with errors.Is; shape mismatches in kernels and misuse such as solving
// with an unfactorized matrix are programmer errors and panic.
package dense
