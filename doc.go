// Package hmat is the low-rank approximation core of a hierarchical-matrix
// (H-matrix) library.
//
// Given a rectangular block of a large, implicitly defined matrix and an
// oracle able to evaluate its rows, columns, or the whole block, the core
// produces a rank-k factorization A·Bᵀ approximating the block within a
// prescribed relative Frobenius tolerance.
//
// The module is organized in leaves-first dependency order:
//
//	scalar/        — numeric traits shared by the four element kinds
//	                 (float32, float64, complex64, complex128)
//	dense/         — dense matrix & vector primitives (BLAS/LAPACK level),
//	                 flop accounting and the binary dump format
//	cluster/       — index sets, cluster node data and axis-aligned
//	                 bounding boxes with a lazily cached box per node
//	admissibility/ — the Hackbusch admissibility predicate and the
//	                 tall-and-skinny pair rule
//	compression/   — the block oracle contract, the four compression
//	                 strategies (SVD, full ACA, partial ACA, ACA+) and the
//	                 compression driver with optional validation
//
// The surrounding H-matrix machinery — cluster-tree construction, the
// recursive assembly driver, H-arithmetic — sits above this module and is
// intentionally not part of it. Concurrency across blocks is the caller's
// concern: one block compression is synchronous and owns all of its
// working state.
package hmat
