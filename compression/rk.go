// Package compression: the low-rank result type.

package compression

import (
	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// Rk is a rank-k factorization A·Bᵀ of one block: A is |rows|×k, B is
// |cols|×k. The rank-0 result — a numerically zero block — carries nil
// operands and the NoCompression tag regardless of the strategy that
// produced it.
type Rk[T scalar.Scalar] struct {
	A, B       *dense.Matrix[T]
	Rows, Cols cluster.IndexSet
	Method     Method
}

// zeroRk builds the rank-0 result for a block.
func zeroRk[T scalar.Scalar](rows, cols cluster.IndexSet) *Rk[T] {
	return &Rk[T]{Rows: rows, Cols: cols, Method: NoCompression}
}

// Rank returns k.
func (rk *Rk[T]) Rank() int {
	if rk.A == nil {
		return 0
	}

	return rk.A.Cols()
}

// Eval materializes A·Bᵀ as a dense |rows|×|cols| matrix; the rank-0
// result evaluates to zeros.
func (rk *Rk[T]) Eval() *dense.Matrix[T] {
	full, err := dense.NewMatrix[T](rk.Rows.Size(), rk.Cols.Size())
	if err != nil {
		panic(err.Error())
	}
	if rk.A != nil {
		full.Gemm('N', 'T', scalar.FromFloat[T](1), rk.A, rk.B, scalar.FromFloat[T](0))
	}

	return full
}
