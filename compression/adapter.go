// Package compression: the block-assembly adapter.
//
// blockAssembly wraps an Oracle for one block, memoizing the hints from
// PrepareBlock and routing row/column/whole-block requests through them:
// structurally null rows and columns of sparse blocks never reach the
// oracle, and null blocks assemble to zeros without a callback.
//
// Lifetime invariant: PrepareBlock and ReleaseBlock pair 1:1 — the driver
// defers release() immediately after construction, so the pair holds on
// every exit path, early terminations and panics included.

package compression

import (
	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

type blockAssembly[T scalar.Scalar] struct {
	f          Oracle[T]
	rows, cols cluster.IndexSet
	info       BlockInfo
}

// newBlockAssembly prepares the block. The caller owns the paired
// release().
func newBlockAssembly[T scalar.Scalar](f Oracle[T], rows, cols cluster.IndexSet) *blockAssembly[T] {
	return &blockAssembly[T]{
		f:    f,
		rows: rows,
		cols: cols,
		info: f.PrepareBlock(rows, cols),
	}
}

// release hands the hints back to the oracle.
func (b *blockAssembly[T]) release() {
	b.f.ReleaseBlock(&b.info)
}

// getRow writes row index of the block into out (length |cols|). The
// caller supplies out zeroed; structurally null rows keep it that way.
func (b *blockAssembly[T]) getRow(index int, out *dense.Vector[T]) {
	if b.info.Type == BlockSparse && b.info.IsNullRow != nil && b.info.IsNullRow(index) {
		return
	}
	b.f.GetRow(b.rows, b.cols, index, b.info.UserData, out)
}

// getCol writes column index of the block into out (length |rows|).
func (b *blockAssembly[T]) getCol(index int, out *dense.Vector[T]) {
	if b.info.Type == BlockSparse && b.info.IsNullCol != nil && b.info.IsNullCol(index) {
		return
	}
	b.f.GetCol(b.rows, b.cols, index, b.info.UserData, out)
}

// assemble returns a freshly allocated dense copy of the block; null
// blocks yield zeros without consulting the oracle.
func (b *blockAssembly[T]) assemble() *dense.Matrix[T] {
	if b.info.Type == BlockNull {
		m, err := dense.NewMatrix[T](b.rows.Size(), b.cols.Size())
		if err != nil {
			panic(err.Error())
		}

		return m
	}

	return b.f.Assemble(b.rows, b.cols, &b.info)
}
