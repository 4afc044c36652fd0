// Package compression: SVD truncation.

package compression

import (
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// compressSvd assembles the block, takes its full SVD and keeps the
// leading singular triplets selected by the tail-energy policy. A block
// whose every column is exactly zero short-circuits to rank 0; an SVD
// driver failure is fatal.
func compressSvd[T scalar.Scalar](block *blockAssembly[T], o *Options) *Rk[T] {
	m := block.assemble()
	rowCount, colCount := m.Rows(), m.Cols()

	zero := true
	for col := 0; col < colCount && zero; col++ {
		zero = isZero(m.ColumnView(col))
	}
	if zero {
		return zeroRk[T](block.rows, block.cols)
	}

	u, sigma, vt, err := m.SVD()
	if err != nil {
		panic(panicSVDFailed)
	}

	// k is at most min(rows, cols), so the full decomposition loses
	// nothing to the non-square case.
	maxK := min(rowCount, colCount)
	k := o.findK(sigma, maxK)
	if o.rankCap > 0 && k > o.rankCap {
		k = o.rankCap
	}
	if k == 0 {
		return zeroRk[T](block.rows, block.cols)
	}

	// Fold Σ into U, then cut both factors at rank k.
	for col := 0; col < k; col++ {
		u.ColumnView(col).Scale(scalar.FromFloat[T](sigma[col]))
	}
	a := newMat[T](rowCount, k)
	a.CopyWindowAtOffset(u, 0, 0, rowCount, k)
	b := newMat[T](colCount, k)
	for j := 0; j < colCount; j++ {
		for col := 0; col < k; col++ {
			b.Set(j, col, vt.At(col, j))
		}
	}

	return &Rk[T]{A: a, B: b, Rows: block.rows, Cols: block.cols, Method: Svd}
}
