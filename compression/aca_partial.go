// Package compression: partial adaptive cross approximation.

package compression

import (
	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// compressAcaPartial grows a cross basis without ever assembling the
// block. Each step fetches the current pivot row, deflates it against
// the basis, picks the largest still-free column entry as pivot, scales,
// fetches and deflates that column, and moves the pivot row to the
// largest still-free entry of the column residue. A zero pivot advances
// to the next free row without emitting a pair; running out of free rows
// terminates with the basis built so far. The pivot budget is
// min(rows, cols) fetched rows.
func compressAcaPartial[T scalar.Scalar](block *blockAssembly[T], o *Options) *Rk[T] {
	eps := o.epsilon
	estimate := 0.0

	rowCount := block.rows.Size()
	colCount := block.cols.Size()
	maxK := min(rowCount, colCount)

	rowFree := newFreeSet(rowCount)
	colFree := newFreeSet(colCount)
	rowPivotCount := 0
	var aCols, bCols []*dense.Vector[T]

	var zero T
	one := scalar.FromFloat[T](1)
	i, j, k := 0, 0, 0

	for {
		// Residue of the current pivot row.
		bCol := newVec[T](colCount)
		block.getRow(i, bCol)
		updateRow(bCol, i, bCols, aCols, k)
		rowFree[i] = false
		rowPivotCount++

		// Largest still-free entry of the row residue (starting below
		// zero, so a free column is chosen even when all are zero).
		maxNorm2 := -1.0
		for col := 0; col < colCount; col++ {
			norm2 := scalar.AbsSqr(bCol.Data()[col])
			if colFree[col] && norm2 > maxNorm2 {
				maxNorm2 = norm2
				j = col
			}
		}

		if bCol.Data()[j] == zero {
			// Dead row: move on to the next free one, or stop with the
			// basis accumulated so far.
			next := nextFree(rowFree)
			if next == -1 {
				break
			}
			i = next
		} else {
			bCol.Scale(one / bCol.Data()[j])
			bCols = append(bCols, bCol)

			aCol := newVec[T](rowCount)
			block.getCol(j, aCol)
			updateCol(aCol, j, aCols, bCols, k)
			colFree[j] = false
			aCols = append(aCols, aCol)

			// Next pivot row: largest still-free entry of the column
			// residue.
			maxNorm2 = -1.0
			for row := 0; row < rowCount; row++ {
				norm2 := scalar.AbsSqr(aCol.Data()[row])
				if rowFree[row] && norm2 > maxNorm2 {
					maxNorm2 = norm2
					i = row
				}
			}

			var abNorm2 float64
			estimate, abNorm2 = crossEstimate(estimate, aCol, bCol, aCols, bCols, k)
			k++

			if abNorm2 < eps*eps*estimate {
				break
			}
		}

		if rowPivotCount >= maxK {
			break
		}
	}

	if k == 0 {
		return zeroRk[T](block.rows, block.cols)
	}

	return &Rk[T]{
		A:      buildFactor(aCols, rowCount, k),
		B:      buildFactor(bCols, colCount, k),
		Rows:   block.rows,
		Cols:   block.cols,
		Method: AcaPartial,
	}
}

// newFreeSet returns an all-free pivot set.
func newFreeSet(n int) []bool {
	free := make([]bool, n)
	for i := range free {
		free[i] = true
	}

	return free
}

// nextFree returns the first free index, or -1.
func nextFree(free []bool) int {
	for i, ok := range free {
		if ok {
			return i
		}
	}

	return -1
}
