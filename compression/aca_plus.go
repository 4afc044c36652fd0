// Package compression: dual-reference pivoted ACA.

package compression

import (
	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// compressAcaPlus steers the cross search with two reference residues: a
// full column aRef and a full row bRef, intersecting at (iRef, jRef). At
// each step the larger of the two reference maxima decides whether the
// pivot hunt starts from a row or a column; the winning cross is deflated,
// scaled and appended, and the references are downdated by the new pair.
// A reference that dies — it went to zero, or its index was just consumed
// as a pivot — is replaced (fresh free column for aRef, minimum-residue
// row for bRef); failing to find a replacement ends the loop cleanly.
func compressAcaPlus[T scalar.Scalar](block *blockAssembly[T], o *Options) *Rk[T] {
	eps := o.epsilon
	estimate := 0.0

	rowCount := block.rows.Size()
	colCount := block.cols.Size()
	maxK := min(rowCount, colCount)

	bRef := newVec[T](colCount)
	aRef := newVec[T](rowCount)
	rowFree := newFreeSet(rowCount)
	colFree := newFreeSet(colCount)
	var aCols, bCols []*dense.Vector[T]

	var zero T
	one := scalar.FromFloat[T](1)

	jRef := findCol(block, colFree, aRef)
	if jRef == -1 {
		// Every column is zero: the block is numerically null.
		return zeroRk[T](block.rows, block.cols)
	}

	// The reference row intersects the reference column at its argmin.
	iRef := findMinRow(block, rowFree, aCols, bCols, aRef, bRef)
	if iRef == -1 {
		return zeroRk[T](block.rows, block.cols)
	}

	k := 0
	for {
		bVec := newVec[T](colCount)
		aVec := newVec[T](rowCount)

		iStar := aRef.AbsoluteMaxIndex()
		jStar := bRef.AbsoluteMaxIndex()

		if scalar.AbsSqr(aRef.Data()[iStar]) > scalar.AbsSqr(bRef.Data()[jStar]) {
			// i* is fixed; hunt j* across the full row residue.
			block.getRow(iStar, bVec)
			updateRow(bVec, iStar, bCols, aCols, k)
			jStar = bVec.AbsoluteMaxIndex()
			pivot := bVec.Data()[jStar]
			if pivot == zero {
				panic(panicZeroPivot)
			}
			block.getCol(jStar, aVec)
			updateCol(aVec, jStar, aCols, bCols, k)
			aVec.Scale(one / pivot)
		} else {
			// j* is fixed; hunt i* across the full column residue.
			block.getCol(jStar, aVec)
			updateCol(aVec, jStar, aCols, bCols, k)
			iStar = aVec.AbsoluteMaxIndex()
			pivot := aVec.Data()[iStar]
			if pivot == zero {
				panic(panicZeroPivot)
			}
			block.getRow(iStar, bVec)
			updateRow(bVec, iStar, bCols, aCols, k)
			bVec.Scale(one / pivot)
		}

		rowFree[iStar] = false
		colFree[jStar] = false
		aCols = append(aCols, aVec)
		bCols = append(bCols, bVec)

		var abNorm2 float64
		estimate, abNorm2 = crossEstimate(estimate, aVec, bVec, aCols, bCols, k)
		k++

		if abNorm2 < eps*eps*estimate {
			break
		}

		// Downdate the references by the new cross.
		aRef.Axpy(-bCols[k-1].Data()[jRef], aCols[k-1])
		bRef.Axpy(-aCols[k-1].Data()[iRef], bCols[k-1])
		needNewA := isZero(aRef) || jStar == jRef
		needNewB := isZero(bRef) || iStar == iRef

		switch {
		case needNewA && needNewB:
			found := false
			for !found {
				aRef.Clear()
				jRef = findCol(block, colFree, aRef)
				if jRef == -1 {
					break
				}
				updateCol(aRef, jRef, aCols, bCols, k)
				found = !isZero(aRef)
			}
			if !found {
				// No non-zero free column remains: done.
				return crossResult(block, aCols, bCols, k, AcaPlus)
			}
			bRef.Clear()
			iRef = findMinRow(block, rowFree, aCols, bCols, aRef, bRef)
			if iRef == -1 {
				return crossResult(block, aCols, bCols, k, AcaPlus)
			}
		case needNewB:
			bRef.Clear()
			iRef = findMinRow(block, rowFree, aCols, bCols, aRef, bRef)
			if iRef == -1 {
				return crossResult(block, aCols, bCols, k, AcaPlus)
			}
		case needNewA:
			aRef.Clear()
			jRef = findMinCol(block, colFree, aCols, bCols, bRef, aRef)
			if jRef == -1 {
				return crossResult(block, aCols, bCols, k, AcaPlus)
			}
		}

		if k >= maxK {
			break
		}
	}

	return crossResult(block, aCols, bCols, k, AcaPlus)
}

// crossResult packs an accumulated cross basis into the result shape.
func crossResult[T scalar.Scalar](block *blockAssembly[T], aCols, bCols []*dense.Vector[T], k int, method Method) *Rk[T] {
	if k == 0 {
		return zeroRk[T](block.rows, block.cols)
	}

	return &Rk[T]{
		A:      buildFactor(aCols, block.rows.Size(), k),
		B:      buildFactor(bCols, block.cols.Size(), k),
		Rows:   block.rows,
		Cols:   block.cols,
		Method: method,
	}
}
