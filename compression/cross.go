// Package compression: shared cross-approximation helpers.
//
// The ACA variants all speak in terms of residues: a freshly fetched row
// or column minus the contribution of the basis accumulated so far. The
// helpers here keep that arithmetic in one place, together with the
// free-pivot searches ACA+ steers by.

package compression

import (
	"math"

	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// newVec allocates a zeroed vector; block shapes are positive by the
// adapter contract, so a failure is a programming error.
func newVec[T scalar.Scalar](n int) *dense.Vector[T] {
	v, err := dense.NewVector[T](n)
	if err != nil {
		panic(err.Error())
	}

	return v
}

// newMat allocates a zeroed matrix under the same contract.
func newMat[T scalar.Scalar](rows, cols int) *dense.Matrix[T] {
	m, err := dense.NewMatrix[T](rows, cols)
	if err != nil {
		panic(err.Error())
	}

	return m
}

// isZero reports whether v is exactly zero, by inspecting its
// absolute-maximum element.
func isZero[T scalar.Scalar](v *dense.Vector[T]) bool {
	var zero T

	return v.Data()[v.AbsoluteMaxIndex()] == zero
}

// updateRow turns a fetched row into its residue against the current
// basis: rowVec ← rowVec − Σ_{l<k} aCols[l][row]·bCols[l].
func updateRow[T scalar.Scalar](rowVec *dense.Vector[T], row int, bCols, aCols []*dense.Vector[T], k int) {
	for l := 0; l < k; l++ {
		rowVec.Axpy(-aCols[l].Data()[row], bCols[l])
	}
}

// updateCol is the column mirror: colVec ← colVec − Σ_{l<k} bCols[l][col]·aCols[l].
func updateCol[T scalar.Scalar](colVec *dense.Vector[T], col int, aCols, bCols []*dense.Vector[T], k int) {
	for l := 0; l < k; l++ {
		colVec.Axpy(-bCols[l].Data()[col], aCols[l])
	}
}

// argmaxAbs returns the position of the entry of m with the largest
// squared magnitude.
func argmaxAbs[T scalar.Scalar](m *dense.Matrix[T]) (int, int) {
	i, j := 0, 0
	maxNorm := scalar.AbsSqr(m.At(0, 0))
	for col := 0; col < m.Cols(); col++ {
		for row := 0; row < m.Rows(); row++ {
			if norm := scalar.AbsSqr(m.At(row, col)); norm > maxNorm {
				i, j = row, col
				maxNorm = norm
			}
		}
	}

	return i, j
}

// findCol scans the still-free columns in index order for a non-zero one,
// fetching each candidate and consuming it as it goes. Returns the column
// index, with the raw column left in col, or -1 when none remains.
func findCol[T scalar.Scalar](block *blockAssembly[T], colFree []bool, col *dense.Vector[T]) int {
	for j := range colFree {
		if !colFree[j] {
			continue
		}
		col.Clear()
		block.getCol(j, col)
		colFree[j] = false
		if !isZero(col) {
			return j
		}
	}

	return -1
}

// findMinRow picks the free row where |aRef| is minimal, fetches it and
// deflates it against the current basis. Rows whose residue vanishes are
// consumed and the search restarts — the required fallback for near-zero
// rows. Returns the row index with the residue left in row, or -1 when
// the free rows are exhausted.
func findMinRow[T scalar.Scalar](block *blockAssembly[T], rowFree []bool, aCols, bCols []*dense.Vector[T], aRef, row *dense.Vector[T]) int {
	for {
		iRef := -1
		minNorm2 := math.MaxFloat64
		for i := range rowFree {
			if !rowFree[i] {
				continue
			}
			if norm2 := scalar.AbsSqr(aRef.Data()[i]); norm2 < minNorm2 {
				iRef = i
				minNorm2 = norm2
			}
		}
		if iRef == -1 {
			return -1
		}
		row.Clear()
		block.getRow(iRef, row)
		updateRow(row, iRef, bCols, aCols, len(aCols))
		rowFree[iRef] = false
		if !isZero(row) {
			return iRef
		}
	}
}

// findMinCol is the column mirror of findMinRow, steered by bRef.
func findMinCol[T scalar.Scalar](block *blockAssembly[T], colFree []bool, aCols, bCols []*dense.Vector[T], bRef, col *dense.Vector[T]) int {
	for {
		jRef := -1
		minNorm2 := math.MaxFloat64
		for j := range colFree {
			if !colFree[j] {
				continue
			}
			if norm2 := scalar.AbsSqr(bRef.Data()[j]); norm2 < minNorm2 {
				jRef = j
				minNorm2 = norm2
			}
		}
		if jRef == -1 {
			return -1
		}
		col.Clear()
		block.getCol(jRef, col)
		updateCol(col, jRef, aCols, bCols, len(bCols))
		colFree[jRef] = false
		if !isZero(col) {
			return jRef
		}
	}
}

// crossEstimate folds one new pair into the running squared-norm estimate
// of the reconstruction:
//
//	‖S_k‖² = ‖S_{k-1}‖² + 2·Σ_l real(⟨a_k,a_l⟩·⟨b_k,b_l⟩) + ‖a_k‖²·‖b_k‖²
//
// It returns the updated estimate and the ‖a‖²·‖b‖² term the stopping
// criterion compares against.
func crossEstimate[T scalar.Scalar](estimate float64, aVec, bVec *dense.Vector[T], aCols, bCols []*dense.Vector[T], terms int) (float64, float64) {
	newEstimate := 0.0
	for l := 0; l < terms; l++ {
		newEstimate += scalar.RealPart(dense.Dot(aVec, aCols[l]) * dense.Dot(bVec, bCols[l]))
	}
	estimate += 2 * newEstimate
	abNorm2 := aVec.NormSqr() * bVec.NormSqr()
	estimate += abNorm2

	return estimate, abNorm2
}

// buildFactor packs k basis vectors of length n into an n×k matrix.
func buildFactor[T scalar.Scalar](vecs []*dense.Vector[T], n, k int) *dense.Matrix[T] {
	factor := newMat[T](n, k)
	for i := 0; i < k; i++ {
		copy(factor.ColumnView(i).Data(), vecs[i].Data())
	}

	return factor
}
