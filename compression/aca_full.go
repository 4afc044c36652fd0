// Package compression: full-matrix adaptive cross approximation.

package compression

import (
	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// compressAcaFull assembles the block into a working matrix and peels
// rank-1 crosses off it: at each step the globally largest remaining
// entry (i*, j*) pivots, column j* joins A, row i* scaled by the pivot
// joins B, and the cross is subtracted from the working copy. The loop
// stops when the pivot vanishes, when ‖a‖²·‖b‖² drops below ε²·‖S‖² of
// the running norm estimate, or at the rank cap. The working matrix is
// consumed by the call.
func compressAcaFull[T scalar.Scalar](block *blockAssembly[T], o *Options) *Rk[T] {
	m := block.assemble()
	rowCount, colCount := m.Rows(), m.Cols()
	eps := o.epsilon
	estimate := 0.0

	maxK := min(rowCount, colCount)
	if o.rankCap > 0 {
		maxK = min(maxK, o.rankCap)
	}
	tmpA := newMat[T](rowCount, maxK)
	tmpB := newMat[T](colCount, maxK)

	k := 0
	for nu := 0; nu < maxK; nu++ {
		iNu, jNu := argmaxAbs(m)
		delta := m.At(iNu, jNu)
		if scalar.AbsSqr(delta) == 0 {
			break
		}

		// Record the cross: a ← column j*, b ← row i* / pivot.
		aNu := tmpA.ColumnView(nu)
		copy(aNu.Data(), m.ColumnView(jNu).Data())
		bNu := tmpB.ColumnView(nu)
		for j := 0; j < colCount; j++ {
			bNu.Data()[j] = m.At(iNu, j) / delta
		}

		m.Ger(scalar.FromFloat[T](-1), aNu, bNu)

		var abNorm2 float64
		estimate, abNorm2 = crossEstimate(estimate, aNu, bNu, columnViews(tmpA, nu), columnViews(tmpB, nu), nu-1)
		k = nu + 1

		// ‖a‖·‖b‖ < ε·‖S‖, squared on both sides.
		if abNorm2 < eps*eps*estimate {
			break
		}
	}

	if k == 0 {
		return zeroRk[T](block.rows, block.cols)
	}

	a := newMat[T](rowCount, k)
	a.CopyWindowAtOffset(tmpA, 0, 0, rowCount, k)
	b := newMat[T](colCount, k)
	b.CopyWindowAtOffset(tmpB, 0, 0, colCount, k)

	return &Rk[T]{A: a, B: b, Rows: block.rows, Cols: block.cols, Method: AcaFull}
}

// columnViews borrows the first count columns of m as vectors.
func columnViews[T scalar.Scalar](m *dense.Matrix[T], count int) []*dense.Vector[T] {
	views := make([]*dense.Vector[T], count)
	for i := 0; i < count; i++ {
		views[i] = m.ColumnView(i)
	}

	return views
}
