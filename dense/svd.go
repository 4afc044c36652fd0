// Package dense: full singular value decomposition.
//
// Real kinds run on gonum's LAPACK driver (DGESVD); float32 is promoted
// to float64 working precision for the driver call and the factors are
// rounded back to float32. The column-major ↔ row-major
// duality does all the layout work for free: the SVD of Mᵀ read
// row-major delivers U and Vᵀ of M directly in our buffers.
//
// Complex kinds use a one-sided Jacobi kernel: the pack's LAPACK
// implementation covers float64 only, and one-sided Jacobi is the
// textbook full-accuracy fallback that shares its shape between
// complex64 and complex128 through promotion.

package dense

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"

	"github.com/aurelienfalco/hmat-oss/scalar"
)

// lap is the shared, stateless gonum LAPACK implementation.
var lap lapackgonum.Implementation

// SVD computes the full decomposition m = U·Σ·Vᵀ (Vᴴ for complex kinds).
// It returns U (rows×min), the singular values in descending order, and
// Vᵀ (min×cols). The float64 and contiguous complex128 paths work in
// place and overwrite the receiver; the promoted float32 and complex64
// paths work on copies. Returns
// ErrSVDFailed when the underlying driver does not converge — callers in
// the compression path treat that as fatal.
func (m *Matrix[T]) SVD() (*Matrix[T], []float64, *Matrix[T], error) {
	rows, cols := m.rows, m.cols
	minDim := min(rows, cols)
	u := newMatrix[T](rows, minDim)
	vt := newMatrix[T](minDim, cols)
	sigma := make([]float64, minDim)

	addFlops((scalar.AddOps[T]() + scalar.MulOps[T]()) * 7 * int64(rows) * int64(cols) * int64(minDim))

	var ok bool
	switch data := any(m.data).(type) {
	case []float64:
		ok = gesvdFloat64(rows, cols, data, m.ld, sigma, any(u.data).([]float64), any(vt.data).([]float64))
	case []float32:
		a64 := promoteReal(data, rows, cols, m.ld)
		u64 := make([]float64, rows*minDim)
		vt64 := make([]float64, minDim*cols)
		ok = gesvdFloat64(rows, cols, a64, rows, sigma, u64, vt64)
		demoteReal(u64, any(u.data).([]float32))
		demoteReal(vt64, any(vt.data).([]float32))
	case []complex128:
		ok = jacobiSVD(rows, cols, compactComplex(data, rows, cols, m.ld), sigma, any(u.data).([]complex128), any(vt.data).([]complex128))
	case []complex64:
		a128 := promoteComplex(data, rows, cols, m.ld)
		u128 := make([]complex128, rows*minDim)
		vt128 := make([]complex128, minDim*cols)
		ok = jacobiSVD(rows, cols, a128, sigma, u128, vt128)
		demoteComplex(u128, any(u.data).([]complex64))
		demoteComplex(vt128, any(vt.data).([]complex64))
	}
	if !ok {
		return nil, nil, nil, ErrSVDFailed
	}

	return u, sigma, vt, nil
}

// gesvdFloat64 runs DGESVD on a column-major rows×cols buffer. Reading
// the buffer row-major yields Mᵀ, whose factors land as column-major U
// (rows×min, in the driver's vt slot) and Vᵀ (min×cols, in its u slot).
func gesvdFloat64(rows, cols int, a []float64, lda int, sigma, u, vt []float64) bool {
	minDim := min(rows, cols)

	query := make([]float64, 1)
	if !lap.Dgesvd(lapack.SVDStore, lapack.SVDStore, cols, rows, a, lda, sigma, vt, minDim, u, rows, query, -1) {
		return false
	}
	work := make([]float64, int(query[0])+1)

	return lap.Dgesvd(lapack.SVDStore, lapack.SVDStore, cols, rows, a, lda, sigma, vt, minDim, u, rows, work, len(work))
}

// jacobiSweeps caps the one-sided Jacobi iteration.
const jacobiSweeps = 60

// jacobiConvergence is the relative off-diagonal threshold on |γ|²
// against α·β below which a column pair counts as orthogonal.
const jacobiConvergence = 1e-28

// jacobiSVD runs one-sided Jacobi on a compact column-major rows×cols
// complex buffer (destroyed), producing U (rows×min), descending singular
// values and Vᴴ (min×cols). Returns false when the sweep cap is reached
// before all column pairs are orthogonal.
func jacobiSVD(rows, cols int, w []complex128, sigma []float64, u, vt []complex128) bool {
	// v accumulates the product of the column rotations; at convergence
	// it is the right singular-vector basis V.
	v := make([]complex128, cols*cols)
	for j := 0; j < cols; j++ {
		v[j+j*cols] = 1
	}

	converged := false
	for sweep := 0; sweep < jacobiSweeps && !converged; sweep++ {
		converged = true
		for p := 0; p < cols-1; p++ {
			for q := p + 1; q < cols; q++ {
				wp := w[p*rows : p*rows+rows]
				wq := w[q*rows : q*rows+rows]
				var alpha, beta float64
				var gamma complex128
				for i := 0; i < rows; i++ {
					alpha += real(wp[i])*real(wp[i]) + imag(wp[i])*imag(wp[i])
					beta += real(wq[i])*real(wq[i]) + imag(wq[i])*imag(wq[i])
					gamma += cmplxConj(wp[i]) * wq[i]
				}
				gammaSqr := real(gamma)*real(gamma) + imag(gamma)*imag(gamma)
				if gammaSqr <= jacobiConvergence*alpha*beta || gammaSqr == 0 {
					continue
				}
				converged = false

				// Unitary 2×2 rotation diagonalizing the Gram pair:
				// phase-split γ, then the real Jacobi angle.
				absGamma := math.Sqrt(gammaSqr)
				phase := gamma / complex(absGamma, 0)
				tau := (beta - alpha) / (2 * absGamma)
				t := math.Copysign(1, tau) / (math.Abs(tau) + math.Hypot(1, tau))
				c := 1 / math.Hypot(1, t)
				s := c * t

				rotateColumns(wp, wq, c, s, phase)
				rotateColumns(v[p*cols:p*cols+cols], v[q*cols:q*cols+cols], c, s, phase)
			}
		}
	}
	if !converged {
		return false
	}

	// Column norms are the singular values; order them descending.
	minDim := min(rows, cols)
	norms := make([]float64, cols)
	order := make([]int, cols)
	for j := 0; j < cols; j++ {
		var n2 float64
		for i := 0; i < rows; i++ {
			n2 += real(w[j*rows+i])*real(w[j*rows+i]) + imag(w[j*rows+i])*imag(w[j*rows+i])
		}
		norms[j] = math.Sqrt(n2)
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool { return norms[order[a]] > norms[order[b]] })

	for j := 0; j < minDim; j++ {
		src := order[j]
		sigma[j] = norms[src]
		if sigma[j] > 0 {
			inv := complex(1/sigma[j], 0)
			for i := 0; i < rows; i++ {
				u[j*rows+i] = w[src*rows+i] * inv
			}
		}
		for i := 0; i < cols; i++ {
			// Vᴴ row j is the conjugate of V column src.
			vt[j+i*minDim] = cmplxConj(v[src*cols+i])
		}
	}

	return true
}

// rotateColumns applies the complex Jacobi rotation to a column pair:
// p' = c·p − s·conj(phase)·q, q' = s·p + c·conj(phase)·q.
func rotateColumns(p, q []complex128, c, s float64, phase complex128) {
	cc := complex(c, 0)
	sc := complex(s, 0)
	pc := cmplxConj(phase)
	for i := range p {
		pi, qi := p[i], q[i]
		p[i] = cc*pi - sc*pc*qi
		q[i] = sc*pi + cc*pc*qi
	}
}

func cmplxConj(x complex128) complex128 {
	return complex(real(x), -imag(x))
}

// promoteReal compacts a strided float32 buffer into contiguous float64.
func promoteReal(a []float32, rows, cols, lda int) []float64 {
	out := make([]float64, rows*cols)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			out[row+col*rows] = float64(a[row+col*lda])
		}
	}

	return out
}

func demoteReal(src []float64, dst []float32) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}

// promoteComplex compacts a strided complex64 buffer into contiguous
// complex128.
func promoteComplex(a []complex64, rows, cols, lda int) []complex128 {
	out := make([]complex128, rows*cols)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			out[row+col*rows] = complex128(a[row+col*lda])
		}
	}

	return out
}

func demoteComplex(src []complex128, dst []complex64) {
	for i, v := range src {
		dst[i] = complex64(v)
	}
}

// compactComplex returns a contiguous copy of a strided complex128 buffer;
// already-contiguous buffers are reused in place.
func compactComplex(a []complex128, rows, cols, lda int) []complex128 {
	if lda == rows {
		return a[:rows*cols]
	}
	out := make([]complex128, rows*cols)
	for col := 0; col < cols; col++ {
		copy(out[col*rows:col*rows+rows], a[col*lda:col*lda+rows])
	}

	return out
}
