// Package compression: the driver.

package compression

import (
	"math"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

const (
	panicNoCompression = "compression: Compress called with NoCompression"
	panicSVDFailed     = "compression: SVD driver failed"
	panicZeroPivot     = "compression: zero pivot where the cross invariants forbid it"
	panicValidationNaN = "compression: NaN in validation norms"
)

// Compress approximates the block identified by (rows, cols) as a rank-k
// factorization using the selected method. The oracle's PrepareBlock and
// ReleaseBlock are paired exactly once around the run, on every exit path.
// A numerically zero block yields the rank-0 result. Passing
// NoCompression is a programming error and panics, as does an SVD driver
// failure or a NaN surfacing in validation.
func Compress[T scalar.Scalar](method Method, f Oracle[T], rows, cols cluster.IndexSet, opts ...Option) *Rk[T] {
	if method == NoCompression {
		panic(panicNoCompression)
	}
	o := gatherOptions(opts...)

	block := newBlockAssembly(f, rows, cols)
	defer block.release()

	rk := compressWithoutValidation(method, block, o)
	if o.validate {
		validateRk(method, block, rk, o)
	}

	return rk
}

// compressWithoutValidation dispatches to the selected strategy.
func compressWithoutValidation[T scalar.Scalar](method Method, block *blockAssembly[T], o *Options) *Rk[T] {
	switch method {
	case Svd:
		return compressSvd(block, o)
	case AcaFull:
		return compressAcaFull(block, o)
	case AcaPartial:
		return compressAcaPartial(block, o)
	case AcaPlus:
		return compressAcaPlus(block, o)
	}

	panic(panicNoCompression)
}

// validateRk measures the factorization against a full assembly of the
// block. NaN in either norm is fatal. A relative error above the
// configured threshold is reported, optionally reruns the compression
// (for attaching a debugger to the second pass) and optionally dumps both
// the block and its reconstruction. None of this alters the result the
// caller receives.
func validateRk[T scalar.Scalar](method Method, block *blockAssembly[T], rk *Rk[T], o *Options) {
	full := block.assemble()
	if rk.A != nil {
		rk.A.CheckNaN()
		rk.B.CheckNaN()
	}

	rkFull := rk.Eval()
	approxNorm := rkFull.Norm()
	fullNorm := full.Norm()
	if math.IsNaN(approxNorm) || math.IsNaN(fullNorm) {
		_ = rkFull.ToFile(filepath.Join(o.dumpDir, "Rk"))
		_ = full.ToFile(filepath.Join(o.dumpDir, "Full"))
		panic(panicValidationNaN)
	}

	rkFull.Axpy(scalar.FromFloat[T](-1), full)
	diffNorm := rkFull.Norm()
	if diffNorm <= o.errorThreshold*fullNorm {
		return
	}

	desc := rk.Rows.Description() + "x" + rk.Cols.Description()
	klog.InfoS("compression validation above threshold",
		"block", desc,
		"method", method.String(),
		"fullNorm", fullNorm,
		"approxNorm", approxNorm,
		"relativeError", diffNorm/fullNorm,
		"rank", rk.Rank(),
		"maxRank", min(full.Rows(), full.Cols()))

	if o.reRun {
		// A second pass over the same block, for interactive debugging.
		_ = compressWithoutValidation(method, block, o)
	}
	if o.dump {
		if err := rk.Eval().ToFile(filepath.Join(o.dumpDir, "Rk_"+desc)); err != nil {
			klog.ErrorS(err, "compression: dump of the reconstruction failed", "block", desc)
		}
		if err := full.ToFile(filepath.Join(o.dumpDir, "Full_"+desc)); err != nil {
			klog.ErrorS(err, "compression: dump of the full block failed", "block", desc)
		}
	}
}
