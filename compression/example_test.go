package compression_test

import (
	"fmt"

	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/compression"
	"github.com/aurelienfalco/hmat-oss/dense"
)

// kernelOracle serves blocks of the smooth kernel 1/(1+|i−j|), the kind
// of interaction an H-matrix compresses well off the diagonal.
type kernelOracle struct{}

func (kernelOracle) PrepareBlock(rows, cols cluster.IndexSet) compression.BlockInfo {
	return compression.BlockInfo{Type: compression.BlockDense}
}

func (kernelOracle) GetRow(rows, cols cluster.IndexSet, row int, _ any, out *dense.Vector[float64]) {
	for j := 0; j < cols.Size(); j++ {
		out.Data()[j] = kernel(rows.Offset()+row, cols.Offset()+j)
	}
}

func (kernelOracle) GetCol(rows, cols cluster.IndexSet, col int, _ any, out *dense.Vector[float64]) {
	for i := 0; i < rows.Size(); i++ {
		out.Data()[i] = kernel(rows.Offset()+i, cols.Offset()+col)
	}
}

func (kernelOracle) Assemble(rows, cols cluster.IndexSet, _ *compression.BlockInfo) *dense.Matrix[float64] {
	m, err := dense.NewMatrix[float64](rows.Size(), cols.Size())
	if err != nil {
		panic(err)
	}
	for j := 0; j < cols.Size(); j++ {
		for i := 0; i < rows.Size(); i++ {
			m.Set(i, j, kernel(rows.Offset()+i, cols.Offset()+j))
		}
	}

	return m
}

func (kernelOracle) ReleaseBlock(*compression.BlockInfo) {}

func kernel(i, j int) float64 {
	d := i - j
	if d < 0 {
		d = -d
	}

	return 1 / (1 + float64(d))
}

// ExampleCompress compresses a well-separated 64×64 block of the kernel
// with ACA+ and reports the storage saving.
func ExampleCompress() {
	rows := cluster.NewIndexSet(0, 64)
	cols := cluster.NewIndexSet(512, 64)

	rk := compression.Compress(compression.AcaPlus, kernelOracle{}, rows, cols,
		compression.WithEpsilon(1e-6))

	dense64 := 64 * 64
	lowRank := (64 + 64) * rk.Rank()
	fmt.Println("compressed:", lowRank < dense64)
	// Output:
	// compressed: true
}
