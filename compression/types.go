// Package compression: method tags, block hints and the oracle contract.

package compression

import (
	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/dense"
	"github.com/aurelienfalco/hmat-oss/scalar"
)

// Method selects a compression strategy.
type Method int

const (
	// Svd truncates a full singular value decomposition of the block.
	Svd Method = iota
	// AcaFull runs adaptive cross approximation on the assembled block.
	AcaFull
	// AcaPartial runs ACA on rows and columns fetched on demand.
	AcaPartial
	// AcaPlus runs dual-reference pivoted ACA.
	AcaPlus
	// NoCompression tags rank-0 results; it is not a valid input method.
	NoCompression
)

// String returns the method name used in logs and reports.
func (m Method) String() string {
	switch m {
	case Svd:
		return "Svd"
	case AcaFull:
		return "AcaFull"
	case AcaPartial:
		return "AcaPartial"
	case AcaPlus:
		return "AcaPlus"
	case NoCompression:
		return "NoCompression"
	}

	return "unknown"
}

// BlockType classifies a prepared block.
type BlockType int

const (
	// BlockDense marks an ordinary block: every row and column may carry
	// nonzeros.
	BlockDense BlockType = iota
	// BlockSparse marks a block with structurally null rows or columns,
	// described by the IsNullRow/IsNullCol predicates of its BlockInfo.
	BlockSparse
	// BlockNull marks an entirely zero block; the oracle is not consulted
	// for its entries.
	BlockNull
)

// BlockInfo is the hint record produced by Oracle.PrepareBlock and
// released by the paired Oracle.ReleaseBlock. For BlockSparse blocks the
// two predicates tell which rows/columns are structurally zero; UserData
// is an opaque payload owned by the oracle.
type BlockInfo struct {
	Type      BlockType
	UserData  any
	IsNullRow func(int) bool
	IsNullCol func(int) bool
}

// Oracle evaluates rows, columns or the whole of one block of the
// implicit matrix. GetRow/GetCol write into a caller-supplied vector that
// arrives zeroed; Assemble returns a freshly allocated |rows|×|cols|
// matrix. PrepareBlock and ReleaseBlock bracket every other call on the
// same block, 1:1.
type Oracle[T scalar.Scalar] interface {
	PrepareBlock(rows, cols cluster.IndexSet) BlockInfo
	GetRow(rows, cols cluster.IndexSet, row int, userData any, out *dense.Vector[T])
	GetCol(rows, cols cluster.IndexSet, col int, userData any, out *dense.Vector[T])
	Assemble(rows, cols cluster.IndexSet, info *BlockInfo) *dense.Matrix[T]
	ReleaseBlock(info *BlockInfo)
}
