// Package admissibility: the standard (Hackbusch) condition and the
// tall-and-skinny pair rule.

package admissibility

import (
	"fmt"

	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/compression"
)

// Condition is the admissibility contract the H-matrix construction
// drives: a symmetric block predicate, the per-side pair rule, the inert
// veto, and the cleanup hook for per-node caches.
type Condition interface {
	// IsAdmissible reports whether the block rows×cols may be represented
	// low-rank.
	IsAdmissible(rows, cols *cluster.Node) bool
	// IsRowsColsAdmissible reports per-side admissibility for blockwise
	// handling of highly rectangular blocks.
	IsRowsColsAdmissible(rows, cols *cluster.Node) (bool, bool)
	// IsInert reports whether the block must not be created at all.
	IsInert(rows, cols *cluster.Node) bool
	// Clean releases whatever the condition cached on the node.
	Clean(n *cluster.Node)
	fmt.Stringer
}

// TallSkinny is the pair rule alone: a side is admissible against the
// other iff its cardinality times the ratio does not exceed the other's.
type TallSkinny struct {
	ratio float64
}

// NewTallSkinny builds the pair rule; ratio obeys WithRatio validation.
func NewTallSkinny(opts ...Option) *TallSkinny {
	o := gatherOptions(opts...)

	return &TallSkinny{ratio: o.ratio}
}

// IsRowsColsAdmissible flags each side admissible iff it is ratio times
// smaller than the other.
func (t *TallSkinny) IsRowsColsAdmissible(rows, cols *cluster.Node) (bool, bool) {
	rowsAdmissible := float64(rows.Size())*t.ratio <= float64(cols.Size())
	colsAdmissible := float64(cols.Size())*t.ratio <= float64(rows.Size())

	return rowsAdmissible, colsAdmissible
}

// Standard is the Hackbusch condition with the tall-and-skinny pair rule
// and a full-assembly size guard. The zero method (Svd) applies the
// guard; thread the actual compression method with WithMethod so partial
// strategies skip it.
type Standard struct {
	TallSkinny
	eta                 float64
	maxElementsPerBlock int
	always              bool
	method              compression.Method
}

var _ Condition = (*Standard)(nil)

// NewStandard builds the standard condition from the documented defaults
// and the given options.
func NewStandard(opts ...Option) *Standard {
	o := gatherOptions(opts...)

	return &Standard{
		TallSkinny:          TallSkinny{ratio: o.ratio},
		eta:                 o.eta,
		maxElementsPerBlock: o.maxElementsPerBlock,
		always:              o.always,
		method:              o.method,
	}
}

// IsAdmissible applies, in order: the element cap for the full-assembly
// strategies, the minimum cardinality of 2 per side, the always override,
// and Hackbusch's formula over the cached bounding boxes. The predicate
// is symmetric in its arguments.
func (s *Standard) IsAdmissible(rows, cols *cluster.Node) bool {
	fullAlgo := s.method != compression.AcaPartial && s.method != compression.AcaPlus
	if fullAlgo && rows.Size()*cols.Size() > s.maxElementsPerBlock {
		return false
	}
	if rows.Size() < 2 || cols.Size() < 2 {
		return false
	}
	if s.always {
		return true
	}

	rowsBox, err := rows.BoundingBox()
	if err != nil {
		return false
	}
	colsBox, err := cols.BoundingBox()
	if err != nil {
		return false
	}

	return min(rowsBox.Diameter(), colsBox.Diameter()) <= s.eta*rowsBox.DistanceTo(colsBox)
}

// IsInert never suppresses block creation.
func (s *Standard) IsInert(rows, cols *cluster.Node) bool {
	return false
}

// Clean releases the bounding box cached on the node.
func (s *Standard) Clean(n *cluster.Node) {
	n.Clean()
}

// String names the condition in construction logs.
func (s *Standard) String() string {
	return fmt.Sprintf("Hackbusch formula, with eta = %g", s.eta)
}
