// Package cluster: index sets, bounding boxes and node data.

package cluster

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoPoints is returned when a bounding box is requested over an empty
// point set.
var ErrNoPoints = errors.New("cluster: bounding box needs at least one point")

const panicDimensionMismatch = "cluster: points of differing dimension"

// IndexSet identifies a contiguous range of degrees of freedom: the rows
// or columns of a block. Index sets are small values and are passed by
// value throughout the compression core.
type IndexSet struct {
	offset, size int
}

// NewIndexSet builds the index set [offset, offset+size).
func NewIndexSet(offset, size int) IndexSet {
	return IndexSet{offset: offset, size: size}
}

// Offset returns the first index of the set.
func (s IndexSet) Offset() int { return s.offset }

// Size returns the cardinality of the set.
func (s IndexSet) Size() int { return s.size }

// Description renders the set as "offset-end"; it names blocks in
// validation reports and dump filenames.
func (s IndexSet) Description() string {
	return fmt.Sprintf("%d-%d", s.offset, s.offset+s.size)
}

// AABB is an axis-aligned bounding box over a point cloud.
type AABB struct {
	mins, maxs []float64
}

// NewAABB computes the bounding box of the given points. All points must
// share one dimension; an empty cloud yields ErrNoPoints.
func NewAABB(points [][]float64) (*AABB, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	dim := len(points[0])
	box := &AABB{
		mins: make([]float64, dim),
		maxs: make([]float64, dim),
	}
	copy(box.mins, points[0])
	copy(box.maxs, points[0])
	for _, p := range points[1:] {
		if len(p) != dim {
			panic(panicDimensionMismatch)
		}
		for d, x := range p {
			box.mins[d] = math.Min(box.mins[d], x)
			box.maxs[d] = math.Max(box.maxs[d], x)
		}
	}

	return box, nil
}

// Diameter returns the Euclidean length of the box diagonal.
func (b *AABB) Diameter() float64 {
	var sum float64
	for d := range b.mins {
		gap := b.maxs[d] - b.mins[d]
		sum += gap * gap
	}

	return math.Sqrt(sum)
}

// DistanceTo returns the Euclidean distance between the two boxes: zero
// when they overlap, otherwise the norm of the componentwise gaps.
func (b *AABB) DistanceTo(other *AABB) float64 {
	var sum float64
	for d := range b.mins {
		gap := math.Max(0, math.Max(other.mins[d]-b.maxs[d], b.mins[d]-other.maxs[d]))
		sum += gap * gap
	}

	return math.Sqrt(sum)
}

// Node is the slice of a cluster-tree node the admissibility predicate
// reads: the index set, the point coordinates of its degrees of freedom,
// and the lazily cached bounding box.
type Node struct {
	set    IndexSet
	points [][]float64
	bbox   *AABB // installed by the first BoundingBox call, freed by Clean
}

// NewNode builds a node over the given index set and coordinates.
func NewNode(set IndexSet, points [][]float64) *Node {
	return &Node{set: set, points: points}
}

// IndexSet returns the node's index set.
func (n *Node) IndexSet() IndexSet { return n.set }

// Size returns the node's cardinality.
func (n *Node) Size() int { return n.set.size }

// Points returns the node's point coordinates.
func (n *Node) Points() [][]float64 { return n.points }

// BoundingBox returns the node's bounding box, computing and caching it
// on first use. The cache cell is written at most once between Clean
// calls; concurrent first visits must be serialized by the caller.
func (n *Node) BoundingBox() (*AABB, error) {
	if n.bbox == nil {
		box, err := NewAABB(n.points)
		if err != nil {
			return nil, err
		}
		n.bbox = box
	}

	return n.bbox, nil
}

// Clean releases the cached bounding box.
func (n *Node) Clean() {
	n.bbox = nil
}
