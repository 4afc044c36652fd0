// Package admissibility decides which row-cluster × column-cluster blocks
// of the H-matrix are eligible for low-rank representation.
//
// Standard implements Hackbusch's geometric condition
//
//	min(diam(rows), diam(cols)) ≤ η · dist(rows, cols)
//
// over lazily cached axis-aligned bounding boxes, guarded by a per-method
// element cap (the full-assembly strategies must not see arbitrarily
// large blocks) and a minimum cardinality of 2 per side. TallSkinny is
// the separate pair rule for highly rectangular blocks: each side is
// admissible against the other iff it is ratio times smaller.
//
// The condition never suppresses block creation (IsInert is false) and
// Clean releases the bounding box a query may have cached on a node.
package admissibility
