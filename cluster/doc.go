// Package cluster holds the pieces of the cluster tree the compression
// core actually reads: contiguous index sets identifying blocks, node
// data carrying the point coordinates of the indexed degrees of freedom,
// and axis-aligned bounding boxes with the diameter/distance pair the
// admissibility predicate is phrased in.
//
// A Node caches its bounding box in a write-once-observable scratch slot:
// the first BoundingBox call installs it, Clean releases it. Callers that
// issue admissibility queries from several goroutines must serialize the
// first visit per node or precompute the boxes.
package cluster
