// Package admissibility_test covers the Hackbusch threshold, the
// tall-and-skinny pair rule, the size guards and the cleanup hook.
package admissibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelienfalco/hmat-oss/admissibility"
	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/compression"
)

// lineNode builds a node of count points spread along x starting at x0,
// spanning one unit (diameter 1 along x).
func lineNode(offset, count int, x0 float64) *cluster.Node {
	points := make([][]float64, count)
	for i := range points {
		points[i] = []float64{x0 + float64(i)/float64(count-1), 0, 0}
	}

	return cluster.NewNode(cluster.NewIndexSet(offset, count), points)
}

// TestHackbuschThreshold pins the admissibility flip around
// min(diam) = η·dist for two unit-diameter clusters and η = 2:
// distance 0.4 rejects, distance 0.6 accepts.
func TestHackbuschThreshold(t *testing.T) {
	cond := admissibility.NewStandard(admissibility.WithEta(2))

	rows := lineNode(0, 10, 0)
	near := lineNode(10, 10, 1.4) // gap 0.4: 1 > 2·0.4
	far := lineNode(10, 10, 1.6)  // gap 0.6: 1 ≤ 2·0.6

	require.False(t, cond.IsAdmissible(rows, near))
	require.True(t, cond.IsAdmissible(rows, far))
}

// TestAdmissibilitySymmetry verifies isAdmissible(R,C) = isAdmissible(C,R).
func TestAdmissibilitySymmetry(t *testing.T) {
	cond := admissibility.NewStandard()
	a := lineNode(0, 12, 0)
	b := lineNode(12, 5, 3)

	require.Equal(t, cond.IsAdmissible(a, b), cond.IsAdmissible(b, a))

	c := lineNode(17, 5, 0.9) // close pair, both orders
	require.Equal(t, cond.IsAdmissible(a, c), cond.IsAdmissible(c, a))
}

// TestSmallCardinalityRejected verifies sides of cardinality < 2 are
// never admissible.
func TestSmallCardinalityRejected(t *testing.T) {
	cond := admissibility.NewStandard()
	single := cluster.NewNode(cluster.NewIndexSet(0, 1), [][]float64{{0, 0, 0}})
	other := lineNode(1, 10, 5)

	require.False(t, cond.IsAdmissible(single, other))
	require.False(t, cond.IsAdmissible(other, single))
}

// TestMaxElementsGuard verifies the element cap applies to the
// full-assembly strategies and not to the partial ones.
func TestMaxElementsGuard(t *testing.T) {
	rows := lineNode(0, 30, 0)
	cols := lineNode(30, 30, 10) // well separated: admissible but 900 elements

	svdCond := admissibility.NewStandard(
		admissibility.WithMethod(compression.Svd),
		admissibility.WithMaxElementsPerBlock(100))
	require.False(t, svdCond.IsAdmissible(rows, cols))

	acaCond := admissibility.NewStandard(
		admissibility.WithMethod(compression.AcaPartial),
		admissibility.WithMaxElementsPerBlock(100))
	require.True(t, acaCond.IsAdmissible(rows, cols))
}

// TestAlwaysOverride verifies the η-free acceptance of touching clusters.
func TestAlwaysOverride(t *testing.T) {
	rows := lineNode(0, 10, 0)
	cols := lineNode(10, 10, 0.5) // overlapping: Hackbusch rejects

	require.False(t, admissibility.NewStandard().IsAdmissible(rows, cols))
	require.True(t, admissibility.NewStandard(admissibility.WithAlways()).IsAdmissible(rows, cols))
}

// TestTallSkinnyPair pins the scenario of the pair rule: cardinalities
// 100 and 10 with ratio 2 give (false, true).
func TestTallSkinnyPair(t *testing.T) {
	rule := admissibility.NewTallSkinny(admissibility.WithRatio(2))
	rows := lineNode(0, 100, 0)
	cols := lineNode(100, 10, 5)

	rowsOK, colsOK := rule.IsRowsColsAdmissible(rows, cols)
	require.False(t, rowsOK) // 100·2 > 10
	require.True(t, colsOK)  // 10·2 ≤ 100

	// Embedded in the standard condition as well.
	rowsOK, colsOK = admissibility.NewStandard(admissibility.WithRatio(2)).IsRowsColsAdmissible(rows, cols)
	require.False(t, rowsOK)
	require.True(t, colsOK)
}

// TestIsInertAndClean verifies the standard condition never suppresses
// blocks and that Clean drops the cached box.
func TestIsInertAndClean(t *testing.T) {
	cond := admissibility.NewStandard()
	rows := lineNode(0, 10, 0)
	cols := lineNode(10, 10, 5)

	require.False(t, cond.IsInert(rows, cols))

	cond.IsAdmissible(rows, cols) // installs the cached boxes
	first, err := rows.BoundingBox()
	require.NoError(t, err)
	cond.Clean(rows)
	second, err := rows.BoundingBox()
	require.NoError(t, err)
	require.NotSame(t, first, second) // cache was released
}

// TestStandardString pins the report format.
func TestStandardString(t *testing.T) {
	require.Equal(t, "Hackbusch formula, with eta = 3",
		admissibility.NewStandard(admissibility.WithEta(3)).String())
}
