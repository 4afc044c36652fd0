// Package compression_test: the block-assembly adapter — hint routing and
// the prepare/release pairing.
package compression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/compression"
)

// TestOraclePairingAllMethods: one PrepareBlock, one ReleaseBlock per
// Compress call, across strategies and early exits (zero and low-rank
// blocks alike).
func TestOraclePairingAllMethods(t *testing.T) {
	entries := []func(i, j int) float64{
		func(i, j int) float64 { return 0 },                                 // rank 0, earliest exits
		func(i, j int) float64 { return float64(i+1) * float64(j+1) },       // rank 1
		func(i, j int) float64 { return float64(i*j) + float64((i+j)%3) },   // generic
		func(i, j int) float64 { return float64(i%2) * float64((j+1)%2+1) }, // null rows
	}
	rows := cluster.NewIndexSet(0, 9)
	cols := cluster.NewIndexSet(0, 7)

	for _, method := range allMethods {
		for _, entry := range entries {
			oracle := newFuncOracle(entry)
			compression.Compress(method, oracle, rows, cols, compression.WithEpsilon(1e-8))
			require.Equal(t, 1, oracle.prepared, "method %s", method)
			require.Equal(t, 1, oracle.released, "method %s", method)
		}
	}
}

// TestOraclePairingWithValidation: the validation pass assembles again
// but never re-prepares.
func TestOraclePairingWithValidation(t *testing.T) {
	oracle := newFuncOracle(func(i, j int) float64 { return float64(i+1) * float64(j+1) })
	compression.Compress(compression.Svd, oracle,
		cluster.NewIndexSet(0, 4), cluster.NewIndexSet(0, 4),
		compression.WithValidation())

	require.Equal(t, 1, oracle.prepared)
	require.Equal(t, 1, oracle.released)
	require.Equal(t, 2, oracle.assembled) // compression + validation
}

// TestSparseNullRowsSkipOracle: rows flagged null by the sparse hints
// never reach GetRow, and the result still matches the block.
func TestSparseNullRowsSkipOracle(t *testing.T) {
	const n = 8
	// Odd rows are structurally zero.
	entry := func(i, j int) float64 {
		if i%2 == 1 {
			return 0
		}

		return float64(i+1) * float64(j+1)
	}
	oracle := newFuncOracle(entry)
	oracle.blockType = compression.BlockSparse
	oracle.nullRow = func(i int) bool { return i%2 == 1 }

	rk := compression.Compress(compression.AcaPartial, oracle,
		cluster.NewIndexSet(0, n), cluster.NewIndexSet(0, n),
		compression.WithEpsilon(1e-10))

	require.Equal(t, 1, rk.Rank()) // even rows form a rank-1 block
	for row := range oracle.rowCalls {
		require.Zero(t, row%2, "null row %d reached the oracle", row)
	}
}

// TestSparseNullColsSkipOracle: the column mirror, driven through ACA+'s
// column scans.
func TestSparseNullColsSkipOracle(t *testing.T) {
	const n = 8
	entry := func(i, j int) float64 {
		if j >= 2 {
			return 0
		}

		return float64(i+1) * float64(j+1)
	}
	oracle := newFuncOracle(entry)
	oracle.blockType = compression.BlockSparse
	oracle.nullCol = func(j int) bool { return j >= 2 }

	rk := compression.Compress(compression.AcaPlus, oracle,
		cluster.NewIndexSet(0, n), cluster.NewIndexSet(0, n),
		compression.WithEpsilon(1e-10))

	require.Equal(t, 1, rk.Rank())
	for col := range oracle.colCalls {
		require.Less(t, col, 2, "null col %d reached the oracle", col)
	}
}

// TestNullBlockSkipsAssembly: a BlockNull hint assembles to zeros without
// an oracle callback, so the full-assembly strategies return rank 0
// without ever consulting the block function.
func TestNullBlockSkipsAssembly(t *testing.T) {
	for _, method := range []compression.Method{compression.Svd, compression.AcaFull} {
		oracle := newFuncOracle(func(i, j int) float64 { return 42 }) // must not be consulted
		oracle.blockType = compression.BlockNull

		rk := compression.Compress(method, oracle,
			cluster.NewIndexSet(0, 5), cluster.NewIndexSet(0, 5))

		require.Equal(t, 0, rk.Rank(), "method %s", method)
		require.Zero(t, oracle.assembled, "method %s", method)
		require.Empty(t, oracle.rowCalls, "method %s", method)
		require.Empty(t, oracle.colCalls, "method %s", method)
	}
}
