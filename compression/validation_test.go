// Package compression_test: the validation pass and its dump side-effects.
package compression_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelienfalco/hmat-oss/cluster"
	"github.com/aurelienfalco/hmat-oss/compression"
	"github.com/aurelienfalco/hmat-oss/dense"
)

// TestValidationWithinToleranceNoDump: an accurate factorization leaves
// the dump directory untouched.
func TestValidationWithinToleranceNoDump(t *testing.T) {
	dir := t.TempDir()
	oracle := newFuncOracle(func(i, j int) float64 { return float64(i+1) * float64(j+2) })

	rk := compression.Compress(compression.Svd, oracle,
		cluster.NewIndexSet(0, 8), cluster.NewIndexSet(0, 8),
		compression.WithEpsilon(1e-10),
		compression.WithValidation(),
		compression.WithValidationDump(dir))

	require.Equal(t, 1, rk.Rank())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries) // no dump within tolerance
}

// TestValidationMissDumpsAndReturns: a factorization forced out of
// tolerance produces Rk_/Full_ dumps in the block's name, reruns when
// asked, and still returns the factorization unchanged.
func TestValidationMissDumpsAndReturns(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(7))
	sample := make(map[[2]int]float64)
	entry := func(i, j int) float64 {
		key := [2]int{i, j}
		if _, ok := sample[key]; !ok {
			sample[key] = rng.NormFloat64() // full-rank random block
		}

		return sample[key]
	}
	oracle := newFuncOracle(entry)

	rows := cluster.NewIndexSet(0, 8)
	cols := cluster.NewIndexSet(0, 8)
	rk := compression.Compress(compression.AcaFull, oracle, rows, cols,
		compression.WithEpsilon(1e-12),
		compression.WithRankCap(1), // rank 1 cannot carry a random 8×8 block
		compression.WithValidation(),
		compression.WithValidationErrorThreshold(1e-6),
		compression.WithValidationReRun(),
		compression.WithValidationDump(dir))

	require.Equal(t, 1, rk.Rank()) // the miss never alters the result
	require.Equal(t, compression.AcaFull, rk.Method)

	desc := rows.Description() + "x" + cols.Description()
	rkDump, err := dense.MatrixFromFile[float64](filepath.Join(dir, "Rk_"+desc))
	require.NoError(t, err)
	fullDump, err := dense.MatrixFromFile[float64](filepath.Join(dir, "Full_"+desc))
	require.NoError(t, err)

	// The Full dump is the assembled block; the Rk dump is A·Bᵀ.
	require.Equal(t, 8, fullDump.Rows())
	require.InDelta(t, entry(0, 0), fullDump.At(0, 0), 1e-15)
	eval := rk.Eval()
	require.InDelta(t, eval.At(3, 4), rkDump.At(3, 4), 1e-15)

	// PrepareBlock/ReleaseBlock stay paired 1:1 through miss + rerun.
	require.Equal(t, 1, oracle.prepared)
	require.Equal(t, 1, oracle.released)
}
