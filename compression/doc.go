// Package compression turns an implicitly defined matrix block into a
// rank-k factorization A·Bᵀ within a prescribed relative Frobenius
// tolerance.
//
// Four strategies share one assembly contract and one result shape:
//
//   - Svd        — assemble the block, truncate its full SVD;
//   - AcaFull    — assemble the block, peel rank-1 crosses off the dense
//     working copy (destroying it) until the norm estimate converges;
//   - AcaPartial — never assemble; grow the cross basis from rows and
//     columns fetched on demand, with free/used pivot bookkeeping;
//   - AcaPlus    — partial ACA steered by a reference row and a reference
//     column, picking pivots across a full row and column at once.
//
// Blocks are reached through the Oracle contract. The adapter in this
// package memoizes the per-block hints returned by PrepareBlock (sparse
// null-row/null-column predicates, opaque payload) and guarantees the
// paired ReleaseBlock runs exactly once on every exit path.
//
// Compress is the single entry point: it selects the strategy, runs it,
// and — when validation is enabled — measures the factorization against a
// full assembly, logging and optionally dumping blocks that miss the
// configured threshold. A numerically zero block yields the rank-0 result
// regardless of the strategy.
package compression
