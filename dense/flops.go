// Package dense: global floating-point-operation counter.
//
// The counter is process-wide and monotonic while no reset is issued.
// Increments are best-effort observability: they are atomic individually
// but not transactional with the work they describe, which is all the
// surrounding performance tooling needs.

package dense

import "sync/atomic"

// flopCount accumulates weighted flops across all goroutines.
var flopCount atomic.Int64

// addFlops adds n weighted operations to the global counter.
func addFlops(n int64) {
	flopCount.Add(n)
}

// Flops returns the number of weighted floating-point operations counted
// since process start or the last ResetFlops.
func Flops() int64 {
	return flopCount.Load()
}

// ResetFlops zeroes the counter. Intended for benchmarks and tests.
func ResetFlops() {
	flopCount.Store(0)
}
