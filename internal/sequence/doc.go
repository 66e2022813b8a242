// Package sequence computes terms of the Fibonacci recurrence
// f(0)=0, f(1)=1, f(n)=f(n-1)+f(n-2).
//
// The zero-based convention is fixed: F(0)=0 and F(1)=1. All calculators
// in this package produce identical values for every index; the
// orchestration layer cross-checks them at runtime.
//
// Three interchangeable implementations are provided behind the Calculator
// interface:
//
//   - iterative: two rolling accumulators, O(n) time and O(1) space.
//   - recursive: the textbook recurrence, O(2^n) time. Guarded by a
//     recursion limit because an index beyond a few dozen terms would run
//     effectively forever; it exists to demonstrate exponential blow-up
//     against the other forms, not for production use.
//   - fast-doubling: O(log n) doubling identities, the default for large
//     indices.
//
// Results are *big.Int since F(93) already overflows uint64.
package sequence
