// Package workload holds sample functions written against purefn.Caller.
//
// Fib and EditDistance are pure, so wrapping them in purefn.Memoized changes
// only how long they take. Random is impure and its memoized results differ
// from direct ones. Seeded is deterministic for a fixed Seed.
package workload
