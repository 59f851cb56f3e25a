// Package purefn provides a memoizing call dispatcher for pure functions.
//
// A wrapped function receives the Caller it is wrapped in, so recursive calls go back
// through the same dispatcher:
//
//	func fib(c purefn.Caller[int, int], n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return c.Call(n-1) + c.Call(n-2)
//	}
//
//	purefn.NewDirect(fib).Call(30)   // re-executes every subproblem
//	purefn.NewMemoized(fib).Call(30) // computes each subproblem once
//
// Memoized forces the developer to ask whether the function is really pure.
// Memoization preserves results only for referentially transparent functions;
// for a function that reads time, I/O or an unseeded random source the memoized
// and direct call sequences diverge.
//
// The cache is unbounded, never evicted and never overwritten: once a key is stored
// its value is fixed for the lifetime of the Memoized.
//
// A Memoized is not safe for concurrent use.
package purefn
