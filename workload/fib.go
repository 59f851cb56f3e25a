package workload

import "github.com/on-the-ground/purecall/purefn"

// Fib is the naive doubly recursive Fibonacci function. Every recursive step
// goes through c, so under purefn.Direct it runs in exponential time and under
// purefn.Memoized in linear time.
func Fib(c purefn.Caller[int, int], n int) int {
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return c.Call(n-1) + c.Call(n-2)
	}
}

// FibCalls is the number of Fib invocations a direct Call(n) performs: 2*F(n+1)-1.
func FibCalls(n int) int {
	a, b := 0, 1
	for i := 0; i < n+1; i++ {
		a, b = b, a+b
	}
	return 2*a - 1
}
