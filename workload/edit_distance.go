package workload

import "github.com/on-the-ground/purecall/purefn"

// Pair is the argument of EditDistance.
type Pair struct {
	A, B string
}

// EditDistance is the recursive Levenshtein distance between p.A and p.B.
func EditDistance(c purefn.Caller[Pair, int], p Pair) int {
	a, b := p.A, p.B
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return c.Call(Pair{a[1:], b[1:]})
	}
	return 1 + min(
		c.Call(Pair{a[1:], b}),
		c.Call(Pair{a, b[1:]}),
		c.Call(Pair{a[1:], b[1:]}),
	)
}
