package purefn_test

import (
	"testing"

	"github.com/on-the-ground/purecall/purefn"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkDirectFib20(b *testing.B) {
	direct := purefn.NewDirect(fib)
	for i := 0; i < b.N; i++ {
		_ = direct.Call(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = purefn.NewMemoized(fib).Call(20)
	}
}

func BenchmarkMemoizedFib20_Warm(b *testing.B) {
	memo := purefn.NewMemoized(fib)
	memo.Call(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = memo.Call(20)
	}
}

type Point struct {
	X, Y float64
}

func naiveDist(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

func BenchmarkNaiveDist(b *testing.B) {
	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = naiveDist(p1, p2)
	}
}

func BenchmarkMemoizedDist(b *testing.B) {
	dist := purefn.NewMemoized(func(_ purefn.Caller[[2]Point, float64], ps [2]Point) float64 {
		return naiveDist(ps[0], ps[1])
	})

	ps := [2]Point{{1.5, 2.5}, {3.0, 4.0}}
	for i := 0; i < b.N; i++ {
		_ = dist.Call(ps)
	}
}
