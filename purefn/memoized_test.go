package purefn_test

import (
	"testing"

	"github.com/on-the-ground/purecall/purefn"
	"github.com/stretchr/testify/assert"
)

func fib(c purefn.Caller[int, int], n int) int {
	if n <= 1 {
		return n
	}
	return c.Call(n-1) + c.Call(n-2)
}

func TestDirect_ReinvokesEveryCall(t *testing.T) {
	count := 0
	direct := purefn.NewDirect(func(_ purefn.Caller[int, int], n int) int {
		count++
		return n * 2
	})

	assert.Equal(t, 4, direct.Call(2))
	assert.Equal(t, 4, direct.Call(2))
	assert.Equal(t, 2, count)
}

func TestMemoized_CachesByArgument(t *testing.T) {
	count := 0
	memo := purefn.NewMemoized(func(_ purefn.Caller[int, int], n int) int {
		count++
		return n * 2
	})

	assert.Equal(t, 4, memo.Call(2))
	assert.Equal(t, 4, memo.Call(2)) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 6, memo.Call(3))
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, memo.Len())
	assert.True(t, memo.Cached(3))
	assert.False(t, memo.Cached(4))
}

func TestMemoized_SameResultAsDirect(t *testing.T) {
	for n := 0; n <= 30; n++ {
		assert.Equal(t, purefn.NewDirect(fib).Call(n), purefn.NewMemoized(fib).Call(n), "n=%d", n)
	}
}

func TestMemoized_RecursiveCallsShareCache(t *testing.T) {
	counter := &purefn.Counter[int]{}
	memo := purefn.NewMemoizedWith(fib, purefn.Config[int, int]{Observer: counter})

	assert.Equal(t, 6765, memo.Call(20))
	assert.Equal(t, 21, counter.Misses) // 0..20 computed once each
	assert.Equal(t, 18, counter.Hits)   // Call(n-2) for n >= 3 was filled by Call(n-1)
	assert.Equal(t, 21, memo.Len())

	counter.Reset()
	assert.Equal(t, 6765, memo.Call(20))
	assert.Equal(t, 1, counter.Hits)
	assert.Equal(t, 0, counter.Misses)
}

func TestMemoized_PanicLeavesNoEntry(t *testing.T) {
	fail := true
	memo := purefn.NewMemoized(func(_ purefn.Caller[string, int], s string) int {
		if fail {
			panic("boom")
		}
		return len(s)
	})

	assert.PanicsWithValue(t, "boom", func() { memo.Call("abc") })
	assert.False(t, memo.Cached("abc"))
	assert.Equal(t, 0, memo.Len())

	fail = false
	assert.Equal(t, 3, memo.Call("abc"))
	assert.True(t, memo.Cached("abc"))
}

func TestMemoized_PanicKeepsCompletedSubproblems(t *testing.T) {
	memo := purefn.NewMemoized(func(c purefn.Caller[int, int], n int) int {
		if n == 0 {
			panic("base case")
		}
		if n == 1 {
			return 1
		}
		return c.Call(n-1) + c.Call(n-2)
	})

	assert.Panics(t, func() { memo.Call(3) })
	assert.True(t, memo.Cached(1))
	assert.False(t, memo.Cached(2))
	assert.False(t, memo.Cached(3))
}

func TestMemoized_ReentrantSameKeyKeepsFirstValue(t *testing.T) {
	depth := 0
	memo := purefn.NewMemoized(func(c purefn.Caller[string, int], s string) int {
		depth++
		if depth == 1 {
			// commits "k" from inside its own computation
			inner := c.Call(s)
			return inner + 100
		}
		return depth
	})

	assert.Equal(t, 2, memo.Call("k"))
	assert.Equal(t, 2, memo.Call("k"))
}

func TestMemoized_CloneOnReturn(t *testing.T) {
	memo := purefn.NewMemoizedWith(
		func(_ purefn.Caller[int, []int], n int) []int {
			return make([]int, n)
		},
		purefn.Config[int, []int]{
			Clone: func(v []int) []int { return append([]int(nil), v...) },
		},
	)

	first := memo.Call(3)
	first[0] = 42
	assert.Equal(t, []int{0, 0, 0}, memo.Call(3))
}

func TestMemoized_CompositeKey(t *testing.T) {
	type point struct{ X, Y int }
	count := 0
	memo := purefn.NewMemoized(func(_ purefn.Caller[point, int], p point) int {
		count++
		return p.X*p.X + p.Y*p.Y
	})

	assert.Equal(t, 25, memo.Call(point{3, 4}))
	assert.Equal(t, 25, memo.Call(point{3, 4}))
	assert.Equal(t, 25, memo.Call(point{4, 3}))
	assert.Equal(t, 2, count)
}
