package purefn

// Caller is anything that can be invoked with an argument to produce a result.
type Caller[K, V any] interface {
	Call(arg K) V
}

var _ Caller[int, int] = Direct[int, int]{}

// Direct calls the wrapped function on every Call. It never caches.
type Direct[K, V any] struct {
	fn func(Caller[K, V], K) V
}

// NewDirect wraps fn without caching.
func NewDirect[K, V any](fn func(Caller[K, V], K) V) Direct[K, V] {
	return Direct[K, V]{fn: fn}
}

func (d Direct[K, V]) Call(arg K) V {
	return d.fn(d, arg)
}
