package purefn

// Config customizes a Memoized. The zero value is valid.
type Config[K comparable, V any] struct {
	Store    Store[K, V] // default: NewMapStore
	Observer Observer[K] // default: NopObserver
	// Clone duplicates a cached value before it is returned, for values that
	// share memory (slices, maps, pointers). nil returns the value as is.
	Clone func(V) V
}

func (c Config[K, V]) normalize() Config[K, V] {
	if c.Store == nil {
		c.Store = NewMapStore[K, V]()
	}
	if c.Observer == nil {
		c.Observer = NopObserver[K]{}
	}
	return c
}
