package purefn

var _ Caller[int, int] = (*Memoized[int, int])(nil)

// Memoized calls the wrapped function only on a cache miss and reuses the
// stored result for every later call with an equal argument.
type Memoized[K comparable, V any] struct {
	fn       func(Caller[K, V], K) V
	store    Store[K, V]
	observer Observer[K]
	clone    func(V) V
}

// NewMemoized wraps fn with an in-memory map cache and no observer.
func NewMemoized[K comparable, V any](fn func(Caller[K, V], K) V) *Memoized[K, V] {
	return NewMemoizedWith(fn, Config[K, V]{})
}

// NewMemoizedWith wraps fn using the store, observer and clone function in cfg.
// Zero fields fall back to defaults.
func NewMemoizedWith[K comparable, V any](fn func(Caller[K, V], K) V, cfg Config[K, V]) *Memoized[K, V] {
	cfg = cfg.normalize()
	return &Memoized[K, V]{
		fn:       fn,
		store:    cfg.Store,
		observer: cfg.Observer,
		clone:    cfg.Clone,
	}
}

// Call returns the cached result for arg, computing and storing it on a miss.
//
// fn may call back into m with other arguments. If fn panics the panic
// propagates and nothing is stored for arg.
func (m *Memoized[K, V]) Call(arg K) V {
	if v, ok := m.store.Load(arg); ok {
		m.observer.Hit(arg)
		return m.out(v)
	}

	m.observer.Miss(arg)
	v := m.fn(m, arg)
	if !m.store.InsertIfAbsent(arg, v) {
		// a re-entrant call already committed arg; the first value stays.
		v, _ = m.store.Load(arg)
	}
	return m.out(v)
}

// Cached reports whether a result for arg has been committed.
func (m *Memoized[K, V]) Cached(arg K) bool {
	_, ok := m.store.Load(arg)
	return ok
}

// Len returns the number of cached results.
func (m *Memoized[K, V]) Len() int {
	return m.store.Len()
}

func (m *Memoized[K, V]) out(v V) V {
	if m.clone == nil {
		return v
	}
	return m.clone(v)
}
