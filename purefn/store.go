package purefn

// Store holds memoized results. Implementations must never overwrite a key
// once it is present.
type Store[K comparable, V any] interface {
	Load(key K) (value V, ok bool)
	// InsertIfAbsent stores value under key unless key is already present.
	// It reports whether value was stored.
	InsertIfAbsent(key K, value V) (inserted bool)
	Len() int
}

var _ Store[int, int] = mapStore[int, int]{}

type mapStore[K comparable, V any] struct {
	m map[K]V
}

// NewMapStore returns an unbounded Store backed by a Go map.
func NewMapStore[K comparable, V any]() Store[K, V] {
	return mapStore[K, V]{m: make(map[K]V)}
}

func (s mapStore[K, V]) Load(key K) (v V, ok bool) {
	v, ok = s.m[key]
	return
}

func (s mapStore[K, V]) InsertIfAbsent(key K, value V) bool {
	if _, ok := s.m[key]; ok {
		return false
	}
	s.m[key] = value
	return true
}

func (s mapStore[K, V]) Len() int {
	return len(s.m)
}
