package purefn

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/purecall/log"
	"go.uber.org/zap"
)

// Observer is notified of cache hits and misses. It is a diagnostic side
// channel; it cannot change what Call returns.
type Observer[K any] interface {
	Hit(key K)
	Miss(key K)
}

var _ Observer[int] = NopObserver[int]{}

// NopObserver ignores every event.
type NopObserver[K any] struct{}

func (NopObserver[K]) Hit(K)  {}
func (NopObserver[K]) Miss(K) {}

var _ Observer[int] = (*Counter[int])(nil)

// Counter counts hits and misses.
type Counter[K any] struct {
	Hits   int
	Misses int
}

func (c *Counter[K]) Hit(K)  { c.Hits++ }
func (c *Counter[K]) Miss(K) { c.Misses++ }

// Reset zeroes both counts.
func (c *Counter[K]) Reset() {
	c.Hits, c.Misses = 0, 0
}

var _ Observer[int] = ZapObserver[int]{}

// ZapObserver logs cache events through a zap.Logger. Every entry carries
// the observer's memo_id so interleaved memo tables can be told apart.
type ZapObserver[K any] struct {
	ID     string
	logger *zap.Logger
	level  log.LogLevel
}

// NewZapObserver logs hits and misses at debug level.
func NewZapObserver[K any](logger *zap.Logger) ZapObserver[K] {
	return NewZapObserverAt[K](logger, log.LogDebug)
}

// NewZapObserverAt logs hits and misses at the given level.
func NewZapObserverAt[K any](logger *zap.Logger, level log.LogLevel) ZapObserver[K] {
	id := uuid.New().String()
	return ZapObserver[K]{
		ID:     id,
		logger: logger.With(zap.String("memo_id", id)),
		level:  level,
	}
}

func (o ZapObserver[K]) Hit(key K) {
	log.Emit(o.logger, o.level, "memo cache hit", map[string]any{"key": key})
}

func (o ZapObserver[K]) Miss(key K) {
	log.Emit(o.logger, o.level, "memo cache miss", map[string]any{"key": key})
}

// Observers fans every event out to each observer in order.
func Observers[K any](observers ...Observer[K]) Observer[K] {
	return multiObserver[K](observers)
}

type multiObserver[K any] []Observer[K]

func (m multiObserver[K]) Hit(key K) {
	for _, o := range m {
		o.Hit(key)
	}
}

func (m multiObserver[K]) Miss(key K) {
	for _, o := range m {
		o.Miss(key)
	}
}
