package workload

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// Measure runs f and returns the wall-clock span it took.
func Measure(f func()) TimeSpan {
	start := time.Now()
	f()
	return timespan.BetweenTimes(start, time.Now())
}
