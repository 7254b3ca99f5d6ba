package memoize

import (
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/rzane/memox/memo"
)

// TimeSpan bounds one run of a computation.
type TimeSpan = timespan.TimeSpan

func newTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Observer receives the events of a wrapped accessor. Observers only watch:
// values and errors flow to the caller unchanged whether or not an observer
// is attached.
type Observer interface {
	On(Event)
}

// Event is a sealed interface over memoization events.
// Only predefined event types (Hit, Computed, Failed) can implement it.
type Event interface {
	Operation() memo.Op
	event()
}

var (
	_ Event = Hit{}
	_ Event = Computed{}
	_ Event = Failed{}
)

// Hit is the event for a call served from the cache.
type Hit struct {
	Op memo.Op
}

func (h Hit) Operation() memo.Op { return h.Op }

// event prevents external packages from implementing Event.
func (Hit) event() {}

// Computed is the event for a computation that ran and was cached.
// Span bounds the run, so an observer can tell what a later Hit saves.
type Computed struct {
	Op   memo.Op
	Span TimeSpan
}

func (c Computed) Operation() memo.Op { return c.Op }
func (Computed) event()               {}

// Failed is the event for a computation that returned an error.
// Nothing was cached; the next call will run the computation again.
type Failed struct {
	Op   memo.Op
	Span TimeSpan
	Err  error
}

func (f Failed) Operation() memo.Op { return f.Op }
func (Failed) event()               {}
