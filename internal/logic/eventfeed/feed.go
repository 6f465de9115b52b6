package eventfeed

import (
	"sync"
	"sync/atomic"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

const minFeedCapacity = 1

// Feed is a bounded event queue with drop-oldest overflow: publishing
// never blocks, the size never exceeds the capacity, and consumers can
// see how much was lost through the drop counter.
type Feed struct {
	mu       sync.Mutex
	buf      []Event
	capacity int
	dropped  atomic.Uint64
}

// NewFeed creates a feed holding at most capacity events.
func NewFeed(capacity int) *Feed {
	if capacity < minFeedCapacity {
		capacity = minFeedCapacity
	}

	return &Feed{
		buf:      make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Publish appends an event, dropping the oldest queued event when the
// feed is full.
func (f *Feed) Publish(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.buf) >= f.capacity {
		copy(f.buf, f.buf[1:])
		f.buf = f.buf[:len(f.buf)-1]
		f.dropped.Add(1)
		metrics.RecordEventDropped()
	}

	f.buf = append(f.buf, ev)
}

// Drain returns all queued events in publish order and empties the
// feed. Each event is delivered exactly once.
func (f *Feed) Drain() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.buf) == 0 {
		return nil
	}

	out := make([]Event, len(f.buf))
	copy(out, f.buf)
	f.buf = f.buf[:0]

	return out
}

// Dropped returns the total number of events dropped so far. The
// counter only ever grows.
func (f *Feed) Dropped() uint64 {
	return f.dropped.Load()
}

// Len returns the number of queued events.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.buf)
}
