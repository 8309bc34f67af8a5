package engine

import (
	"context"
	"fmt"
	"time"
)

// FrameQueue is a cooperative, single-threaded Scheduler.
// Schedule only records the callback; the host runs it on its next Flush.
// FrameQueue is not safe for concurrent use.
type FrameQueue struct {
	pending []func()
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Schedule queues fn for the next Flush.
func (q *FrameQueue) Schedule(fn func()) {
	q.pending = append(q.pending, fn)
}

// Flush runs the callbacks queued before the call and returns how many ran.
// Callbacks scheduled while flushing wait for the next Flush.
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// RunFrames flushes q refreshRate times per second until ctx is done.
// It runs the callbacks on the calling goroutine.
func RunFrames(ctx context.Context, q *FrameQueue, refreshRate int) error {
	if refreshRate <= 0 {
		return fmt.Errorf("engine: refresh rate must be positive (got %d)", refreshRate)
	}

	ticker := time.NewTicker(time.Second / time.Duration(refreshRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			q.Flush()
		}
	}
}
