// Package engine drives the entity simulation at a target frame rate.
//
// The loop never sleeps or spawns goroutines. It asks a Scheduler to call it
// back "on the next frame" and decides on each callback whether enough wall
// time has passed to run an update. Hosts provide the Scheduler: the terminal
// host flushes a FrameQueue from Bubble Tea ticks, the headless host flushes
// it from a time.Ticker, and tests flush it by hand.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/auto-game/internal/core"
)

// Clock is a source of monotonic time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two readings are immune to clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Scheduler arranges for fn to run once, later, on the caller's thread of control.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Schedule calls f(fn).
func (f SchedulerFunc) Schedule(fn func()) { f(fn) }

// Stats counts what the loop has done since it was created.
type Stats struct {
	Ticks   uint64 // Callbacks that ran while the loop was running
	Updates uint64 // Ticks that advanced the simulation
}

// Option customizes a Loop.
type Option func(*Loop)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// Loop repeatedly updates an EntityStore, at most once per frame interval.
//
// Each update receives the full elapsed time since the previous update, not a
// fixed quantum, so the simulation speed follows wall time even when frames
// are dropped. Ticks that arrive before a frame interval has elapsed are
// skipped without touching the timestamp, so short intervals add up.
type Loop struct {
	config    core.LoopConfig
	store     *core.EntityStore
	clock     Clock
	scheduler Scheduler
	logger    *log.Logger

	interval float64 // frame interval in milliseconds
	running  bool
	epoch    uint64  // bumped by every Start; stale callbacks compare against it
	lastTick time.Time
	stats    Stats
}

// New creates a stopped loop that owns a fresh, empty EntityStore.
// It fails if cfg does not validate or sched is nil.
func New(cfg core.LoopConfig, sched Scheduler, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if sched == nil {
		return nil, errors.New("engine: nil scheduler")
	}

	l := &Loop{
		config:    cfg,
		store:     core.NewEntityStore(),
		clock:     SystemClock{},
		scheduler: sched,
		interval:  cfg.FrameIntervalMillis(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}

	return l, nil
}

// Start begins scheduling ticks. Calling Start on a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}

	l.running = true
	l.epoch++
	l.lastTick = l.clock.Now()
	l.logger.Debug("loop started", "fps", l.config.FramesPerSecond, "entities", l.store.Len())

	l.schedule(l.epoch)
}

// Stop halts the loop. A tick that is already scheduled still fires, but
// performs no update and does not schedule another one.
func (l *Loop) Stop() {
	if !l.running {
		return
	}

	l.running = false
	l.logger.Debug("loop stopped", "ticks", l.stats.Ticks, "updates", l.stats.Updates)
}

func (l *Loop) schedule(epoch uint64) {
	l.scheduler.Schedule(func() { l.tick(epoch) })
}

// tick is the per-frame callback. A callback from before the latest Start
// is treated like one arriving after Stop, which keeps a Stop/Start pair
// from leaving two tick chains alive.
func (l *Loop) tick(epoch uint64) {
	if !l.running || epoch != l.epoch {
		return
	}
	l.stats.Ticks++

	now := l.clock.Now()
	delta := float64(now.Sub(l.lastTick)) / float64(time.Millisecond)

	if delta >= l.interval {
		l.store.Update(delta)
		l.lastTick = now
		l.stats.Updates++
	}

	l.schedule(epoch)
}

// Running reports whether the loop is running.
func (l *Loop) Running() bool {
	return l.running
}

// Store returns the entity store owned by the loop.
func (l *Loop) Store() *core.EntityStore {
	return l.store
}

// Config returns the loop configuration.
func (l *Loop) Config() core.LoopConfig {
	return l.config
}

// LastTick returns the time of the last update, or of the last Start if no
// update has happened since.
func (l *Loop) LastTick() time.Time {
	return l.lastTick
}

// Stats returns the loop counters.
func (l *Loop) Stats() Stats {
	return l.stats
}
