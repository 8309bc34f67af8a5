package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidFrameRate is returned when FramesPerSecond is not a positive number.
	ErrInvalidFrameRate = errors.New("frames per second must be positive")

	// ErrInvalidViewport is returned when the viewport has a non-positive dimension.
	ErrInvalidViewport = errors.New("viewport dimensions must be positive")
)

// LoopConfig configures a simulation loop.
// Width and Height describe the logical viewport. The loop itself never reads
// them; they are carried along for views and other collaborators.
type LoopConfig struct {
	FramesPerSecond float64 // Target update frequency
	Width           int     // Viewport width
	Height          int     // Viewport height
}

// DefaultLoopConfig returns a LoopConfig with sensible defaults.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FramesPerSecond: 60,
		Width:           800,
		Height:          600,
	}
}

// Validate checks the config for values the loop cannot run with.
func (c LoopConfig) Validate() error {
	if math.IsNaN(c.FramesPerSecond) || math.IsInf(c.FramesPerSecond, 0) || c.FramesPerSecond <= 0 {
		return fmt.Errorf("config: %w (got %v)", ErrInvalidFrameRate, c.FramesPerSecond)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: %w (got %dx%d)", ErrInvalidViewport, c.Width, c.Height)
	}
	return nil
}

// FrameIntervalMillis returns the minimum elapsed time, in milliseconds,
// between two updates.
func (c LoopConfig) FrameIntervalMillis() float64 {
	return 1000 / c.FramesPerSecond
}

// FrameInterval returns FrameIntervalMillis as a time.Duration.
func (c LoopConfig) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMillis() * float64(time.Millisecond))
}
