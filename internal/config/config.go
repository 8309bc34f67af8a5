// Package config provides YAML-based configuration loading for the
// simulation runtime.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/auto-game/internal/core"
)

// Config contains all configuration for the application.
type Config struct {
	Loop        LoopConfig    `yaml:"loop"`
	RefreshRate int           `yaml:"refresh_rate"` // Host frames per second (the "next paint" rate)
	Storage     StorageConfig `yaml:"storage"`
	StateKey    string        `yaml:"state_key"` // Storage key holding the entity snapshot
	Log         LogConfig     `yaml:"log"`
}

// LoopConfig defines the simulation loop parameters.
type LoopConfig struct {
	FPS    float64 `yaml:"fps"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// StorageConfig defines where state is persisted.
type StorageConfig struct {
	Path   string `yaml:"path"`
	Prefix string `yaml:"prefix"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Optional rotated log file; empty logs to stderr
}

// Core converts the loop section to the engine's config type.
func (c Config) Core() core.LoopConfig {
	return core.LoopConfig{
		FramesPerSecond: c.Loop.FPS,
		Width:           c.Loop.Width,
		Height:          c.Loop.Height,
	}
}

// Validate reports configuration values the application cannot run with.
func (c Config) Validate() error {
	if err := c.Core().Validate(); err != nil {
		return err
	}
	if c.RefreshRate <= 0 {
		return fmt.Errorf("config: refresh_rate must be positive (got %d)", c.RefreshRate)
	}
	if c.StateKey == "" {
		return errors.New("config: state_key must not be empty")
	}
	if c.Storage.Path == "" {
		return errors.New("config: storage.path must not be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
