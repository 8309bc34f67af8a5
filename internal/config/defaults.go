package config

import (
	_ "embed"
)

//go:embed defaults/auto-game.yaml
var defaultYAML []byte

// DefaultConfig returns the default application configuration.
// It matches defaults/auto-game.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Loop: LoopConfig{
			FPS:    60,
			Width:  800,
			Height: 600,
		},
		RefreshRate: 60,
		Storage: StorageConfig{
			Path:   "~/.auto-game/state.db",
			Prefix: "auto-game:",
		},
		StateKey: "game-state",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
