// autogame runs a small entity simulation in the terminal and keeps its
// state between runs.
//
// Usage:
//
//	autogame run                  - Run the simulation in a terminal view
//	autogame run --headless       - Run without a UI until interrupted
//	autogame state show           - Print the saved entities
//	autogame state import <file>  - Add entities from a YAML file
//	autogame state rm <id>        - Delete a saved entity
//	autogame state clear          - Delete all saved state
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.auto-game, ./configs)
//	--fps <rate>       - Override the simulation rate
//	--db <path>        - Override the state database path
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a rotated file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto-game/internal/config"
	"github.com/vovakirdan/auto-game/internal/logging"
	"github.com/vovakirdan/auto-game/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      float64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autogame",
	Short: "auto-game - a persistent entity simulation",
	Long: `auto-game runs a fixed-rate entity simulation and saves its state
between runs.

Available commands:
  run     - Run the simulation
  state   - Inspect or edit the saved state

Examples:
  autogame run
  autogame run --headless --duration 10s
  autogame state import ./entities.yaml
  autogame state show`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Float64Var(&flagFPS, "fps", 0, "Simulation rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to state database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stateCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.FPS = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates the command logger.
func newLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	return logging.New(cfg.Log, "auto-game")
}

// openStore opens the state database named by cfg.
func openStore(cfg config.Config) (*storage.Store, error) {
	return storage.Open(cfg.Storage.Path, cfg.Storage.Prefix)
}
