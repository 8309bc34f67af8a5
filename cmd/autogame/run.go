package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/auto-game/internal/app"
	"github.com/vovakirdan/auto-game/internal/engine"
	"github.com/vovakirdan/auto-game/internal/platform/tui"
	"github.com/vovakirdan/auto-game/internal/storage"
)

var (
	flagHeadless    bool
	flagDuration    time.Duration
	flagProfile     string
	flagProfileDir  string
	flagFitTerminal bool
	flagNoSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation",
	Long: `Run the simulation, restoring the saved entities first and saving
them again on exit.

Controls (terminal view):
  P/Space  - Pause/resume
  ?        - Toggle help
  Q/Esc    - Save and quit

Examples:
  autogame run
  autogame run --fps 30 --fit-terminal
  autogame run --headless --duration 5s
  autogame run --headless --profile cpu`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a terminal UI")
	runCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop a headless run after this long (0 = until interrupted)")
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu or mem")
	runCmd.Flags().StringVar(&flagProfileDir, "profile-dir", ".", "Directory for profile output")
	runCmd.Flags().BoolVar(&flagFitTerminal, "fit-terminal", false, "Use the terminal size as the viewport")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Run without loading or saving state")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flagFitTerminal {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.Loop.Width = w
			cfg.Loop.Height = h
		}
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(flagProfileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(flagProfileDir), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q (want cpu or mem)", flagProfile)
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = openStore(cfg)
		if err != nil {
			// Continue without storage - the simulation still works
			logger.Warn("could not open state database", "path", cfg.Storage.Path, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	queue := engine.NewFrameQueue()
	a, err := app.New(cfg, store, queue, logger)
	if err != nil {
		return err
	}

	if !flagHeadless {
		return tui.Run(a, queue, cfg.RefreshRate)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	if err := a.Start(); err != nil {
		return err
	}
	runErr := engine.RunFrames(ctx, queue, cfg.RefreshRate)
	if err := a.Stop(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	stats := a.Loop().Stats()
	fmt.Printf("Ran %d ticks, %d updates, %d entities\n", stats.Ticks, stats.Updates, len(a.Entities()))
	return nil
}
