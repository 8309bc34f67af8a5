// Package app ties the simulation loop to persisted state.
// On Start it restores the last saved entity snapshot into a fresh loop,
// on Stop it halts the loop and writes the snapshot back.
package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/auto-game/internal/config"
	"github.com/vovakirdan/auto-game/internal/core"
	"github.com/vovakirdan/auto-game/internal/engine"
	"github.com/vovakirdan/auto-game/internal/storage"
)

// App owns a simulation loop and its persisted snapshot.
type App struct {
	loop    *engine.Loop
	repo    *storage.Repository[core.Entity] // nil when running without storage
	logger  *log.Logger
	started bool
}

// New creates an App for cfg. The loop is driven by sched.
// store may be nil, in which case nothing is loaded or saved.
func New(cfg config.Config, store *storage.Store, sched engine.Scheduler, logger *log.Logger, opts ...engine.Option) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts = append([]engine.Option{engine.WithLogger(logger)}, opts...)
	loop, err := engine.New(cfg.Core(), sched, opts...)
	if err != nil {
		return nil, err
	}

	a := &App{
		loop:   loop,
		logger: logger,
	}
	if store != nil {
		a.repo = storage.NewRepository[core.Entity](store, cfg.StateKey)
	}
	return a, nil
}

// Start restores the saved snapshot and starts the loop.
// The snapshot is only loaded by the first call.
func (a *App) Start() error {
	if !a.started {
		if err := a.restore(); err != nil {
			return err
		}
		a.started = true
		a.logger.Info("simulation started", "fps", a.loop.Config().FramesPerSecond)
	}

	a.loop.Start()
	return nil
}

func (a *App) restore() error {
	if a.repo == nil {
		return nil
	}

	saved, err := a.repo.FindAll()
	if err != nil {
		return fmt.Errorf("app: cannot load saved state: %w", err)
	}
	if len(saved) > 0 {
		a.logger.Info("loaded saved state", "key", a.repo.Key(), "entities", len(saved))
	}

	store := a.loop.Store()
	for _, e := range saved {
		store.Add(e)
	}
	return nil
}

// Stop halts the loop and saves the current snapshot.
func (a *App) Stop() error {
	a.loop.Stop()

	if a.repo == nil {
		return nil
	}

	snapshot := a.loop.Store().All()
	if err := a.repo.ReplaceAll(snapshot); err != nil {
		return fmt.Errorf("app: cannot save state: %w", err)
	}
	a.logger.Info("saved state", "key", a.repo.Key(), "entities", len(snapshot))
	return nil
}

// Pause stops the loop without saving. Start resumes it.
func (a *App) Pause() {
	a.loop.Stop()
}

// Loop returns the simulation loop.
func (a *App) Loop() *engine.Loop {
	return a.loop
}

// Entities returns a snapshot of the current entities.
func (a *App) Entities() []core.Entity {
	return a.loop.Store().All()
}
