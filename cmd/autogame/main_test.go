package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/auto-game/internal/config"
	"github.com/vovakirdan/auto-game/internal/core"
	"github.com/vovakirdan/auto-game/internal/storage"
)

// execute runs the root command with args against a temporary database.
func execute(t *testing.T, dbPath string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append(args, "--db", dbPath, "--log-level", "error"))
	return rootCmd.Execute()
}

func savedEntities(t *testing.T, dbPath string) []core.Entity {
	t.Helper()
	cfg := config.DefaultConfig()
	store, err := storage.Open(dbPath, cfg.Storage.Prefix)
	require.NoError(t, err)
	defer store.Close()

	all, err := storage.NewRepository[core.Entity](store, cfg.StateKey).FindAll()
	require.NoError(t, err)
	return all
}

func TestStateImportRmClear(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "state.db")
	file := filepath.Join(dir, "entities.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
entities:
  - id: rock
    x: 10
    y: 20
  - id: tree
    x: 0
    y: 5
`), 0o600))

	require.NoError(t, execute(t, dbPath, "state", "import", file))
	assert.Equal(t, []core.Entity{
		{ID: "rock", X: 10, Y: 20},
		{ID: "tree", X: 0, Y: 5},
	}, savedEntities(t, dbPath))

	require.NoError(t, execute(t, dbPath, "state", "show"))

	require.NoError(t, execute(t, dbPath, "state", "rm", "rock"))
	assert.Equal(t, []core.Entity{{ID: "tree", X: 0, Y: 5}}, savedEntities(t, dbPath))

	require.NoError(t, execute(t, dbPath, "state", "rm", "missing"))

	require.NoError(t, execute(t, dbPath, "state", "clear"))
	assert.Empty(t, savedEntities(t, dbPath))
}

func TestStateImportRejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("entities:\n  - x: 1\n"), 0o600))

	err := execute(t, filepath.Join(dir, "state.db"), "state", "import", file)
	assert.Error(t, err)
}

func TestHeadlessRunMovesSavedEntities(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")

	cfg := config.DefaultConfig()
	store, err := storage.Open(dbPath, cfg.Storage.Prefix)
	require.NoError(t, err)
	require.NoError(t, storage.NewRepository[core.Entity](store, cfg.StateKey).Save(core.Entity{ID: "a"}))
	require.NoError(t, store.Close())

	require.NoError(t, execute(t, dbPath, "run", "--headless", "--duration", "200ms"))

	saved := savedEntities(t, dbPath)
	require.Len(t, saved, 1)
	assert.Positive(t, saved[0].X)
	assert.Equal(t, saved[0].X, saved[0].Y)
}

func TestRunRejectsInvalidFPS(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	err := execute(t, dbPath, "run", "--headless", "--duration", "10ms", "--fps", "0")
	assert.ErrorIs(t, err, core.ErrInvalidFrameRate)
}
