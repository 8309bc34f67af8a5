// Package logging builds the application's charmbracelet loggers.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/auto-game/internal/config"
)

// New creates a logger for cfg with the given prefix.
// When cfg.File is set, output goes to a rotated file instead of stderr so it
// does not fight with a full-screen terminal UI. The returned closer releases
// the file and is safe to call when logging to stderr.
func New(cfg config.LogConfig, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		out = lj
		closer = lj
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
