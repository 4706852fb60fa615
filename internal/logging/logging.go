// Package logging configures the process-wide debug logger. Logs go to
// a per-run file under the data directory when debugging is enabled and
// are discarded otherwise, so normal runs never touch the terminal.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sadopc/pomo/internal/store"
)

// Logger is the shared logger instance. It is always safe to use; until
// Initialize enables debugging it discards everything.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger from the debug flag and environment.
// POMO_DEBUG=1 enables debugging; POMO_DEBUG_FILE overrides the log
// file location.
func Initialize(debug bool, debugFile string) error {
	if os.Getenv("POMO_DEBUG") == "1" {
		debug = true
	}
	if envFile := os.Getenv("POMO_DEBUG_FILE"); envFile != "" && debugFile == "" {
		debugFile = envFile
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	path := debugFile
	if path == "" {
		dir, err := store.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolve log directory: %w", err)
		}
		logDir := filepath.Join(dir, "logs")
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		path = filepath.Join(logDir, uuid.New().String()+".log")
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Debug("logging initialized", "path", path)
	return nil
}
