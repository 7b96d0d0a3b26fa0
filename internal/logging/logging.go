// Package logging builds the application's slog logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mcoot/dailypuzzles/internal/config"
)

// Logger is a configured logger and the file it may be writing to
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New builds a logger writing to console and, when cfg.File is set, to that
// file. Files are rotated with lumberjack unless MaxSizeMB is zero.
func New(cfg config.LogConfig, console io.Writer) (*Logger, error) {
	out := console
	var closer io.Closer

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		var file io.WriteCloser
		if cfg.Rotate.MaxSizeMB > 0 {
			file = &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.Rotate.MaxSizeMB,
				MaxBackups: cfg.Rotate.MaxBackups,
				MaxAge:     cfg.Rotate.MaxAgeDays,
				Compress:   cfg.Rotate.Compress,
			}
		} else {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
			}
			file = f
		}
		out = io.MultiWriter(console, file)
		closer = file
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return &Logger{Logger: slog.New(handler), closer: closer}, nil
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
