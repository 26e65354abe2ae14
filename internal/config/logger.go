package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Environment variables read by the logger setup.
const (
	EnvLogLevel = "INVADERS_LOG_LEVEL"
	EnvLogFile  = "INVADERS_LOG"
)

// NewLogger returns a logger writing to w at the level named by
// INVADERS_LOG_LEVEL, defaulting to info. An unknown level falls back to info
// and is reported through the returned logger.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	})

	name := GetEnv(EnvLogLevel, "")
	if name == "" {
		return logger
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", name)
		return logger
	}
	logger.SetLevel(level)
	return logger
}

// OpenLogOutput opens the file named by INVADERS_LOG for appending. When the
// variable is unset the output is discarded, since the terminal itself is the
// game screen. The returned close function is always safe to call.
func OpenLogOutput() (io.Writer, func() error, error) {
	path := GetEnv(EnvLogFile, "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() error { return nil }, err
	}
	return f, f.Close, nil
}
