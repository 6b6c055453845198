package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ParseLevel returns the configured log level.
func (l LogConfig) ParseLevel() (log.Level, error) {
	return log.ParseLevel(l.Level)
}

// NewLogger builds the process logger. It writes to File when one is set and
// to fallback otherwise. The returned close function releases the file.
func (l LogConfig) NewLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := l.ParseLevel()
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closeFn := func() error { return nil }
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "skyraid",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
