package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "roadrace",
		ReportTimestamp: true,
		Level:           level,
	})
}

// openRunLogger returns the logger used while the UI owns the terminal.
// Without a path, everything is discarded.
func openRunLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard, log.DebugLevel), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, log.DebugLevel), func() { _ = f.Close() }, nil
}
