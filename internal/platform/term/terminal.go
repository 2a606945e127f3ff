// Package term provides the tcell backend for the road game: a small
// cursor-addressed terminal surface and a fixed-step loop that drives a
// core.Game through it.
package term

import (
	"errors"
	"time"

	"github.com/vovakirdan/roadrace/internal/core"
)

// ErrClosed is returned by Terminal methods called after Fini.
var ErrClosed = errors.New("terminal closed")

// Terminal is the I/O surface the loop needs from a terminal.
type Terminal interface {
	// Init switches the terminal into raw mode on the alternate screen.
	Init() error

	// Fini restores the terminal. It is safe to call more than once.
	Fini()

	// ReadKey waits up to timeout for a key press and returns its normalized
	// name. ok is false when no key arrived in time.
	ReadKey(timeout time.Duration) (key string, ok bool, err error)

	// WriteText writes text starting at row, col. Text past the edges is dropped.
	WriteText(row, col int, text string, color core.Color) error

	// Size returns the terminal size.
	Size() (height, width int)

	// Show flushes pending writes to the display.
	Show() error
}

// Clock reports the current time for tick scheduling.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the monotonic wall clock.
func SystemClock() Clock {
	return systemClock{}
}
