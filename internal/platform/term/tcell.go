package term

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/roadrace/internal/core"
)

// keyNames maps tcell special keys to the names used by key bindings.
var keyNames = map[tcell.Key]string{
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "esc",
	tcell.KeyF1:     "f1",
	tcell.KeyF2:     "f2",
	tcell.KeyF3:     "f3",
	tcell.KeyF4:     "f4",
	tcell.KeyF5:     "f5",
	tcell.KeyF6:     "f6",
	tcell.KeyF7:     "f7",
	tcell.KeyF8:     "f8",
	tcell.KeyF9:     "f9",
	tcell.KeyF10:    "f10",
	tcell.KeyF11:    "f11",
	tcell.KeyF12:    "f12",
	tcell.KeyCtrlC:  "ctrl+c",
	tcell.KeyCtrlS:  "ctrl+s",
}

// KeyName normalizes a tcell key event. It returns "" for keys with no name.
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}
	return strings.ToLower(ev.Name())
}

// TcellTerminal implements Terminal on a tcell screen.
type TcellTerminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	mu     sync.Mutex
	closed bool
	w, h   int
}

// NewTcellTerminal creates a terminal on the process's controlling tty.
func NewTcellTerminal() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTcellTerminalFrom(screen), nil
}

// NewTcellTerminalFrom wraps an existing screen, such as a simulation screen.
func NewTcellTerminalFrom(screen tcell.Screen) *TcellTerminal {
	return &TcellTerminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
}

// Init initializes the screen and starts the event pump.
func (t *TcellTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.w, t.h = t.screen.Size()

	go t.pump()
	return nil
}

// pump forwards screen events until the screen is finalized.
func (t *TcellTerminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Fini restores the terminal.
func (t *TcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
	t.screen.Fini()
}

func (t *TcellTerminal) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// ReadKey returns the next named key press within timeout. Resize events
// resync the display and are otherwise skipped.
func (t *TcellTerminal) ReadKey(timeout time.Duration) (string, bool, error) {
	if t.isClosed() {
		return "", false, ErrClosed
	}

	timer := time.NewTimer(max(timeout, 0))
	defer timer.Stop()

	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if name := KeyName(ev); name != "" {
					return name, true, nil
				}
			case *tcell.EventResize:
				t.mu.Lock()
				t.w, t.h = ev.Size()
				t.mu.Unlock()
				t.screen.Sync()
			}
		case <-timer.C:
			return "", false, nil
		case <-t.done:
			return "", false, ErrClosed
		}
	}
}

// WriteText draws text in the given color starting at row, col.
func (t *TcellTerminal) WriteText(row, col int, text string, color core.Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if row < 0 || row >= t.h {
		return nil
	}

	style := styleFor(color)
	x := col
	for _, r := range text {
		if x >= t.w {
			break
		}
		if x >= 0 {
			t.screen.SetContent(x, row, r, nil, style)
		}
		x++
	}
	return nil
}

// Size returns the terminal height and width.
func (t *TcellTerminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.h, t.w
}

// Show flushes the frame.
func (t *TcellTerminal) Show() error {
	if t.isClosed() {
		return ErrClosed
	}
	t.screen.Show()
	return nil
}

// styleFor maps a core color onto the terminal's 256-color palette.
func styleFor(c core.Color) tcell.Style {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
