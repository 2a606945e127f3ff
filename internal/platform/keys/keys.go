// Package keys holds the key bindings shared by every terminal backend.
// Bindings are bubbles key.Binding values; any backend that can describe a
// key press as a fmt.Stringer (tea.KeyMsg, or Name for tcell) can resolve it.
package keys

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/roadrace/internal/core"
)

// Name is a normalized key name such as "left", "f4" or "ctrl+c".
type Name string

func (n Name) String() string {
	return string(n)
}

// KeyMap binds keys to game actions.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// Default returns the standard bindings. F4 is the exit command.
func Default() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("f4", "ctrl+c"),
			key.WithHelp("f4", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit, k.Screenshot}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Quit, k.Screenshot},
	}
}

// Action translates a key press to a game action. Unbound keys map to ActionNone.
func (k KeyMap) Action(msg fmt.Stringer) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// HelpLine renders the enabled bindings as plain text for backends that
// cannot print lipgloss styles.
func (k KeyMap) HelpLine() string {
	var parts []string
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// QuitHint is the short instruction shown once the game is over.
func (k KeyMap) QuitHint() string {
	return fmt.Sprintf("press %s to %s", strings.ToUpper(k.Quit.Help().Key), k.Quit.Help().Desc)
}
