package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrace/internal/core"
	"github.com/vovakirdan/roadrace/internal/platform/keys"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          core.Game
	screen        *core.Screen
	keys          keys.KeyMap
	help          help.Model
	logger        *log.Logger
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game core.Game, km keys.KeyMap, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultConfig().Tick
	}

	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)), // Last row is the help bar
		keys:          km,
		help:          h,
		logger:        logger,
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		gameState:     game.State(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "game", m.game.ID(), "tick", m.config.Tick, "seed", m.config.Seed)
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		if !m.gameState.Finished() {
			quit := core.NewInputFrame()
			quit.Set(core.ActionQuit)
			m.gameState = m.game.Step(quit).State
			m.logger.Info("exit requested", "score", m.gameState.Score)
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case core.ActionLeft, core.ActionRight:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize tracks the terminal size. The road itself never changes size,
// so the game keeps running undisturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A finished game keeps its final frame on screen until the exit key.
	if m.gameState.Finished() {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	if result.State.Score != m.gameState.Score {
		m.logger.Debug("scored", "score", result.State.Score)
	}
	if result.State.GameOver {
		m.logger.Info("crashed", "score", result.State.Score)
	}
	m.gameState = result.State

	m.inputFrame.Clear()

	if m.gameState.GameOver && m.config.ExitOnCrash {
		return m, tea.Quit
	}
	if m.gameState.Finished() {
		return m, nil
	}
	return m, tickCmd(m.config.Tick)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and blocks until the player quits.
// Cancelling ctx ends the program like the exit key does.
func Run(ctx context.Context, game core.Game, km keys.KeyMap, logger *log.Logger, cfg core.RuntimeConfig) (core.GameState, error) {
	model := NewModel(game, km, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("interrupted", "cause", context.Cause(ctx))
			state := game.State()
			state.Exited = !state.GameOver
			return state, nil
		}
		return game.State(), fmt.Errorf("run terminal program: %w", err)
	}

	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}

// defaultScreenshotDir returns ~/.roadrace/screenshots, or a relative
// directory if the home directory is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".roadrace", "screenshots")
}
