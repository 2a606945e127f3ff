package term

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrace/internal/core"
	"github.com/vovakirdan/roadrace/internal/platform/keys"
)

// Loop drives a game at a fixed tick on a Terminal.
type Loop struct {
	term   Terminal
	clock  Clock
	keys   keys.KeyMap
	logger *log.Logger
	config core.RuntimeConfig
	screen *core.Screen
}

// LoopOption customizes a Loop.
type LoopOption func(*Loop)

// WithClock replaces the system clock.
func WithClock(c Clock) LoopOption {
	return func(l *Loop) {
		l.clock = c
	}
}

// NewLoop creates a loop. The screen size in cfg is replaced by the
// terminal size once the terminal is initialized.
func NewLoop(t Terminal, km keys.KeyMap, logger *log.Logger, cfg core.RuntimeConfig, opts ...LoopOption) *Loop {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultConfig().Tick
	}

	l := &Loop{
		term:   t,
		clock:  SystemClock(),
		keys:   km,
		logger: logger,
		config: cfg,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run plays the game until the player exits. A crash leaves the final frame
// on screen until the exit key, unless ExitOnCrash is set. Cancelling ctx
// counts as the exit key. The terminal is restored on every return path.
func (l *Loop) Run(ctx context.Context, game core.Game) (core.GameState, error) {
	if err := l.term.Init(); err != nil {
		return game.State(), fmt.Errorf("init terminal: %w", err)
	}
	defer l.term.Fini()

	if h, w := l.term.Size(); h > 0 && w > 0 {
		l.config.ScreenH, l.config.ScreenW = h, w
	}
	l.screen = core.NewScreen(l.config.ScreenW, l.config.ScreenH)

	game.Reset(l.config)
	l.logger.Debug("game started", "game", game.ID(), "tick", l.config.Tick, "seed", l.config.Seed)

	if err := l.draw(game); err != nil {
		return game.State(), err
	}

	frame := core.NewInputFrame()
	next := l.clock.Now().Add(l.config.Tick)

	for {
		state := game.State()
		if state.Exited {
			return state, nil
		}

		if err := ctx.Err(); err != nil {
			l.logger.Info("interrupted", "cause", context.Cause(ctx))
			return l.exit(game)
		}

		if state.GameOver {
			if l.config.ExitOnCrash {
				return state, nil
			}
			quit, err := l.waitForQuit()
			if err != nil {
				return state, err
			}
			if quit {
				return state, nil
			}
			continue
		}

		if wait := next.Sub(l.clock.Now()); wait > 0 {
			action, err := l.readAction(wait)
			if err != nil {
				return game.State(), err
			}
			switch action {
			case core.ActionQuit:
				l.logger.Info("exit requested", "score", state.Score)
				return l.exit(game)
			case core.ActionLeft, core.ActionRight:
				frame.Set(action)
			}
			continue
		}

		result := game.Step(frame)
		frame.Clear()
		if result.State.Score != state.Score {
			l.logger.Debug("scored", "score", result.State.Score)
		}
		if result.State.GameOver {
			l.logger.Info("crashed", "score", result.State.Score)
		}

		// Late ticks are not replayed; the schedule restarts from now.
		now := l.clock.Now()
		next = next.Add(l.config.Tick)
		if next.Before(now) {
			next = now.Add(l.config.Tick)
		}

		if err := l.draw(game); err != nil {
			return game.State(), err
		}
	}
}

// exit applies the exit command and draws the final frame.
func (l *Loop) exit(game core.Game) (core.GameState, error) {
	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	state := game.Step(quit).State
	if err := l.draw(game); err != nil {
		return state, err
	}
	return state, nil
}

// waitForQuit blocks for at most one tick and reports whether the exit key was pressed.
func (l *Loop) waitForQuit() (bool, error) {
	action, err := l.readAction(l.config.Tick)
	if err != nil {
		return false, err
	}
	return action == core.ActionQuit, nil
}

func (l *Loop) readAction(timeout time.Duration) (core.Action, error) {
	name, ok, err := l.term.ReadKey(timeout)
	if err != nil {
		l.logger.Error("read key failed", "error", err)
		return core.ActionNone, fmt.Errorf("read key: %w", err)
	}
	if !ok {
		return core.ActionNone, nil
	}
	return l.keys.Action(keys.Name(name)), nil
}

// draw renders the game and writes it to the terminal one color run at a time.
func (l *Loop) draw(game core.Game) error {
	game.Render(l.screen)

	for y := range l.screen.Height() {
		x := 0
		for x < l.screen.Width() {
			color := l.screen.GetCell(x, y).Color
			start := x
			var run []rune
			for x < l.screen.Width() && l.screen.GetCell(x, y).Color == color {
				run = append(run, l.screen.GetCell(x, y).Rune)
				x++
			}
			if err := l.term.WriteText(y, start, string(run), color); err != nil {
				l.logger.Error("write failed", "error", err)
				return fmt.Errorf("write frame: %w", err)
			}
		}
	}

	if err := l.term.Show(); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}
	return nil
}
