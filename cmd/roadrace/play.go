package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrace/internal/config"
	"github.com/vovakirdan/roadrace/internal/core"
	"github.com/vovakirdan/roadrace/internal/games/road"
	"github.com/vovakirdan/roadrace/internal/platform/keys"
	tcellterm "github.com/vovakirdan/roadrace/internal/platform/term"
	"github.com/vovakirdan/roadrace/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	runLog, closeLog, err := openRunLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size once; the road itself never resizes
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Tick:    cfg.Timing.Tick,
		Seed:    opts.seed,

		ExitOnCrash: cfg.HUD.ExitOnCrash,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := play(ctx, cfg, runtime, runLog)
	if err != nil {
		runLog.Error("run failed", "error", err)
		return err
	}

	newLogger(os.Stderr, log.InfoLevel).Info("game over", "status", outcome(state), "score", state.Score)
	return nil
}

// play runs the game on the configured backend.
func play(ctx context.Context, cfg config.RoadConfig, runtime core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	km := keys.Default()

	switch cfg.Terminal.Backend {
	case config.BackendTcell:
		km.Screenshot.SetEnabled(false)
		game := road.New(cfg, road.WithHelp(km.HelpLine()), road.WithQuitHint(km.QuitHint()))

		t, err := tcellterm.NewTcellTerminal()
		if err != nil {
			return game.State(), fmt.Errorf("open terminal: %w", err)
		}
		return tcellterm.NewLoop(t, km, logger, runtime).Run(ctx, game)

	default:
		game := road.New(cfg, road.WithQuitHint(km.QuitHint()))
		return tui.Run(ctx, game, km, logger, runtime)
	}
}

func outcome(state core.GameState) string {
	switch {
	case state.GameOver:
		return "crashed"
	case state.Exited:
		return "exited"
	default:
		return "stopped"
	}
}
