package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrace/internal/config"
)

// options holds the command line flags.
type options struct {
	configPath string
	tick       time.Duration
	seed       int64
	backend    string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "roadrace",
		Short: "Road Race - dodge the oncoming car in your terminal",
		Long: `Road Race is a terminal arcade game. Your car (C) drives near the bottom
of an 11 by 5 road; another car (Z) comes down one lane at a time. Each car
that passes you scores a point. Touch it and the game is over.

Controls:
  Left/A/H    - Steer left
  Right/D/L   - Steer right
  F4/Ctrl+C   - Quit
  Ctrl+S      - Save a text screenshot (bubbletea backend)

Examples:
  roadrace
  roadrace --backend tcell
  roadrace --tick 80ms --seed 42
  roadrace --config ./my-road.yaml --log road.log
  roadrace config > ~/.roadrace/configs/road.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to custom config YAML")
	root.PersistentFlags().DurationVar(&opts.tick, "tick", 0, "Simulation step (overrides timing.tick)")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "Terminal backend: bubbletea or tcell (overrides terminal.backend)")
	root.Flags().StringVar(&opts.logFile, "log", "", "Write a debug log of the run to this file")

	root.AddCommand(newConfigCmd(opts))
	return root
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (config.RoadConfig, error) {
	cfg, err := config.LoadRoad(opts.configPath)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("tick") {
		cfg.Timing.Tick = opts.tick
	}
	if cmd.Flags().Changed("backend") {
		cfg.Terminal.Backend = config.Backend(opts.backend)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
