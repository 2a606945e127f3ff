package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrace/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the game would run with, after the config
search order and flag overrides are applied.

Search order:
  --config path -> ~/.roadrace/configs/road.yaml -> ./configs/road.yaml -> built-in defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			return nil
		},
	}
}
