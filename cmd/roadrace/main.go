// roadrace is a terminal car game: steer between lanes and dodge the
// oncoming car for as long as you can.
//
// Usage:
//
//	roadrace             - Play
//	roadrace config      - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--tick <duration>    - Simulation step (default: 50ms)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--backend <name>     - Terminal backend: bubbletea or tcell
//	--log <file>         - Write a debug log of the run
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		newLogger(os.Stderr, log.InfoLevel).Error("roadrace failed", "error", err)
		os.Exit(1)
	}
}
