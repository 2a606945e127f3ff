// Package config provides YAML-based game configuration loading and
// validation for the road game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RoadConfig contains all configuration for the road game.
type RoadConfig struct {
	Road     RoadLayout     `yaml:"road"`
	Player   RoadPlayer     `yaml:"player"`
	Enemy    RoadEnemy      `yaml:"enemy"`
	Scoring  RoadScoring    `yaml:"scoring"`
	Timing   RoadTiming     `yaml:"timing"`
	HUD      RoadHUD        `yaml:"hud"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// RoadLayout defines the fixed road grid.
type RoadLayout struct {
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"` // Edge columns are walls, the rest are lanes
	WallGlyph  string `yaml:"wall_glyph"`
	EmptyGlyph string `yaml:"empty_glyph"`
}

// RoadPlayer defines the player car.
type RoadPlayer struct {
	Row      int    `yaml:"row"`
	StartCol int    `yaml:"start_col"`
	Glyph    string `yaml:"glyph"`
}

// RoadEnemy defines the descending enemy.
type RoadEnemy struct {
	Glyph string `yaml:"glyph"`
}

// ScoreBoundary selects the row at which a traversal is scored.
type ScoreBoundary string

const (
	BoundaryLastRow   ScoreBoundary = "last_row"
	BoundaryPlayerRow ScoreBoundary = "player_row"
)

// RoadScoring defines when the score increments.
type RoadScoring struct {
	Boundary ScoreBoundary `yaml:"boundary"`
}

// RoadTiming defines the fixed simulation step.
type RoadTiming struct {
	Tick time.Duration `yaml:"tick"`
}

// RoadHUD defines where text is placed around the road.
type RoadHUD struct {
	ScoreRow    int  `yaml:"score_row"` // Clamped into the screen at render time
	ShowHelp    bool `yaml:"show_help"`
	ExitOnCrash bool `yaml:"exit_on_crash"` // Leave right after the crash frame instead of waiting for the exit key
}

// Backend names a terminal backend.
type Backend string

const (
	BackendBubbleTea Backend = "bubbletea"
	BackendTcell     Backend = "tcell"
)

// TerminalConfig selects the terminal backend.
type TerminalConfig struct {
	Backend Backend `yaml:"backend"`
}

// ScoreRow returns the grid row that scores a traversal.
func (c RoadConfig) ScoreRow() int {
	if c.Scoring.Boundary == BoundaryPlayerRow {
		return c.Player.Row
	}
	return c.Road.Rows - 1
}

// Validate checks the config for values the game cannot run with.
func (c RoadConfig) Validate() error {
	switch {
	case c.Road.Rows < 2:
		return fmt.Errorf("%w: road.rows must be at least 2, got %d", ErrInvalid, c.Road.Rows)
	case c.Road.Cols < 3:
		return fmt.Errorf("%w: road.cols must be at least 3, got %d", ErrInvalid, c.Road.Cols)
	case c.Player.Row < 1 || c.Player.Row >= c.Road.Rows:
		// Row 0 is where the enemy enters, so the car starts below it.
		return fmt.Errorf("%w: player.row %d outside road rows [1,%d]", ErrInvalid, c.Player.Row, c.Road.Rows-1)
	case c.Player.StartCol < 1 || c.Player.StartCol > c.Road.Cols-2:
		return fmt.Errorf("%w: player.start_col %d outside lanes [1,%d]", ErrInvalid, c.Player.StartCol, c.Road.Cols-2)
	case c.Timing.Tick <= 0:
		return fmt.Errorf("%w: timing.tick must be positive, got %s", ErrInvalid, c.Timing.Tick)
	case c.HUD.ScoreRow < 0:
		return fmt.Errorf("%w: hud.score_row must not be negative, got %d", ErrInvalid, c.HUD.ScoreRow)
	}

	glyphs := []struct {
		name, value string
	}{
		{"road.wall_glyph", c.Road.WallGlyph},
		{"road.empty_glyph", c.Road.EmptyGlyph},
		{"player.glyph", c.Player.Glyph},
		{"enemy.glyph", c.Enemy.Glyph},
	}
	for _, g := range glyphs {
		if len([]rune(g.value)) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, g.name, g.value)
		}
	}

	switch c.Scoring.Boundary {
	case BoundaryLastRow, BoundaryPlayerRow:
	default:
		return fmt.Errorf("%w: unknown scoring.boundary %q", ErrInvalid, c.Scoring.Boundary)
	}

	switch c.Terminal.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("%w: unknown terminal.backend %q", ErrInvalid, c.Terminal.Backend)
	}
	return nil
}
