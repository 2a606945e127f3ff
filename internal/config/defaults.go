package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/road.yaml
var defaultRoadYAML []byte

// DefaultRoadConfig returns the default road game configuration.
func DefaultRoadConfig() RoadConfig {
	return RoadConfig{
		Road: RoadLayout{
			Rows:       11,
			Cols:       5,
			WallGlyph:  "|",
			EmptyGlyph: " ",
		},
		Player: RoadPlayer{
			Row:      9,
			StartCol: 2,
			Glyph:    "C",
		},
		Enemy: RoadEnemy{
			Glyph: "Z",
		},
		Scoring: RoadScoring{
			Boundary: BoundaryLastRow,
		},
		Timing: RoadTiming{
			Tick: 50 * time.Millisecond,
		},
		HUD: RoadHUD{
			ScoreRow: 15,
			ShowHelp: true,
		},
		Terminal: TerminalConfig{
			Backend: BackendBubbleTea,
		},
	}
}
