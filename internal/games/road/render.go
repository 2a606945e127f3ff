package road

import (
	"fmt"

	"github.com/vovakirdan/roadrace/internal/core"
)

// cellAt resolves what is drawn at a road position. The player wins over the
// enemy when both share a cell.
func (g *Game) cellAt(row, col int) (rune, core.Color) {
	switch {
	case row == g.player.Row && col == g.player.Col && g.grid.Drivable(g.player.Col):
		return g.car, core.ColorBrightCyan
	case row == g.enemy.Row && col == g.enemy.Col:
		return g.foe, core.ColorBrightRed
	case g.grid.At(row, col) == CellWall:
		return g.wall, core.ColorGray
	default:
		return g.empty, core.ColorDefault
	}
}

// RenderRows returns the road as text, one string per row.
func (g *Game) RenderRows() []string {
	rows := make([]string, g.grid.Rows())
	line := make([]rune, g.grid.Cols())
	for r := range rows {
		for c := range line {
			line[c], _ = g.cellAt(r, c)
		}
		rows[r] = string(line)
	}
	return rows
}

// ScoreText is the status line drawn under the road.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("score: %d", g.score)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Road at the top-left corner, never scaled to the screen.
	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			ch, color := g.cellAt(r, c)
			dst.SetColored(c, r, ch, color)
		}
	}

	scoreRow := g.scoreRow(dst.Height())
	dst.DrawTextColored(0, scoreRow, g.ScoreText(), core.ColorBrightYellow)

	if helpRow := dst.Height() - 1; g.cfg.HUD.ShowHelp && g.help != "" && helpRow > scoreRow {
		dst.DrawTextColored(0, helpRow, g.help, core.ColorGray)
	}

	if g.status == StatusDead {
		g.drawMessage(dst, "CRASHED", fmt.Sprintf("Score: %d  |  %s", g.score, g.quitHint))
	}
}

// scoreRow places the score line at the configured row, kept below the road
// and inside the screen when possible.
func (g *Game) scoreRow(screenH int) int {
	row := g.cfg.HUD.ScoreRow
	if row > screenH-2 {
		row = screenH - 2
	}
	if row < g.grid.Rows() {
		row = g.grid.Rows()
	}
	return row
}

// drawMessage draws a message box to the right of the road.
func (g *Game) drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5

	left := g.grid.Cols() + 2
	area := core.NewRect(left, 0, core.Max(dst.Width()-left, boxW), g.grid.Rows())
	box := area.Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorRed)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
