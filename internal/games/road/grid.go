package road

import "github.com/vovakirdan/roadrace/internal/core"

// Cell is the static content of one road position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
)

// Grid is the fixed road layout: edge columns are walls, everything between
// them is drivable. It has no mutating methods.
type Grid struct {
	cells [][]Cell
}

// NewGrid builds a rows×cols road.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		cells[r][0] = CellWall
		cells[r][cols-1] = CellWall
	}
	return &Grid{cells: cells}
}

// Rows returns the road height.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the road width including walls.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At returns the cell at (row, col); out-of-range positions read as walls.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return CellWall
	}
	return g.cells[row][col]
}

// MinLane is the leftmost drivable column.
func (g *Grid) MinLane() int {
	return 1
}

// MaxLane is the rightmost drivable column.
func (g *Grid) MaxLane() int {
	return g.Cols() - 2
}

// Drivable reports whether col is a lane.
func (g *Grid) Drivable(col int) bool {
	return col >= g.MinLane() && col <= g.MaxLane()
}

// ClampLane restricts col to the drivable range.
func (g *Grid) ClampLane(col int) int {
	return core.Clamp(col, g.MinLane(), g.MaxLane())
}
