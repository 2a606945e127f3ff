package road

// Direction is a horizontal steering input.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Player is the car at the bottom of the road.
type Player struct {
	Col   int
	Row   int // Fixed for the whole game
	Alive bool
}

// Move shifts the car one lane, clamped to the drivable range.
func (p *Player) Move(d Direction, grid *Grid) {
	p.Col = grid.ClampLane(p.Col + int(d))
}

// Enemy is the single object descending the road.
type Enemy struct {
	Col int
	Row int
}

// Advance places the enemy on the given cycle row and rerolls its lane when
// the cycle has just wrapped to the top.
func (e *Enemy) Advance(row int, grid *Grid, rng RandomSource) {
	e.Row = row
	if row == 0 {
		e.Col = rng.NextColumn(grid.MinLane(), grid.MaxLane())
	}
}

// DetectCollision reports whether the enemy occupies the player's cell.
func DetectCollision(p Player, e Enemy) bool {
	return e.Row == p.Row && e.Col == p.Col
}
