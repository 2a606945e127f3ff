// Package road implements the road dodging game: a car steers between lanes
// to avoid a single enemy that descends the road over and over.
package road

import (
	"github.com/vovakirdan/roadrace/internal/config"
	"github.com/vovakirdan/roadrace/internal/core"
)

// Status is the state of the game loop.
type Status int

const (
	StatusRunning Status = iota
	StatusDead
	StatusExited
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusDead:
		return "dead"
	case StatusExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Game implements the road game logic.
type Game struct {
	cfg     config.RoadConfig
	runtime core.RuntimeConfig
	grid    *Grid
	player  Player
	enemy   Enemy
	cycle   Cycle
	rng     RandomSource
	fixed   RandomSource // Injected source, survives Reset
	score   int
	alive   bool
	status  Status
	tick    uint64 // Ticks that advanced the simulation

	wall, empty, car, foe rune
	help, quitHint        string
}

// Option customizes a Game.
type Option func(*Game)

// WithRandomSource replaces the seeded lane generator.
func WithRandomSource(src RandomSource) Option {
	return func(g *Game) {
		g.fixed = src
	}
}

// WithHelp sets the key help line drawn at the bottom of the screen.
func WithHelp(help string) Option {
	return func(g *Game) {
		g.help = help
	}
}

// WithQuitHint sets the hint shown in the game over box.
func WithQuitHint(hint string) Option {
	return func(g *Game) {
		g.quitHint = hint
	}
}

// New creates a road game from a validated config. Call Reset before Step.
func New(cfg config.RoadConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		wall:     firstRune(cfg.Road.WallGlyph),
		empty:    firstRune(cfg.Road.EmptyGlyph),
		car:      firstRune(cfg.Player.Glyph),
		foe:      firstRune(cfg.Enemy.Glyph),
		quitHint: "press F4 to quit",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "road"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Race"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixed != nil {
		g.rng = g.fixed
	} else {
		g.rng = NewSeededSource(runtime.Seed)
	}

	g.grid = NewGrid(g.cfg.Road.Rows, g.cfg.Road.Cols)
	g.player = Player{
		Col:   g.grid.ClampLane(g.cfg.Player.StartCol),
		Row:   g.cfg.Player.Row,
		Alive: true,
	}

	// The enemy enters at the top with its first lane already rolled.
	g.cycle = NewCycle(g.grid.Rows())
	g.enemy = Enemy{}
	g.enemy.Advance(g.cycle.Current(), g.grid, g.rng)

	g.score = 0
	g.alive = true
	g.status = StatusRunning
	g.tick = 0
}

// Step advances the game by one tick. Once the game is dead or exited it is
// frozen and Step has no effect.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status != StatusRunning {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.status = StatusExited
		return core.StepResult{State: g.State()}
	}

	// Opposite inputs in one frame cancel out, wherever the car is.
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		g.player.Move(Left, g.grid)
	case right && !left:
		g.player.Move(Right, g.grid)
	}

	if !g.alive {
		g.status = StatusDead
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.enemy.Advance(g.cycle.Next(), g.grid, g.rng)

	if DetectCollision(g.player, g.enemy) {
		g.player.Alive = false
	}
	g.alive = g.player.Alive

	if g.enemy.Row == g.cfg.ScoreRow() && g.alive {
		g.score++
	}

	if !g.alive {
		g.status = StatusDead
	}

	return core.StepResult{State: g.State()}
}

// Status returns the loop state.
func (g *Game) Status() Status {
	return g.status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusDead,
		Exited:   g.status == StatusExited,
	}
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Alive     bool
	Status    Status
	CycleRow  int
	PlayerCol int
	PlayerRow int
	EnemyCol  int
	EnemyRow  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Alive:     g.alive,
		Status:    g.status,
		CycleRow:  g.cycle.Current(),
		PlayerCol: g.player.Col,
		PlayerRow: g.player.Row,
		EnemyCol:  g.enemy.Col,
		EnemyRow:  g.enemy.Row,
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
