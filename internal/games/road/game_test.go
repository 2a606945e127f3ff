package road

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrace/internal/config"
	"github.com/vovakirdan/roadrace/internal/core"
)

// fixedColumn always spawns the enemy in the same lane.
type fixedColumn int

func (f fixedColumn) NextColumn(min, max int) int { return int(f) }

// columnSequence replays lanes in order and counts draws.
type columnSequence struct {
	cols  []int
	calls int
}

func (s *columnSequence) NextColumn(min, max int) int {
	c := s.cols[s.calls%len(s.cols)]
	s.calls++
	return c
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Tick: 50 * time.Millisecond, Seed: 1}
}

func newTestGame(cfg config.RoadConfig, opts ...Option) *Game {
	g := New(cfg, opts...)
	g.Reset(testRuntime())
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(input())
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(3)))

	snap := g.Snapshot()
	assert.Equal(t, Snapshot{
		Tick:      0,
		Score:     0,
		Alive:     true,
		Status:    StatusRunning,
		CycleRow:  0,
		PlayerCol: 2,
		PlayerRow: 9,
		EnemyCol:  3,
		EnemyRow:  0,
	}, snap)
	assert.Equal(t, core.GameState{}, g.State())
}

func TestPlayerMoveClamps(t *testing.T) {
	grid := NewGrid(11, 5)

	p := Player{Col: 2, Row: 9, Alive: true}
	for i := 0; i < 10; i++ {
		p.Move(Left, grid)
	}
	assert.Equal(t, 1, p.Col, "ten lefts from the center stop at the first lane")

	for i := 0; i < 10; i++ {
		p.Move(Right, grid)
	}
	assert.Equal(t, 3, p.Col, "ten rights stop at the last lane")

	rng := rand.New(rand.NewSource(7))
	p.Col = 2
	for i := 0; i < 500; i++ {
		d := Left
		if rng.Intn(2) == 1 {
			d = Right
		}
		p.Move(d, grid)
		require.GreaterOrEqual(t, p.Col, 1)
		require.LessOrEqual(t, p.Col, 3)
	}
}

func TestSteeringThroughStep(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(3)))

	g.Step(input(core.ActionLeft))
	assert.Equal(t, 1, g.Snapshot().PlayerCol)

	g.Step(input(core.ActionLeft))
	assert.Equal(t, 1, g.Snapshot().PlayerCol)

	g.Step(input(core.ActionLeft, core.ActionRight))
	assert.Equal(t, 1, g.Snapshot().PlayerCol, "opposite inputs in one frame cancel out")

	g.Step(input(core.ActionRight))
	assert.Equal(t, 2, g.Snapshot().PlayerCol)
}

func TestOppositeInputsCancelInEveryLane(t *testing.T) {
	tests := []struct {
		name  string
		setup []core.Action
		lane  int
	}{
		{"left wall", []core.Action{core.ActionLeft}, 1},
		{"center", nil, 2},
		{"right wall", []core.Action{core.ActionRight}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(2)))
			g.Step(input(tc.setup...))
			require.Equal(t, tc.lane, g.Snapshot().PlayerCol)

			g.Step(input(core.ActionLeft, core.ActionRight))
			assert.Equal(t, tc.lane, g.Snapshot().PlayerCol)
		})
	}
}

func TestEnemyRowCycle(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(1)))

	start := g.Snapshot().EnemyRow
	for tick := 1; tick <= 22; tick++ {
		g.Step(input())
		require.Equal(t, tick%11, g.Snapshot().EnemyRow, "tick %d", tick)
		require.Equal(t, g.Snapshot().CycleRow, g.Snapshot().EnemyRow)
	}
	assert.Equal(t, start, g.Snapshot().EnemyRow, "the cycle has period RoadHeight")
}

func TestEnemyColumnRerolledOnlyAtTop(t *testing.T) {
	src := &columnSequence{cols: []int{1, 3}}
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(src))
	require.Equal(t, 1, src.calls, "lane is rolled once at game start")

	prev := g.Snapshot().EnemyCol
	for tick := 1; tick <= 33; tick++ {
		g.Step(input())
		snap := g.Snapshot()
		if snap.EnemyCol != prev {
			assert.Equal(t, 0, snap.EnemyRow, "lane changed at tick %d off the top row", tick)
		}
		prev = snap.EnemyCol
	}
	assert.Equal(t, 4, src.calls, "one draw per wrap after the first")
	assert.Equal(t, StatusRunning, g.Status())
}

func TestScoringWhileAlive(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(1)))

	for tick := 1; tick <= 33; tick++ {
		g.Step(input())
		want := (tick + 1) / 11
		require.Equal(t, want, g.State().Score, "tick %d", tick)
	}
	assert.Equal(t, 3, g.State().Score)
	assert.True(t, g.Snapshot().Alive)
}

func TestScoringAtPlayerRow(t *testing.T) {
	cfg := config.DefaultRoadConfig()
	cfg.Scoring.Boundary = config.BoundaryPlayerRow

	g := newTestGame(cfg, WithRandomSource(fixedColumn(1)))
	stepN(g, 8)
	assert.Equal(t, 0, g.State().Score)
	g.Step(input())
	assert.Equal(t, 1, g.State().Score, "scores as the enemy passes the car")

	crash := newTestGame(cfg, WithRandomSource(fixedColumn(2)))
	stepN(crash, 9)
	assert.Equal(t, StatusDead, crash.Status())
	assert.Equal(t, 0, crash.State().Score, "the crash tick never scores")
}

func TestCollisionKillsPlayer(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(2)))

	for tick := 1; tick <= 8; tick++ {
		g.Step(input())
		require.Equal(t, StatusRunning, g.Status(), "tick %d", tick)
	}

	res := g.Step(input())
	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Finished())

	snap := g.Snapshot()
	assert.Equal(t, StatusDead, snap.Status)
	assert.False(t, snap.Alive)
	assert.Equal(t, 9, snap.EnemyRow)
	assert.Equal(t, 0, snap.Score)
}

func TestDodgeScores(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(2)))

	g.Step(input(core.ActionLeft))
	require.Equal(t, 1, g.Snapshot().PlayerCol)

	stepN(g, 9)
	snap := g.Snapshot()
	assert.Equal(t, 10, snap.EnemyRow)
	assert.True(t, snap.Alive)
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, 1, snap.Score)
}

func TestDeadGameIsFrozen(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(2)))
	stepN(g, 9)
	require.Equal(t, StatusDead, g.Status())

	frozen := g.Snapshot()
	for _, in := range []core.InputFrame{
		input(),
		input(core.ActionLeft),
		input(core.ActionRight),
		input(core.ActionQuit),
	} {
		res := g.Step(in)
		assert.True(t, res.State.GameOver)
		assert.Equal(t, frozen, g.Snapshot())
	}
}

func TestExitFreezesState(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(3)))
	stepN(g, 4)
	before := g.Snapshot()

	res := g.Step(input(core.ActionQuit, core.ActionLeft))
	assert.True(t, res.State.Exited)
	assert.False(t, res.State.GameOver)

	after := g.Snapshot()
	assert.Equal(t, StatusExited, after.Status)
	after.Status = before.Status
	assert.Equal(t, before, after, "exit applies before any movement or enemy update")

	stepN(g, 5)
	assert.Equal(t, StatusExited, g.Status())
	assert.Equal(t, uint64(4), g.Snapshot().Tick)
}

func TestDetectCollision(t *testing.T) {
	p := Player{Col: 2, Row: 9, Alive: true}

	assert.True(t, DetectCollision(p, Enemy{Col: 2, Row: 9}))
	assert.False(t, DetectCollision(p, Enemy{Col: 1, Row: 9}))
	assert.False(t, DetectCollision(p, Enemy{Col: 2, Row: 8}))
	assert.False(t, DetectCollision(p, Enemy{Col: 2, Row: 10}))
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must agree tick for tick.
	g1 := newTestGame(config.DefaultRoadConfig())
	g2 := newTestGame(config.DefaultRoadConfig())

	for i := 0; i < 200; i++ {
		in := input()
		switch i % 7 {
		case 2:
			in.Set(core.ActionLeft)
		case 5:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
		require.Equal(t, g1.Snapshot(), g2.Snapshot(), "tick %d", i)
	}
}

func TestSeededSourceStaysInLanes(t *testing.T) {
	src := NewSeededSource(99)
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		c := src.NextColumn(1, 3)
		require.GreaterOrEqual(t, c, 1)
		require.LessOrEqual(t, c, 3)
		seen[c] = true
	}
	assert.Len(t, seen, 3, "every lane is reachable")
	assert.Equal(t, 2, src.NextColumn(2, 2))
}

func TestReset(t *testing.T) {
	g := newTestGame(config.DefaultRoadConfig(), WithRandomSource(fixedColumn(2)))
	initial := g.Snapshot()

	g.Step(input(core.ActionLeft))
	stepN(g, 20)
	require.NotEqual(t, initial, g.Snapshot())

	g.Reset(testRuntime())
	assert.Equal(t, initial, g.Snapshot())
}

func TestGridLayout(t *testing.T) {
	grid := NewGrid(11, 5)

	assert.Equal(t, 11, grid.Rows())
	assert.Equal(t, 5, grid.Cols())
	for r := 0; r < grid.Rows(); r++ {
		assert.Equal(t, CellWall, grid.At(r, 0))
		assert.Equal(t, CellWall, grid.At(r, 4))
		for c := 1; c <= 3; c++ {
			assert.Equal(t, CellEmpty, grid.At(r, c))
		}
	}
	assert.Equal(t, CellWall, grid.At(-1, 2), "outside reads as wall")
	assert.Equal(t, 1, grid.MinLane())
	assert.Equal(t, 3, grid.MaxLane())
	assert.False(t, grid.Drivable(0))
	assert.True(t, grid.Drivable(3))
	assert.Equal(t, 3, grid.ClampLane(9))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "dead", StatusDead.String())
	assert.Equal(t, "exited", StatusExited.String())
}
