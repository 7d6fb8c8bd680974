package patrol_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/patrol"
)

const lab = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

func setup(t *testing.T, text string) (*grid.Grid, grid.State) {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	start, err := patrol.StartState(g)
	require.NoError(t, err)
	return g, start
}

func TestSimulate_LeavesGrid(t *testing.T) {
	g, start := setup(t, lab)
	assert.Equal(t, grid.State{Pos: pos(6, 4), Dir: grid.North}, start)

	res, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, patrol.PatrolEnd, res.Outcome)
	assert.Equal(t, 44, res.Steps)
	assert.Len(t, res.History, res.Steps+1)
	assert.Equal(t, 41, res.Coverage())
	assert.Equal(t, start.Pos, res.Visited()[0])
}

func TestSimulate_LoopBackToStart(t *testing.T) {
	g, start := setup(t, ".#..\n.^.#\n#...\n..#.")

	res, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, patrol.LoopDetected, res.Outcome)
	assert.Equal(t, 4, res.Steps)

	want := []grid.State{
		{Pos: pos(1, 1), Dir: grid.North},
		{Pos: pos(1, 2), Dir: grid.East},
		{Pos: pos(2, 2), Dir: grid.South},
		{Pos: pos(2, 1), Dir: grid.West},
		{Pos: pos(1, 1), Dir: grid.North},
	}
	if diff := cmp.Diff(want, res.History); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, res.Coverage())
}

func TestSimulate_WalledRing(t *testing.T) {
	g, start := setup(t, "####\n#^.#\n#..#\n####")

	res, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, patrol.LoopDetected, res.Outcome)
	assert.Equal(t, 4, res.Steps, "the first repeat is the start state, four steps in")
	assert.Equal(t, res.History[0], res.History[4])
}

func TestSimulate_OneStepOut(t *testing.T) {
	g, start := setup(t, "...\n.^.\n...")
	res, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, patrol.PatrolEnd, res.Outcome)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, []grid.Position{pos(1, 1), pos(0, 1)}, res.Visited())
}

func TestSimulate_Errors(t *testing.T) {
	t.Run("trapped", func(t *testing.T) {
		g, start := setup(t, ".#.\n#^#\n.#.")
		_, err := patrol.Simulate(g, start)
		assert.ErrorIs(t, err, patrol.ErrTrapped)
	})
	t.Run("nil grid", func(t *testing.T) {
		_, err := patrol.Simulate(nil, grid.State{})
		assert.ErrorIs(t, err, patrol.ErrNilGrid)
	})
	t.Run("start outside", func(t *testing.T) {
		g, _ := setup(t, "^..")
		_, err := patrol.Simulate(g, grid.State{Pos: pos(5, 5)})
		assert.ErrorIs(t, err, grid.ErrMalformedInput)
	})
	t.Run("step limit", func(t *testing.T) {
		g, start := setup(t, lab)
		_, err := patrol.Simulate(g, start, patrol.WithMaxSteps(10))
		assert.ErrorIs(t, err, patrol.ErrStepLimit)
	})
	t.Run("no guard", func(t *testing.T) {
		g, err := grid.Parse("...")
		require.NoError(t, err)
		_, err = patrol.StartState(g)
		assert.ErrorIs(t, err, grid.ErrMarkerNotFound)
	})
}

func TestStep_EdgeBeforeObstacle(t *testing.T) {
	g, err := grid.Parse("..\n..")
	require.NoError(t, err)
	_, ok, err := patrol.Step(g, grid.State{Pos: pos(0, 0), Dir: grid.North})
	require.NoError(t, err)
	assert.False(t, ok)

	next, ok, err := patrol.Step(g, grid.State{Pos: pos(0, 0), Dir: grid.East})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, grid.State{Pos: pos(0, 1), Dir: grid.East}, next)
}

func TestStep_CustomObstacle(t *testing.T) {
	g, err := grid.Parse("~.\n..")
	require.NoError(t, err)
	water := patrol.WithBlocked(func(c byte) bool { return c == '~' })

	next, ok, err := patrol.Step(g, grid.State{Pos: pos(1, 0), Dir: grid.North}, water)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, grid.State{Pos: pos(1, 1), Dir: grid.East}, next)
}

func TestStartState_Headings(t *testing.T) {
	for arrow, dir := range map[string]grid.Direction{"^": grid.North, ">": grid.East, "v": grid.South, "<": grid.West} {
		g, err := grid.Parse("." + arrow)
		require.NoError(t, err)
		s, err := patrol.StartState(g)
		require.NoError(t, err)
		assert.Equal(t, grid.State{Pos: pos(0, 1), Dir: dir}, s)
	}
}

func TestLoopingObstacles(t *testing.T) {
	g, start := setup(t, lab)
	before := g.String()

	got, err := patrol.LoopingObstacles(g, start)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{pos(6, 3), pos(7, 6), pos(8, 3), pos(8, 1), pos(7, 7), pos(9, 7)}, got)
	assert.NotContains(t, got, start.Pos)
	assert.Equal(t, before, g.String(), "input grid must not be mutated")
}
