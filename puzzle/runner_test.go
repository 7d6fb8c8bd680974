package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/puzzle"
)

func TestRunner_Samples(t *testing.T) {
	m, err := puzzle.LoadManifest("testdata/samples.yaml")
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	r := puzzle.NewRunner(puzzle.Default(), zap.New(core))

	for _, e := range m.Puzzles {
		t.Run(e.Name, func(t *testing.T) {
			ans, err := r.Run(e)
			require.NoError(t, err)
			assert.Equal(t, *e.Expect, ans)
		})
	}

	solved := logs.FilterMessage("solved").All()
	require.Len(t, solved, len(m.Puzzles))
	assert.Equal(t, "lab", solved[0].ContextMap()["puzzle"])
	assert.Equal(t, "41", solved[0].ContextMap()["part1"])
}

func TestRunner_Mismatch(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := puzzle.NewRunner(puzzle.Default(), zap.New(core))

	e := puzzle.Entry{Name: "s", Kind: "stones", Text: "125 17", Expect: &puzzle.Answer{Part1: "1", Part2: "2"}}
	ans, err := r.Run(e)
	assert.ErrorIs(t, err, puzzle.ErrMismatch)
	assert.Equal(t, "55312", ans.Part1)
	assert.Equal(t, 1, logs.FilterMessage("unexpected answer").Len())
}

func TestRunner_Errors(t *testing.T) {
	r := puzzle.NewRunner(puzzle.Default(), nil)

	_, err := r.Solve("sudoku", "", nil)
	assert.ErrorIs(t, err, puzzle.ErrUnknownKind)

	_, err = r.Solve("maze", "#S.#", nil)
	assert.ErrorIs(t, err, grid.ErrMarkerNotFound)

	_, err = r.Solve("stones", "1", map[string]any{"blinkz": 3})
	assert.ErrorIs(t, err, puzzle.ErrBadParams)

	_, err = r.Solve("blockade", "0,0", map[string]any{"size": "many"})
	assert.ErrorIs(t, err, grid.ErrMalformedInput)

	_, _, err = r.Draw("garden", "AB", nil)
	assert.ErrorIs(t, err, puzzle.ErrNoVisual)
}

func TestRunner_Solve_WeakParams(t *testing.T) {
	r := puzzle.NewRunner(puzzle.Default(), zap.NewNop())
	params, err := puzzle.ParseParams([]string{"forward=1", "turn = 1", "reverse=false"})
	require.NoError(t, err)

	ans, err := r.Solve("maze", "#####\n#..E#\n#S###\n#####", params)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "5", Part2: "4"}, ans)

	_, err = puzzle.ParseParams([]string{"novalue"})
	assert.ErrorIs(t, err, puzzle.ErrBadParams)
}

func TestRunner_Solve_BlockadeNeverBlocked(t *testing.T) {
	r := puzzle.NewRunner(puzzle.Default(), zap.NewNop())

	ans, err := r.Solve("blockade", "1,1", map[string]any{"size": 3, "drops": 1})
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "4", Part2: puzzle.NoAnswer}, ans)
}

func TestRunner_Solve_FreeForwardMaze(t *testing.T) {
	r := puzzle.NewRunner(puzzle.Default(), zap.NewNop())

	ans, err := r.Solve("maze", "#####\n#..E#\n#S###\n#####", map[string]any{"forward": 0, "turn": 1})
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "2", Part2: "4"}, ans)
}

func TestRunner_Draw(t *testing.T) {
	r := puzzle.NewRunner(puzzle.Default(), zap.NewNop())

	g, ov, err := r.Draw("maze", "#####\n#..E#\n#S###\n#####", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width)
	assert.Len(t, ov.Path, 4)

	g, ov, err = r.Draw("patrol", "...\n.^.\n...", nil)
	require.NoError(t, err)
	require.NotNil(t, ov.Agent)
	assert.Equal(t, grid.North, ov.Agent.Dir)
	assert.Equal(t, []grid.Position{{Row: 1, Col: 1}, {Row: 0, Col: 1}}, ov.Visited)

	g, _, err = r.Draw("warehouse", "#@O.#\n\n>>", map[string]any{"wide": "true"})
	require.NoError(t, err)
	assert.Equal(t, "##..@[].##", g.String())
}

func TestRegistry(t *testing.T) {
	reg := puzzle.Default()
	var names []string
	for _, k := range reg.Kinds() {
		names = append(names, k.Name)
		assert.NotNil(t, k.Solve, k.Name)
		assert.NotEmpty(t, k.Summary, k.Name)
	}
	assert.Equal(t, []string{"blockade", "garden", "maze", "patrol", "stones", "towels", "trail", "warehouse"}, names)

	reg.Register(puzzle.Kind{Name: "echo", Solve: func(in string, _ map[string]any) (puzzle.Answer, error) {
		return puzzle.Answer{Part1: in, Part2: in}, nil
	}})
	ans, err := puzzle.NewRunner(reg, nil).Solve("echo", "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", ans.Part2)
}
