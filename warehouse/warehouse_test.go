package warehouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/warehouse"
)

const small = `
########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`

const large = `
##########
#..O..O.O#
#......O.#
#.OO..O.O#
#..O@..O.#
#O#..O...#
#O..O..O.#
#.OO.O.OO#
#....O...#
##########

<vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>>v<vvv<>^v^>^<<<><<v<<<v^vv^v>^
vvv<<^>^v^^><<>>><>^<<><^vv^^<>vvv<>><^^v>^>vv<>v<<<<v<^v>^<^^>>>^<v<v
><>vv>v^v^<>><>>>><^^>vv>v<^^^>>v^v^<^^>v^^>v^<^v>v<>>v^v^<v>v^^<^^vv<
<<v<^>>^^^^>>>v^<>vvv^><v<<<>^^^vv^<vvv>^>v<^^^^v<>^>vvvv><>>v^<<^^^^^
^><^><>>><>^^<<^^v>>><^<v>^<vv>>v>>>^v><>^v><<<<v>>v<v<v>vvv>^<><<>^><
^>><>^v<><^vvv<^^<><v<<<<<><^v<<<><<<^^<v<^^^><^>>^<v^><<<^>>^v<v^v<v^
>^>>^v>vv>^<<^v<>><<><<v<<v><>v<^vv<<<>^^v^>^^>>><<^v>>v^v><^^>>^<>vv^
<><^^>^^^<><vvvvv^v<v<<>^v<v>v<<^><<><<><<<^^<<<^<<>><<><^^^>^^<>^>v<>
^^>vv<^v^v<vv>^<><v<^v>^^^>>>^^vvv^>vvv<>>>^<^>>>>>^<<^v>^vvv<>^<><<v>
v^^>>><<^^<>>^v^<v^vv<>v^<<>^<^v^v><^<<<><<^<v><v<>vv>>v><v^<vv<>v^<<^
`

const pyramid = `
#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vvv<<^^<<^^
`

func parse(t *testing.T, text string) (*warehouse.Warehouse, []grid.Direction) {
	t.Helper()
	w, moves, err := warehouse.Parse(text)
	require.NoError(t, err)
	return w, moves
}

func TestRun_Small(t *testing.T) {
	w, moves := parse(t, small)
	assert.Len(t, moves, 15)
	assert.Equal(t, grid.Position{Row: 2, Col: 2}, w.Robot())

	assert.Equal(t, 10, w.Run(moves))
	assert.Equal(t, 2028, w.GPS())
	assert.Equal(t, grid.Position{Row: 4, Col: 4}, w.Robot())
	assert.Equal(t, "########\n"+
		"#....OO#\n"+
		"##.....#\n"+
		"#.....O#\n"+
		"#.#O@..#\n"+
		"#...O..#\n"+
		"#...O..#\n"+
		"########", w.String())
}

func TestRun_Large(t *testing.T) {
	w, moves := parse(t, large)
	wide := w.Widen()

	w.Run(moves)
	assert.Equal(t, 10092, w.GPS())

	wide.Run(moves)
	assert.Equal(t, 9021, wide.GPS())
	assert.Equal(t, wide.Grid().Count(grid.BoxLeft), wide.Grid().Count(grid.BoxRight))
}

func TestRun_WidePyramid(t *testing.T) {
	w, moves := parse(t, pyramid)
	wide := w.Widen()
	wide.Run(moves)
	assert.Equal(t, 618, wide.GPS())
}

func TestWiden(t *testing.T) {
	w, _ := parse(t, "#O.@#")
	wide := w.Widen()
	assert.Equal(t, "##[]..@.##", wide.String())
	assert.Equal(t, grid.Position{Row: 0, Col: 6}, wide.Robot())
	assert.Equal(t, 2, wide.GPS())
}

func TestMove(t *testing.T) {
	cases := []struct {
		name  string
		floor string
		dir   grid.Direction
		moved bool
		after string
	}{
		{"free", "#@.#", grid.East, true, "#.@#"},
		{"wall", "#@#", grid.West, false, "#@#"},
		{"chain", "#@OO.#", grid.East, true, "#.@OO#"},
		{"chain blocked", "#@OO#", grid.East, false, "#@OO#"},
		{"wide horizontal", "#@[].#", grid.East, true, "#.@[]#"},
		{"wide vertical blocked", "###.\n#.[]\n#..@\n####", grid.North, false, "###.\n#.[]\n#..@\n####"},
		{"wide vertical pushes pair", "#...\n#.[]\n#..@\n####", grid.North, true, "#.[]\n#..@\n#...\n####"},
		{"wide pyramid blocked", "#....#\n#.#..#\n#.[].#\n#..[]#\n#..@.#", grid.North, false, "#....#\n#.#..#\n#.[].#\n#..[]#\n#..@.#"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.floor)
			require.NoError(t, err)
			w, err := warehouse.New(g)
			require.NoError(t, err)

			assert.Equal(t, tc.moved, w.Move(tc.dir))
			assert.Equal(t, tc.after, w.String())
			assert.Equal(t, tc.floor, g.String(), "New must copy its input")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, _, err := warehouse.Parse("#..#\n\n<>")
	assert.ErrorIs(t, err, grid.ErrMarkerNotFound)

	_, _, err = warehouse.Parse("#@.#\n\n<x>")
	assert.ErrorIs(t, err, warehouse.ErrBadMove)
	assert.ErrorIs(t, err, grid.ErrMalformedInput)

	w, moves, err := warehouse.Parse("#@.#")
	require.NoError(t, err)
	assert.Empty(t, moves)
	assert.Equal(t, 0, w.Run(moves))
}
