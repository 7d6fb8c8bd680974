package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

//----------------------------------------------------------------------------//
// Parse / FromRows
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty or ragged inputs and
// that every rejection is reported as malformed input.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid},
		{"NonRectangular", "###\n#.\n###", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
			assert.ErrorIs(t, err, grid.ErrMalformedInput)
		})
	}
}

func TestParse_TrimsAndStripsCR(t *testing.T) {
	g, err := grid.Parse("\n#.#\r\n...\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, "#.#\n...", g.String())
}

func TestFromRows_RoundTrip(t *testing.T) {
	rows := []string{"S..#", ".#..", "...E"}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, rows, g.Rows())

	again, err := grid.Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g.Rows(), again.Rows())
}

func TestNew_Fill(t *testing.T) {
	g, err := grid.New(3, 2, grid.Open)
	require.NoError(t, err)
	assert.Equal(t, []string{"...", "..."}, g.Rows())

	_, err = grid.New(0, 2, grid.Open)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Bounds and cell access
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.FromRows([]string{"...", "..."})
	require.NoError(t, err)

	for _, p := range []grid.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {0, 3}, {2, 1}, {0, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

func TestAt_PanicsOutOfBounds(t *testing.T) {
	g, _ := grid.FromRows([]string{"ab", "cd"})
	assert.Equal(t, byte('c'), g.At(grid.Position{Row: 1, Col: 0}))

	defer func() {
		r := recover()
		require.NotNil(t, r, "At out of bounds must panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	}()
	g.At(grid.Position{Row: 2, Col: 0})
}

func TestLookup(t *testing.T) {
	g, _ := grid.FromRows([]string{"ab"})
	c, ok := g.Lookup(grid.Position{Row: 0, Col: 1})
	assert.True(t, ok)
	assert.Equal(t, byte('b'), c)
	_, ok = g.Lookup(grid.Position{Row: 0, Col: 2})
	assert.False(t, ok)
}

// TestWithCell_LeavesOriginal ensures the single-cell variant used by
// obstacle experiments never aliases the source grid.
func TestWithCell_LeavesOriginal(t *testing.T) {
	g, _ := grid.FromRows([]string{"...", "..."})
	p := grid.Position{Row: 1, Col: 1}
	v := g.WithCell(p, grid.Wall)

	assert.Equal(t, grid.Wall, v.At(p))
	assert.Equal(t, grid.Open, g.At(p))
	assert.Equal(t, 1, v.Count(grid.Wall))
	assert.Equal(t, 0, g.Count(grid.Wall))
}

func TestFindAndRequire(t *testing.T) {
	g, _ := grid.FromRows([]string{"#S#", "E.E"})
	p, ok := g.Find('S')
	assert.True(t, ok)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, p)
	assert.Equal(t, []grid.Position{{1, 0}, {1, 2}}, g.FindAll('E'))

	_, err := g.Require('@')
	assert.ErrorIs(t, err, grid.ErrMarkerNotFound)
	assert.ErrorIs(t, err, grid.ErrMalformedInput)
}

func TestNeighbors4_Corner(t *testing.T) {
	g, _ := grid.New(3, 3, grid.Open)
	assert.Equal(t,
		[]grid.Position{{0, 1}, {1, 0}},
		g.Neighbors4(grid.Position{Row: 0, Col: 0}),
	)
	assert.Len(t, g.Neighbors4(grid.Position{Row: 1, Col: 1}), 4)
}

func TestCoordinate(t *testing.T) {
	g, _ := grid.New(4, 3, grid.Open)
	assert.Equal(t, grid.Position{Row: 2, Col: 1}, g.Coordinate(9))
}
