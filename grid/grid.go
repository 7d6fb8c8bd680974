package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular character grid stored row-major.
// Width and Height are fixed once built; cell values may change only through Set.
type Grid struct {
	Width, Height int
	cells         []byte
}

// New returns a width×height grid filled with fill.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(width, height int, fill byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// Parse builds a Grid from text, one row per line.
// Leading and trailing blank lines are ignored and "\r" is stripped,
// so both heredoc literals and files with CRLF endings parse the same way.
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return FromRows(strings.Split(text, "\n"))
}

// FromRows builds a Grid from equal-length rows, deep-copying the input.
// Returns ErrEmptyGrid if rows is empty or the first row is empty,
// ErrNonRectangular (with the offending row) if any length differs.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, w*h)
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p. It panics with ErrOutOfBounds if p is invalid;
// callers must check InBounds first or use Lookup.
func (g *Grid) At(p Position) byte {
	g.mustContain(p)
	return g.cells[g.index(p)]
}

// Lookup returns the cell at p and whether p is in bounds.
func (g *Grid) Lookup(p Position) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.index(p)], true
}

// Set overwrites the cell at p in place. It panics with ErrOutOfBounds if p is invalid.
func (g *Grid) Set(p Position, c byte) {
	g.mustContain(p)
	g.cells[g.index(p)] = c
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// WithCell returns a copy of g with exactly one cell replaced.
// The receiver is left untouched.
func (g *Grid) WithCell(p Position, c byte) *Grid {
	out := g.Clone()
	out.Set(p, c)
	return out
}

// Find returns the first position (row-major) holding c.
func (g *Grid) Find(c byte) (Position, bool) {
	for i, v := range g.cells {
		if v == c {
			return g.Coordinate(i), true
		}
	}
	return Position{}, false
}

// Require is Find for markers that must exist.
// Returns ErrMarkerNotFound naming the marker otherwise.
func (g *Grid) Require(c byte) (Position, error) {
	p, ok := g.Find(c)
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, c)
	}
	return p, nil
}

// FindAll returns every position holding c in row-major order.
func (g *Grid) FindAll(c byte) []Position {
	var out []Position
	for i, v := range g.cells {
		if v == c {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Count returns the number of cells equal to c.
func (g *Grid) Count(c byte) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Neighbors4 returns the in-bounds orthogonal neighbours of p
// in North, East, South, West order.
func (g *Grid) Neighbors4(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range Directions {
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Rows returns the grid as text rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for r := 0; r < g.Height; r++ {
		rows[r] = string(g.cells[r*g.Width : (r+1)*g.Width])
	}
	return rows
}

// String joins Rows with newlines; Parse(g.String()) reproduces g.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// index maps p to its row-major offset: Row*Width + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major offset back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.Width, Col: idx % g.Width}
}

func (g *Grid) mustContain(p Position) {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height))
	}
}
