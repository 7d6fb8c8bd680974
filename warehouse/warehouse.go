package warehouse

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
)

// ErrBadMove indicates a character in the move list that is not an arrow.
var ErrBadMove = fmt.Errorf("warehouse: bad move: %w", grid.ErrMalformedInput)

// Warehouse is a floor map with the robot's position cached.
type Warehouse struct {
	g     *grid.Grid
	robot grid.Position
}

// New takes a private copy of g and locates the robot '@'.
func New(g *grid.Grid) (*Warehouse, error) {
	robot, err := g.Require(grid.Robot)
	if err != nil {
		return nil, err
	}
	return &Warehouse{g: g.Clone(), robot: robot}, nil
}

// Parse reads a map block, a blank line and any number of move lines.
// Whitespace inside the move block is ignored.
func Parse(text string) (*Warehouse, []grid.Direction, error) {
	text = strings.ReplaceAll(text, "\r", "")
	floor, moves, _ := strings.Cut(strings.Trim(text, "\n"), "\n\n")

	g, err := grid.Parse(floor)
	if err != nil {
		return nil, nil, err
	}
	w, err := New(g)
	if err != nil {
		return nil, nil, err
	}

	dirs := make([]grid.Direction, 0, len(moves))
	for i := 0; i < len(moves); i++ {
		c := moves[i]
		if c == '\n' || c == ' ' || c == '\t' {
			continue
		}
		d, ok := grid.ParseArrow(c)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q at offset %d", ErrBadMove, c, i)
		}
		dirs = append(dirs, d)
	}
	return w, dirs, nil
}

// Robot returns the robot's current position.
func (w *Warehouse) Robot() grid.Position { return w.robot }

// Grid returns a snapshot of the floor.
func (w *Warehouse) Grid() *grid.Grid { return w.g.Clone() }

// String renders the floor as text.
func (w *Warehouse) String() string { return w.g.String() }

// Move tries to move the robot one cell in direction d, pushing boxes.
// It reports whether anything moved; a blocked push leaves the floor as is.
func (w *Warehouse) Move(d grid.Direction) bool {
	cells, ok := w.pushSet(d)
	if !ok {
		return false
	}

	vals := make([]byte, len(cells))
	for i, p := range cells {
		vals[i] = w.g.At(p)
		w.g.Set(p, grid.Open)
	}
	for i, p := range cells {
		w.g.Set(p.Step(d), vals[i])
	}
	w.robot = w.robot.Step(d)
	return true
}

// pushSet collects the robot and every box that a move in d would displace,
// breadth-first from the robot. It fails as soon as any of them faces a wall.
func (w *Warehouse) pushSet(d grid.Direction) ([]grid.Position, bool) {
	vertical := d == grid.North || d == grid.South
	seen := map[grid.Position]bool{w.robot: true}
	queue := []grid.Position{w.robot}

	add := func(p grid.Position) {
		if !seen[p] {
			seen[p] = true
			queue = append(queue, p)
		}
	}

	for i := 0; i < len(queue); i++ {
		next := queue[i].Step(d)
		c, in := w.g.Lookup(next)
		if !in {
			return nil, false
		}
		switch c {
		case grid.Wall:
			return nil, false
		case grid.Box:
			add(next)
		case grid.BoxLeft:
			add(next)
			if vertical {
				add(next.Step(grid.East))
			}
		case grid.BoxRight:
			add(next)
			if vertical {
				add(next.Step(grid.West))
			}
		}
	}
	return queue, true
}

// Run applies moves in order and returns how many of them succeeded.
func (w *Warehouse) Run(moves []grid.Direction) int {
	n := 0
	for _, d := range moves {
		if w.Move(d) {
			n++
		}
	}
	return n
}

// GPS sums 100·row + col over every box, measured at the left edge of wide
// boxes.
func (w *Warehouse) GPS() int {
	sum := 0
	for _, c := range []byte{grid.Box, grid.BoxLeft} {
		for _, p := range w.g.FindAll(c) {
			sum += 100*p.Row + p.Col
		}
	}
	return sum
}

// Widen returns a new warehouse twice as wide: walls and floor double,
// each box becomes "[]" and the robot keeps the left cell.
func (w *Warehouse) Widen() *Warehouse {
	rows := w.g.Rows()
	wide := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		b.Grow(2 * len(row))
		for j := 0; j < len(row); j++ {
			switch c := row[j]; c {
			case grid.Box:
				b.WriteString("[]")
			case grid.Robot:
				b.WriteString("@.")
			default:
				b.WriteByte(c)
				b.WriteByte(c)
			}
		}
		wide[i] = b.String()
	}
	g, _ := grid.FromRows(wide)
	return &Warehouse{g: g, robot: grid.Position{Row: w.robot.Row, Col: 2 * w.robot.Col}}
}
