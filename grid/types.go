package grid

import "fmt"

// Cell markers shared by the puzzles built on this package.
const (
	Wall     byte = '#'
	Open     byte = '.'
	Start    byte = 'S'
	End      byte = 'E'
	Guard    byte = '^'
	Box      byte = 'O'
	BoxLeft  byte = '['
	BoxRight byte = ']'
	Robot    byte = '@'
)

// Position is a (Row, Col) coordinate. Row grows downwards, Col to the right.
type Position struct {
	Row, Col int
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Step returns the neighbour of p in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Vector()
	return p.Add(dr, dc)
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four cardinal headings.
// The numeric order is clockwise, so a right turn is +1 mod 4.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the headings in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var vectors = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Vector returns the unit movement (dRow, dCol) of d.
func (d Direction) Vector() (dr, dc int) {
	v := vectors[d&3]
	return v[0], v[1]
}

// Right returns d rotated 90° clockwise.
func (d Direction) Right() Direction { return (d + 1) & 3 }

// Left returns d rotated 90° counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

// String returns the compass name of d.
func (d Direction) String() string {
	switch d & 3 {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Arrow returns the arrow marker of d: ^ > v <.
func (d Direction) Arrow() byte {
	return "^>v<"[d&3]
}

// ParseArrow maps an arrow marker to its heading.
func ParseArrow(c byte) (Direction, bool) {
	switch c {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	}
	return 0, false
}

// ParseDirection accepts a compass name ("north", "e", ...) or an arrow.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "n", "up", "^":
		return North, nil
	case "east", "e", "right", ">":
		return East, nil
	case "south", "s", "down", "v":
		return South, nil
	case "west", "w", "left", "<":
		return West, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrMalformedInput, s)
}

// State is the agent's position and heading. It is the unit of visitation
// for loop detection and the unit of expansion for path search.
type State struct {
	Pos Position
	Dir Direction
}

// String formats s as "(row,col) heading".
func (s State) String() string {
	return s.Pos.String() + " " + s.Dir.String()
}

// Region is a 4-connected component of equal cells.
type Region struct {
	Cell  byte       // shared cell value
	Cells []Position // members in discovery order
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
