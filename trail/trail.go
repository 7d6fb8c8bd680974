package trail

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/memo"
)

// Height bounds of a trail.
const (
	Base   = 0
	Summit = 9
)

// ErrBadHeight indicates a cell that is neither a digit nor '.'.
var ErrBadHeight = fmt.Errorf("trail: bad height: %w", grid.ErrMalformedInput)

// Cache holds trail counts per position for one map.
type Cache = memo.Cache[grid.Position, int]

// NewCache returns an empty rating cache.
func NewCache() *Cache { return memo.New[grid.Position, int]() }

// Parse builds a height map and checks every cell.
func Parse(text string) (*grid.Grid, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	for r, row := range g.Rows() {
		for c := 0; c < len(row); c++ {
			if ch := row[c]; ch != grid.Open && (ch < '0' || ch > '9') {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadHeight, ch, r, c)
			}
		}
	}
	return g, nil
}

// height returns the digit at p, or -1 for impassable or out-of-bounds cells.
func height(g *grid.Grid, p grid.Position) int {
	c, ok := g.Lookup(p)
	if !ok || c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}

// uphill returns the neighbours of p exactly one unit higher.
func uphill(g *grid.Grid, p grid.Position) []grid.Position {
	h := height(g, p)
	out := make([]grid.Position, 0, 4)
	for _, q := range g.Neighbors4(p) {
		if height(g, q) == h+1 {
			out = append(out, q)
		}
	}
	return out
}

// Trailheads returns every height-0 cell in row-major order.
func Trailheads(g *grid.Grid) []grid.Position {
	return g.FindAll('0' + Base)
}

// Summits returns the distinct height-9 cells reachable from head, in BFS
// discovery order.
func Summits(g *grid.Grid, head grid.Position) []grid.Position {
	if height(g, head) < 0 {
		return nil
	}
	visited := map[grid.Position]bool{head: true}
	queue := []grid.Position{head}
	var out []grid.Position
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if height(g, p) == Summit {
			out = append(out, p)
			continue
		}
		for _, q := range uphill(g, p) {
			if !visited[q] {
				visited[q] = true
				queue = append(queue, q)
			}
		}
	}
	return out
}

// Score is the number of distinct summits reachable from head.
func Score(g *grid.Grid, head grid.Position) int {
	return len(Summits(g, head))
}

// Rating is the number of distinct trails from p to any summit. The cache is
// keyed by position and must not be shared across maps; nil is allowed.
func Rating(g *grid.Grid, p grid.Position, cache *Cache) int {
	if cache == nil {
		cache = NewCache()
	}
	return rating(g, p, cache)
}

func rating(g *grid.Grid, p grid.Position, cache *Cache) int {
	h := height(g, p)
	if h < 0 {
		return 0
	}
	if h == Summit {
		return 1
	}
	return cache.Do(p, func() int {
		n := 0
		for _, q := range uphill(g, p) {
			n += rating(g, q, cache)
		}
		return n
	})
}

// Sum returns the total score and total rating over all trailheads.
func Sum(g *grid.Grid) (score, rating int) {
	cache := NewCache()
	for _, head := range Trailheads(g) {
		score += Score(g, head)
		rating += Rating(g, head, cache)
	}
	return score, rating
}
