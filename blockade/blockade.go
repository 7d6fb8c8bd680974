package blockade

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/astar"
	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrNeverBlocked indicates the exit stays reachable after every drop.
	ErrNeverBlocked = errors.New("blockade: exit reachable after all drops")

	// ErrBadDrop indicates a malformed drop line or a drop outside the grid.
	ErrBadDrop = fmt.Errorf("blockade: bad drop: %w", grid.ErrMalformedInput)
)

// ParseDrops reads one "X,Y" pair per line. X is the column and Y the row.
// Blank lines are skipped.
func ParseDrops(text string) ([]grid.Position, error) {
	var drops []grid.Position
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		xs, ys, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadDrop, line, s)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadDrop, line, s)
		}
		drops = append(drops, grid.Position{Row: y, Col: x})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return drops, nil
}

// Corrupt builds a size×size open grid with the first n drops walled off.
// n is clamped to [0, len(drops)].
func Corrupt(size int, drops []grid.Position, n int) (*grid.Grid, error) {
	g, err := grid.New(size, size, grid.Open)
	if err != nil {
		return nil, err
	}
	n = clamp(n, len(drops))
	for i, p := range drops[:n] {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: drop %d at %v outside %dx%d", ErrBadDrop, i, p, size, size)
		}
		g.Set(p, grid.Wall)
	}
	return g, nil
}

// ShortestExit returns the number of steps from (0,0) to (size-1,size-1)
// after the first n drops. A corrupted corner is reported as astar.ErrNoPath.
func ShortestExit(size int, drops []grid.Position, n int, opts ...astar.Option) (int, error) {
	g, err := Corrupt(size, drops, n)
	if err != nil {
		return 0, err
	}
	return exit(g, opts)
}

func exit(g *grid.Grid, opts []astar.Option) (int, error) {
	start := grid.Position{}
	goal := grid.Position{Row: g.Height - 1, Col: g.Width - 1}
	if g.At(start) == grid.Wall || g.At(goal) == grid.Wall {
		return 0, fmt.Errorf("%w: corner corrupted", astar.ErrNoPath)
	}
	opts = append([]astar.Option{astar.WithRules(astar.StepRules{Cost: 1})}, opts...)
	res, err := astar.Search(g, grid.State{Pos: start, Dir: grid.East}, goal, opts...)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// FirstBlocking returns the 0-based index of the first drop after which the
// exit is unreachable, or ErrNeverBlocked.
//
// The predicate "unreachable after n drops" is monotone in n, so sort.Search
// finds the smallest such n in O(log D) searches; the blocking drop is the
// n-th one, at index n-1.
func FirstBlocking(size int, drops []grid.Position, opts ...astar.Option) (int, error) {
	if _, err := Corrupt(size, drops, len(drops)); err != nil {
		return 0, err
	}

	var failure error
	n := sort.Search(len(drops)+1, func(n int) bool {
		if failure != nil {
			return true
		}
		_, err := ShortestExit(size, drops, n, opts...)
		switch {
		case errors.Is(err, astar.ErrNoPath):
			return true
		case err != nil:
			failure = err
			return true
		}
		return false
	})
	if failure != nil {
		return 0, failure
	}
	if n > len(drops) {
		return 0, ErrNeverBlocked
	}
	return n - 1, nil
}

func clamp(n, hi int) int {
	if n < 0 {
		return 0
	}
	if n > hi {
		return hi
	}
	return n
}
