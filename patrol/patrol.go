package patrol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Step applies one transition from s.
//
// The bounds check comes before the obstacle check: a guard facing the edge
// leaves (ok == false) even if it would otherwise have turned. A blocked cell
// ahead rotates the heading right and retries; after four blocked headings
// Step returns ErrTrapped.
func Step(g *grid.Grid, s grid.State, opts ...Option) (next grid.State, ok bool, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return grid.State{}, false, ErrNilGrid
	}
	return step(g, s, cfg.Blocked)
}

func step(g *grid.Grid, s grid.State, blocked func(byte) bool) (grid.State, bool, error) {
	dir := s.Dir
	for range grid.Directions {
		ahead := s.Pos.Step(dir)
		c, in := g.Lookup(ahead)
		if !in {
			return grid.State{}, false, nil
		}
		if !blocked(c) {
			return grid.State{Pos: ahead, Dir: dir}, true, nil
		}
		dir = dir.Right()
	}
	return grid.State{}, false, fmt.Errorf("%w: at %v", ErrTrapped, s.Pos)
}

// Simulate walks from start until the guard leaves the grid or repeats a
// state. The start state is part of the history, so returning to it counts
// as a loop.
//
// Errors: ErrNilGrid, grid.ErrMalformedInput for a start outside the grid,
// ErrTrapped, ErrStepLimit.
func Simulate(g *grid.Grid, start grid.State, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start.Pos) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d grid", grid.ErrMalformedInput, start.Pos, g.Width, g.Height)
	}
	limit := cfg.MaxSteps
	if limit <= 0 {
		limit = 4 * g.Width * g.Height
	}

	w := &walker{
		g:       g,
		blocked: cfg.Blocked,
		limit:   limit,
		seen:    map[grid.State]bool{start: true},
		res:     &Result{History: []grid.State{start}},
	}
	if err := w.run(start); err != nil {
		return nil, err
	}
	return w.res, nil
}

// walker holds the mutable state of one simulation.
type walker struct {
	g       *grid.Grid
	blocked func(byte) bool
	limit   int
	seen    map[grid.State]bool
	res     *Result
}

func (w *walker) run(cur grid.State) error {
	for {
		next, ok, err := step(w.g, cur, w.blocked)
		if err != nil {
			return err
		}
		if !ok {
			w.res.Outcome = PatrolEnd
			return nil
		}
		if w.res.Steps == w.limit {
			return fmt.Errorf("%w: %d", ErrStepLimit, w.limit)
		}
		w.res.Steps++
		w.res.History = append(w.res.History, next)
		if w.seen[next] {
			w.res.Outcome = LoopDetected
			return nil
		}
		w.seen[next] = true
		cur = next
	}
}

// StartState finds the guard marker ('^', '>', 'v' or '<') scanning
// row-major and returns its position with the implied heading.
func StartState(g *grid.Grid) (grid.State, error) {
	if g == nil {
		return grid.State{}, ErrNilGrid
	}
	for r, row := range g.Rows() {
		for c := 0; c < len(row); c++ {
			if d, ok := grid.ParseArrow(row[c]); ok {
				return grid.State{Pos: grid.Position{Row: r, Col: c}, Dir: d}, nil
			}
		}
	}
	return grid.State{}, fmt.Errorf("%w: guard", grid.ErrMarkerNotFound)
}

// LoopingObstacles returns every position where a single added obstacle
// makes the guard loop. Candidates are the positions of the unmodified walk,
// in first-visit order, excluding the start. Each candidate is tested on an
// independent copy of g with the start state held fixed; the input grid is
// never mutated. A candidate that boxes the guard in counts as looping,
// since the guard then never leaves.
func LoopingObstacles(g *grid.Grid, start grid.State, opts ...Option) ([]grid.Position, error) {
	base, err := Simulate(g, start, opts...)
	if err != nil {
		return nil, err
	}

	var out []grid.Position
	for _, p := range base.Visited() {
		if p == start.Pos {
			continue
		}
		res, err := Simulate(g.WithCell(p, grid.Wall), start, opts...)
		switch {
		case errors.Is(err, ErrTrapped):
			out = append(out, p)
		case err != nil:
			return nil, fmt.Errorf("patrol: obstacle at %v: %w", p, err)
		case res.Outcome == LoopDetected:
			out = append(out, p)
		}
	}
	return out, nil
}
