package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoPath indicates that the open set was exhausted without reaching
	// the goal. It is an expected outcome, not an input error.
	ErrNoPath = errors.New("astar: goal unreachable")

	// ErrBadEndpoint indicates a start or goal outside the grid or on a
	// blocked cell. It wraps grid.ErrMalformedInput.
	ErrBadEndpoint = fmt.Errorf("astar: bad endpoint: %w", grid.ErrMalformedInput)

	// ErrNegativeCost indicates that a Rules implementation produced a
	// transition with negative cost.
	ErrNegativeCost = errors.New("astar: negative transition cost")
)

// Action names the move that produced a transition.
type Action uint8

const (
	// Forward advances one cell along the current heading.
	Forward Action = iota
	// TurnLeft rotates 90° counter-clockwise, then advances.
	TurnLeft
	// TurnRight rotates 90° clockwise, then advances.
	TurnRight
	// Reverse rotates 180°, then advances.
	Reverse
	// Step moves to an orthogonal neighbour with no notion of turning.
	Step
)

func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case Reverse:
		return "reverse"
	case Step:
		return "step"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Transition is one legal successor of a state and the cost of reaching it.
type Transition struct {
	Action Action
	To     grid.State
	Cost   int
}

// Rules produces the successors of a state. Implementations must skip
// targets that are out of bounds or not passable.
type Rules interface {
	Successors(g *grid.Grid, s grid.State, passable func(byte) bool) []Transition
}

// StepFloor is implemented by rule sets that know the cheapest cost of
// entering a new cell. Search scales the default heuristic by it.
type StepFloor interface {
	MinStep() int
}

// Heuristic estimates the remaining cost from a position to the goal.
// It must never overestimate for Search to return an optimal cost.
type Heuristic func(from, goal grid.Position) int

// Manhattan is |Δrow| + |Δcol|.
// Admissible whenever every step into a new cell costs at least 1.
func Manhattan(from, goal grid.Position) int { return from.Manhattan(goal) }

// ScaledManhattan returns Manhattan multiplied by floor, the cheapest cost of
// one cell. A floor of zero or less yields Zero.
func ScaledManhattan(floor int) Heuristic {
	if floor <= 0 {
		return Zero
	}
	if floor == 1 {
		return Manhattan
	}
	return func(from, goal grid.Position) int { return floor * from.Manhattan(goal) }
}

// Zero turns Search into plain Dijkstra.
func Zero(_, _ grid.Position) int { return 0 }

// Options configures Search.
//
// Ctx       – cancellation, checked once per frontier pop.
// Rules     – transition rule set (default TurnRules{Forward: 1, Turn: 1000}).
// Heuristic – remaining-cost estimate (default nil: see defaultHeuristic).
// Passable  – cell predicate (default: anything but '#').
// OnExpand  – hook called when a state is closed, with its final cost.
type Options struct {
	Ctx       context.Context
	Rules     Rules
	Heuristic Heuristic
	Passable  func(c byte) bool
	OnExpand  func(s grid.State, cost int)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the reindeer-maze configuration:
// unit forward moves, 1000 per quarter turn, scaled Manhattan, '#' walls.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Rules:    TurnRules{Forward: 1, Turn: 1000},
		Passable: NotWall,
		OnExpand: func(grid.State, int) {},
	}
}

// defaultHeuristic picks an admissible estimate for r.
// Rule sets that do not report a floor get Zero.
func defaultHeuristic(r Rules) Heuristic {
	if f, ok := r.(StepFloor); ok {
		return ScaledManhattan(f.MinStep())
	}
	return Zero
}

// NotWall is the default Passable predicate.
func NotWall(c byte) bool { return c != grid.Wall }

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRules replaces the transition rule set.
func WithRules(r Rules) Option {
	return func(o *Options) {
		if r != nil {
			o.Rules = r
		}
	}
}

// WithHeuristic replaces the remaining-cost estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithPassable replaces the cell predicate used by the rules and endpoint checks.
func WithPassable(fn func(c byte) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithOnExpand registers a callback run each time a state is closed.
func WithOnExpand(fn func(s grid.State, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is a minimal-cost path from start to goal.
//
//   - Cost:        total cost of the path.
//   - States:      agent states from start to goal inclusive.
//   - Actions:     the action taken into States[i+1]; len(Actions) == len(States)-1.
//   - Expanded:    number of states closed during the search.
//   - Completions: number of goal states closed (every heading that reached it).
type Result struct {
	Cost        int
	States      []grid.State
	Actions     []Action
	Expanded    int
	Completions int

	tiles []grid.Position
}

// Positions returns the cells visited by the path, in order.
func (r *Result) Positions() []grid.Position {
	out := make([]grid.Position, len(r.States))
	for i, s := range r.States {
		out[i] = s.Pos
	}
	return out
}

// Tiles returns every cell that lies on at least one minimal-cost path,
// sorted row-major. It always contains Positions().
func (r *Result) Tiles() []grid.Position {
	return r.tiles
}
