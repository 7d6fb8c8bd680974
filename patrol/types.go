package patrol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("patrol: grid is nil")

	// ErrTrapped indicates that all four headings from a position are blocked.
	ErrTrapped = errors.New("patrol: guard is blocked on all four sides")

	// ErrStepLimit indicates the walk exceeded the configured MaxSteps.
	ErrStepLimit = errors.New("patrol: step limit exceeded")
)

// Outcome tells how a simulation terminated.
type Outcome uint8

const (
	// PatrolEnd means the guard walked off the grid.
	PatrolEnd Outcome = iota
	// LoopDetected means a (position, heading) state repeated.
	LoopDetected
)

func (o Outcome) String() string {
	switch o {
	case PatrolEnd:
		return "patrol-end"
	case LoopDetected:
		return "loop-detected"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Options configures a simulation.
//
// Blocked  – cell predicate for obstacles (default: c == '#').
// MaxSteps – cap on applied transitions; 0 means 4·W·H, which no
// deterministic walk can exceed without repeating a state.
type Options struct {
	Blocked  func(c byte) bool
	MaxSteps int
}

// Option represents a functional option for configuring Options.
type Option func(*Options)

// DefaultOptions returns '#' obstacles and the natural step bound.
func DefaultOptions() Options {
	return Options{
		Blocked: func(c byte) bool { return c == grid.Wall },
	}
}

// WithBlocked replaces the obstacle predicate.
func WithBlocked(fn func(c byte) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Blocked = fn
		}
	}
}

// WithMaxSteps caps the number of transitions; n <= 0 restores the default.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// Result records one walk.
//
//   - Outcome: how the walk ended.
//   - Steps:   number of transitions applied.
//   - History: every state occupied, start first. On LoopDetected the last
//     entry is the repeated state.
type Result struct {
	Outcome Outcome
	Steps   int
	History []grid.State
}

// Visited returns the distinct positions of History in first-visit order.
func (r *Result) Visited() []grid.Position {
	seen := make(map[grid.Position]bool, len(r.History))
	out := make([]grid.Position, 0, len(r.History))
	for _, s := range r.History {
		if !seen[s.Pos] {
			seen[s.Pos] = true
			out = append(out, s.Pos)
		}
	}
	return out
}

// Coverage is the number of distinct positions visited, start included.
func (r *Result) Coverage() int {
	return len(r.Visited())
}
