package puzzle

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/render"
)

// Solver turns raw input into an Answer. params may be nil.
type Solver func(input string, params map[string]any) (Answer, error)

// Drawer turns raw input into a grid and the overlay worth showing on it.
type Drawer func(input string, params map[string]any) (*grid.Grid, render.Overlay, error)

// Kind describes one family of puzzles.
type Kind struct {
	Name    string
	Summary string
	Solve   Solver
	Draw    Drawer // nil when the kind has nothing grid-shaped to show
}

// Registry maps kind names to their solvers.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds k, replacing any kind with the same name.
func (r *Registry) Register(k Kind) {
	r.kinds[k.Name] = k
}

// Lookup returns the kind called name or ErrUnknownKind.
func (r *Registry) Lookup(name string) (Kind, error) {
	k, ok := r.kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Kinds lists registered kinds sorted by name.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Default returns a registry holding every built-in kind.
func Default() *Registry {
	r := NewRegistry()
	for _, k := range builtins() {
		r.Register(k)
	}
	return r
}
