package astar

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridwalk/grid"
)

// Search returns a minimal-cost path from start to any state whose position
// equals goal, under the configured Rules and Heuristic.
//
// Behavior highlights:
//   - States are (position, heading); the goal matches any heading.
//   - start == goal yields a zero-cost path of one state.
//   - Expansion stops once the lowest f in the open set exceeds the best
//     completion, so every equal-cost completion is seen before returning.
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - ErrBadEndpoint if start or goal is out of bounds or not passable.
//   - ErrNegativeCost if Rules emits a negative transition.
//   - ErrNoPath if the goal cannot be reached.
//   - ctx.Err() if the context is cancelled mid-search.
//
// Complexity: O(S log S) time, O(S) memory, S = 4·W·H.
func Search(g *grid.Grid, start grid.State, goal grid.Position, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = defaultHeuristic(cfg.Rules)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, start.Pos, cfg.Passable, "start"); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, goal, cfg.Passable, "goal"); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		best:    make(map[grid.State]int),
		closed:  make(map[grid.State]bool),
		preds:   make(map[grid.State][]grid.State),
		bestEnd: math.MaxInt,
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}
	if len(r.ends) == 0 {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, start, goal)
	}

	return r.result(), nil
}

func checkEndpoint(g *grid.Grid, p grid.Position, passable func(byte) bool, which string) error {
	c, ok := g.Lookup(p)
	if !ok {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrBadEndpoint, which, p, g.Width, g.Height)
	}
	if !passable(c) {
		return fmt.Errorf("%w: %s %v is blocked (%q)", ErrBadEndpoint, which, p, c)
	}
	return nil
}

// node is one arena entry: a state reached along a specific path.
type node struct {
	state  grid.State
	parent int // arena index of the predecessor, -1 for the start
	action Action
	cost   int
}

// runner holds the mutable search state.
type runner struct {
	g       *grid.Grid
	goal    grid.Position
	options Options

	arena  []node                      // every path node ever created
	best   map[grid.State]int          // lowest known cost per state
	closed map[grid.State]bool         // expanded states
	preds  map[grid.State][]grid.State // equal-cost predecessors per state
	pq     frontier
	seq    int

	ends     []int // arena handles of closed goal states
	bestEnd  int   // lowest completion cost seen so far
	expanded int
}

func (r *runner) init(start grid.State) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(node{state: start, parent: -1, cost: 0})
}

func (r *runner) push(n node) {
	r.arena = append(r.arena, n)
	heap.Push(&r.pq, entry{
		handle: len(r.arena) - 1,
		f:      n.cost + r.options.Heuristic(n.state.Pos, r.goal),
		g:      n.cost,
		seq:    r.seq,
	})
	r.seq++
}

// process pops entries until the frontier is empty or cannot improve on the
// best completion.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}
		e := heap.Pop(&r.pq).(entry)
		if e.f > r.bestEnd {
			break
		}
		n := r.arena[e.handle]
		if r.closed[n.state] || n.cost > r.best[n.state] {
			continue // stale
		}
		r.closed[n.state] = true
		r.expanded++
		r.options.OnExpand(n.state, n.cost)

		if n.state.Pos == r.goal {
			r.ends = append(r.ends, e.handle)
			if n.cost < r.bestEnd {
				r.bestEnd = n.cost
			}
			continue
		}
		if err := r.relax(e.handle); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) relax(h int) error {
	u := r.arena[h]
	for _, t := range r.options.Rules.Successors(r.g, u.state, r.options.Passable) {
		if t.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u.state, t.To, t.Cost)
		}
		cost := u.cost + t.Cost
		old, seen := r.best[t.To]
		switch {
		case seen && cost == old:
			r.preds[t.To] = append(r.preds[t.To], u.state)
			continue
		case seen && cost > old, r.closed[t.To]:
			continue
		}
		r.best[t.To] = cost
		r.preds[t.To] = []grid.State{u.state}
		r.push(node{state: t.To, parent: h, action: t.Action, cost: cost})
	}
	return nil
}

// result walks the parent chain of the cheapest completion and collects the
// optimal-tile set from every completion that ties it.
func (r *runner) result() *Result {
	res := &Result{
		Cost:        r.bestEnd,
		Expanded:    r.expanded,
		Completions: len(r.ends),
	}

	win := -1
	var frontier []grid.State
	for _, h := range r.ends {
		if r.arena[h].cost != r.bestEnd {
			continue
		}
		if win < 0 {
			win = h
		}
		frontier = append(frontier, r.arena[h].state)
	}

	for h := win; h >= 0; h = r.arena[h].parent {
		res.States = append(res.States, r.arena[h].state)
		if r.arena[h].parent >= 0 {
			res.Actions = append(res.Actions, r.arena[h].action)
		}
	}
	reverse(res.States)
	reverse(res.Actions)

	res.tiles = r.tiles(frontier)
	return res
}

// tiles walks the equal-cost predecessor DAG backwards from the optimal end
// states and returns the distinct positions touched.
func (r *runner) tiles(ends []grid.State) []grid.Position {
	seen := make(map[grid.State]bool, len(ends))
	cells := make(map[grid.Position]bool)
	queue := append([]grid.State(nil), ends...)
	for _, s := range ends {
		seen[s] = true
	}
	for i := 0; i < len(queue); i++ {
		s := queue[i]
		cells[s.Pos] = true
		for _, p := range r.preds[s] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	out := make([]grid.Position, 0, len(cells))
	for p := range cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// entry is a frontier item; handle indexes the arena.
type entry struct {
	handle int
	f, g   int
	seq    int
}

// frontier is a min-heap on f; ties prefer the deeper node (larger g),
// then the earlier push, so expansion order is deterministic.
type frontier []entry

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
