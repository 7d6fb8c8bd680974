package astar

import "github.com/katalvlaran/gridwalk/grid"

// TurnRules models an agent that pays for rotation.
// Each successor rotates (or not) and then advances one cell:
//
//	forward          cost Forward
//	left / right     cost Turn + Forward
//	reverse          cost 2·Turn + Forward (only when Reverse is set)
//
// Reverse is off by default: with positive costs a U-turn is never cheaper
// than two quarter turns on an open cell, and corridors in the mazes this
// targets are always walled at dead ends.
type TurnRules struct {
	Forward int
	Turn    int
	Reverse bool
}

// Successors implements Rules.
func (r TurnRules) Successors(g *grid.Grid, s grid.State, passable func(byte) bool) []Transition {
	out := make([]Transition, 0, 4)
	out = advance(out, g, s.Pos, s.Dir, Forward, r.Forward, passable)
	out = advance(out, g, s.Pos, s.Dir.Left(), TurnLeft, r.Turn+r.Forward, passable)
	out = advance(out, g, s.Pos, s.Dir.Right(), TurnRight, r.Turn+r.Forward, passable)
	if r.Reverse {
		out = advance(out, g, s.Pos, s.Dir.Reverse(), Reverse, 2*r.Turn+r.Forward, passable)
	}
	return out
}

// MinStep implements StepFloor: the cheapest successor cost.
func (r TurnRules) MinStep() int {
	m := min(r.Forward, r.Turn+r.Forward)
	if r.Reverse {
		m = min(m, 2*r.Turn+r.Forward)
	}
	return m
}

// StepRules models an agent that moves to any orthogonal neighbour at a
// fixed cost. The heading of the resulting state is the direction moved.
type StepRules struct {
	Cost int
}

// Successors implements Rules.
func (r StepRules) Successors(g *grid.Grid, s grid.State, passable func(byte) bool) []Transition {
	out := make([]Transition, 0, 4)
	for _, d := range grid.Directions {
		out = advance(out, g, s.Pos, d, Step, r.Cost, passable)
	}
	return out
}

// MinStep implements StepFloor.
func (r StepRules) MinStep() int { return r.Cost }

// advance appends the move from p along d when the target cell is in bounds
// and passable.
func advance(out []Transition, g *grid.Grid, p grid.Position, d grid.Direction, a Action, cost int, passable func(byte) bool) []Transition {
	q := p.Step(d)
	c, ok := g.Lookup(q)
	if !ok || !passable(c) {
		return out
	}
	return append(out, Transition{Action: a, To: grid.State{Pos: q, Dir: d}, Cost: cost})
}
