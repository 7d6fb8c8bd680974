package astar

import "github.com/katalvlaran/gridwalk/grid"

// MazeStart locates the 'S' and 'E' markers of a reindeer maze.
// The returned start state faces East.
func MazeStart(g *grid.Grid) (grid.State, grid.Position, error) {
	if g == nil {
		return grid.State{}, grid.Position{}, ErrNilGrid
	}
	s, err := g.Require(grid.Start)
	if err != nil {
		return grid.State{}, grid.Position{}, err
	}
	e, err := g.Require(grid.End)
	if err != nil {
		return grid.State{}, grid.Position{}, err
	}
	return grid.State{Pos: s, Dir: grid.East}, e, nil
}
