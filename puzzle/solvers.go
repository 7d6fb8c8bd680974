package puzzle

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gridwalk/astar"
	"github.com/katalvlaran/gridwalk/blockade"
	"github.com/katalvlaran/gridwalk/garden"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/patrol"
	"github.com/katalvlaran/gridwalk/render"
	"github.com/katalvlaran/gridwalk/stones"
	"github.com/katalvlaran/gridwalk/towels"
	"github.com/katalvlaran/gridwalk/trail"
	"github.com/katalvlaran/gridwalk/warehouse"
)

func builtins() []Kind {
	return []Kind{
		{Name: "patrol", Summary: "guard patrol coverage and loop-making obstacles", Solve: solvePatrol, Draw: drawPatrol},
		{Name: "maze", Summary: "reindeer maze lowest score and tiles on best paths", Solve: solveMaze, Draw: drawMaze},
		{Name: "blockade", Summary: "exit distance after n drops and first blocking drop", Solve: solveBlockade, Draw: drawBlockade},
		{Name: "warehouse", Summary: "box GPS sum after all moves, narrow and wide", Solve: solveWarehouse, Draw: drawWarehouse},
		{Name: "trail", Summary: "trailhead scores and ratings", Solve: solveTrail},
		{Name: "garden", Summary: "fence price by perimeter and by sides", Solve: solveGarden},
		{Name: "towels", Summary: "possible designs and total arrangements", Solve: solveTowels},
		{Name: "stones", Summary: "stone count after two blink depths", Solve: solveStones},
	}
}

func ints(a, b int) Answer {
	return Answer{Part1: strconv.Itoa(a), Part2: strconv.Itoa(b)}
}

type patrolParams struct {
	MaxSteps int `mapstructure:"max_steps"`
}

func patrolSetup(input string, params map[string]any) (*grid.Grid, grid.State, []patrol.Option, error) {
	p := patrolParams{}
	if err := decodeParams(params, &p); err != nil {
		return nil, grid.State{}, nil, err
	}
	g, err := grid.Parse(input)
	if err != nil {
		return nil, grid.State{}, nil, err
	}
	start, err := patrol.StartState(g)
	if err != nil {
		return nil, grid.State{}, nil, err
	}
	return g, start, []patrol.Option{patrol.WithMaxSteps(p.MaxSteps)}, nil
}

func solvePatrol(input string, params map[string]any) (Answer, error) {
	g, start, opts, err := patrolSetup(input, params)
	if err != nil {
		return Answer{}, err
	}
	res, err := patrol.Simulate(g, start, opts...)
	if err != nil {
		return Answer{}, err
	}
	loops, err := patrol.LoopingObstacles(g, start, opts...)
	if err != nil {
		return Answer{}, err
	}
	return ints(res.Coverage(), len(loops)), nil
}

func drawPatrol(input string, params map[string]any) (*grid.Grid, render.Overlay, error) {
	g, start, opts, err := patrolSetup(input, params)
	if err != nil {
		return nil, render.Overlay{}, err
	}
	res, err := patrol.Simulate(g, start, opts...)
	if err != nil {
		return nil, render.Overlay{}, err
	}
	return g, render.Overlay{Visited: res.Visited(), Agent: &start}, nil
}

type mazeParams struct {
	Forward int  `mapstructure:"forward"`
	Turn    int  `mapstructure:"turn"`
	Reverse bool `mapstructure:"reverse"`
}

func mazeSearch(input string, params map[string]any) (*grid.Grid, *astar.Result, error) {
	p := mazeParams{Forward: 1, Turn: 1000}
	if err := decodeParams(params, &p); err != nil {
		return nil, nil, err
	}
	g, err := grid.Parse(input)
	if err != nil {
		return nil, nil, err
	}
	start, goal, err := astar.MazeStart(g)
	if err != nil {
		return nil, nil, err
	}
	rules := astar.TurnRules{Forward: p.Forward, Turn: p.Turn, Reverse: p.Reverse}
	res, err := astar.Search(g, start, goal, astar.WithRules(rules))
	if err != nil {
		return nil, nil, err
	}
	return g, res, nil
}

func solveMaze(input string, params map[string]any) (Answer, error) {
	_, res, err := mazeSearch(input, params)
	if err != nil {
		return Answer{}, err
	}
	return ints(res.Cost, len(res.Tiles())), nil
}

func drawMaze(input string, params map[string]any) (*grid.Grid, render.Overlay, error) {
	g, res, err := mazeSearch(input, params)
	if err != nil {
		return nil, render.Overlay{}, err
	}
	return g, render.Overlay{Visited: res.Tiles(), Path: res.Positions()}, nil
}

type blockadeParams struct {
	Size  int `mapstructure:"size"`
	Drops int `mapstructure:"drops"`
}

func blockadeSetup(input string, params map[string]any) ([]grid.Position, blockadeParams, error) {
	p := blockadeParams{Size: 71, Drops: 1024}
	if err := decodeParams(params, &p); err != nil {
		return nil, p, err
	}
	drops, err := blockade.ParseDrops(input)
	if err != nil {
		return nil, p, err
	}
	return drops, p, nil
}

func solveBlockade(input string, params map[string]any) (Answer, error) {
	drops, p, err := blockadeSetup(input, params)
	if err != nil {
		return Answer{}, err
	}
	steps, err := blockade.ShortestExit(p.Size, drops, p.Drops)
	if err != nil {
		return Answer{}, err
	}
	ans := Answer{Part1: strconv.Itoa(steps), Part2: NoAnswer}
	idx, err := blockade.FirstBlocking(p.Size, drops)
	switch {
	case errors.Is(err, blockade.ErrNeverBlocked):
		return ans, nil
	case err != nil:
		return Answer{}, err
	}
	d := drops[idx]
	ans.Part2 = fmt.Sprintf("%d,%d", d.Col, d.Row)
	return ans, nil
}

func drawBlockade(input string, params map[string]any) (*grid.Grid, render.Overlay, error) {
	drops, p, err := blockadeSetup(input, params)
	if err != nil {
		return nil, render.Overlay{}, err
	}
	g, err := blockade.Corrupt(p.Size, drops, p.Drops)
	if err != nil {
		return nil, render.Overlay{}, err
	}
	res, err := astar.Search(g, grid.State{Dir: grid.East}, grid.Position{Row: p.Size - 1, Col: p.Size - 1},
		astar.WithRules(astar.StepRules{Cost: 1}))
	if err != nil {
		return nil, render.Overlay{}, err
	}
	return g, render.Overlay{Path: res.Positions()}, nil
}

func solveWarehouse(input string, params map[string]any) (Answer, error) {
	if err := decodeParams(params, &struct{}{}); err != nil {
		return Answer{}, err
	}
	w, moves, err := warehouse.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	wide := w.Widen()
	w.Run(moves)
	wide.Run(moves)
	return ints(w.GPS(), wide.GPS()), nil
}

type warehouseParams struct {
	Wide bool `mapstructure:"wide"`
}

func drawWarehouse(input string, params map[string]any) (*grid.Grid, render.Overlay, error) {
	p := warehouseParams{}
	if err := decodeParams(params, &p); err != nil {
		return nil, render.Overlay{}, err
	}
	w, moves, err := warehouse.Parse(input)
	if err != nil {
		return nil, render.Overlay{}, err
	}
	if p.Wide {
		w = w.Widen()
	}
	w.Run(moves)
	return w.Grid(), render.Overlay{}, nil
}

func solveTrail(input string, params map[string]any) (Answer, error) {
	if err := decodeParams(params, &struct{}{}); err != nil {
		return Answer{}, err
	}
	g, err := trail.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	return ints(trail.Sum(g)), nil
}

func solveGarden(input string, params map[string]any) (Answer, error) {
	if err := decodeParams(params, &struct{}{}); err != nil {
		return Answer{}, err
	}
	g, err := grid.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	return ints(garden.Price(g), garden.BulkPrice(g)), nil
}

func solveTowels(input string, params map[string]any) (Answer, error) {
	if err := decodeParams(params, &struct{}{}); err != nil {
		return Answer{}, err
	}
	inv, err := towels.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	return ints(inv.Tally()), nil
}

type stonesParams struct {
	Blinks1 int `mapstructure:"blinks1"`
	Blinks2 int `mapstructure:"blinks2"`
}

func solveStones(input string, params map[string]any) (Answer, error) {
	p := stonesParams{Blinks1: 25, Blinks2: 75}
	if err := decodeParams(params, &p); err != nil {
		return Answer{}, err
	}
	row, err := stones.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	return ints(stones.Total(row, p.Blinks1), stones.Total(row, p.Blinks2)), nil
}
