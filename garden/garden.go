package garden

import "github.com/katalvlaran/gridwalk/grid"

// Plot is one region with its fence measures.
type Plot struct {
	Plant     byte
	Area      int
	Perimeter int
	Sides     int
}

// Plots measures every region of g in row-major discovery order.
// Complexity: O(W·H).
func Plots(g *grid.Grid) []Plot {
	regions := g.Regions()
	out := make([]Plot, 0, len(regions))
	for _, r := range regions {
		out = append(out, measure(r))
	}
	return out
}

func measure(r grid.Region) Plot {
	in := make(map[grid.Position]bool, len(r.Cells))
	for _, p := range r.Cells {
		in[p] = true
	}

	pl := Plot{Plant: r.Cell, Area: len(r.Cells)}
	for _, p := range r.Cells {
		for _, d := range grid.Directions {
			if !in[p.Step(d)] {
				pl.Perimeter++
			}
		}
		// Each cell has four corners, one per pair of adjacent headings.
		for _, d := range grid.Directions {
			a, b := p.Step(d), p.Step(d.Right())
			diag := a.Step(d.Right())
			switch {
			case !in[a] && !in[b]:
				pl.Sides++ // convex
			case in[a] && in[b] && !in[diag]:
				pl.Sides++ // concave
			}
		}
	}
	return pl
}

// Price is Σ area × perimeter.
func Price(g *grid.Grid) int {
	total := 0
	for _, p := range Plots(g) {
		total += p.Area * p.Perimeter
	}
	return total
}

// BulkPrice is Σ area × sides.
func BulkPrice(g *grid.Grid) int {
	total := 0
	for _, p := range Plots(g) {
		total += p.Area * p.Sides
	}
	return total
}
