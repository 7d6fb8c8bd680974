package grid

// Regions finds all 4-connected components of equal cells.
// Components are returned in row-major order of their first cell, and the
// cells of each component in BFS discovery order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Regions() []Region {
	seen := make([]bool, len(g.cells))
	var regions []Region

	for i0, c := range g.cells {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		region := Region{Cell: c}

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region.Cells = append(region.Cells, u)
			for _, d := range Directions {
				v := u.Step(d)
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v)
				if !seen[vi] && g.cells[vi] == c {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
