package gridgraph

// ConnectedComponents returns every maximal region of neighbouring cells
// sharing a category, according to gg.Conn. Regions are ordered by their
// first cell in row-major scan; the slice is shared, do not modify it.
//
// Time:   O(1), computed by NewGridGraph.
func (gg *GridGraph) ConnectedComponents() []Region {
	return gg.components
}

// Component returns region i of ConnectedComponents.
// Returns ErrComponentIndex when i is out of range.
func (gg *GridGraph) Component(i int) (Region, error) {
	if i < 0 || i >= len(gg.components) {
		return Region{}, ErrComponentIndex
	}
	return gg.components[i], nil
}

// ComponentOf returns the index of the region containing cell (x,y),
// or ErrComponentIndex when (x,y) lies outside the grid.
// Complexity: O(W×H) worst case.
func (gg *GridGraph) ComponentOf(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return -1, ErrComponentIndex
	}
	target := gg.index(x, y)
	for i, r := range gg.components {
		for _, c := range r.Cells {
			if c == target {
				return i, nil
			}
		}
	}
	return -1, ErrComponentIndex
}

// findComponents runs one BFS per unvisited cell.
//
// Time:   O(W·H·d), where d = 4, 6 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) findComponents() []Region {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps []Region
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			category := gg.CellValues[y][x]
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.CellValues[vy][vx] != category {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, Region{Category: category, Cells: queue})
		}
	}
	return comps
}
