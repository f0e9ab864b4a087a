// Package gridgraph provides utilities to treat a 2D grid of category values
// as a graph of cells.
package gridgraph

var (
	offsets4   = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8   = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	offsetsHex = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 0}, {-1, -1}, {0, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of non-negative categories. It deep-copies the input to ensure immutability
// and computes the connected regions once.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCategory.
// Complexity: O(W×H×d) time, O(W×H) memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v < 0 {
				return nil, ErrNegativeCategory
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	var offsets [][2]int
	switch opts.Conn {
	case Conn8:
		offsets = offsets8
	case ConnHex:
		offsets = offsetsHex
	default:
		offsets = offsets4
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}
	gg.components = gg.findComponents()

	return gg, nil
}

// From2D is shorthand for NewGridGraph with only the connectivity set.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbour offsets as (dx, dy).
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// CategoryCounts returns the number of cells per category in [0, variety).
// Returns ErrCategoryRange if any cell is ≥ variety.
// Complexity: O(W×H).
func (gg *GridGraph) CategoryCounts(variety int) ([]int, error) {
	if variety < 1 {
		return nil, ErrCategoryRange
	}
	counts := make([]int, variety)
	for _, row := range gg.CellValues {
		for _, v := range row {
			if v >= variety {
				return nil, ErrCategoryRange
			}
			counts[v]++
		}
	}
	return counts, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
