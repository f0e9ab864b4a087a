// Package gridgraph defines core types and options for region analysis.
package gridgraph

// Connectivity selects which cells count as neighbours.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
	// ConnHex uses the six hex neighbours of a diagonally-compressed square.
	ConnHex
)

// Region is one connected group of cells sharing a category.
type Region struct {
	Category int   // shared cell value
	Cells    []int // row-major cell indices in BFS order, first is the seed cell
}

// Size returns the number of cells in the region.
func (r Region) Size() int { return len(r.Cells) }

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses the neighbour set.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D category grid as a graph. It is immutable once built.
// CellValues[y][x] holds the category at column x, row y.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
	components      []Region
}
