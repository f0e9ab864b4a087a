// SPDX-License-Identifier: MIT

package lattice

// maxSteps bounds the subdivision depth so that 1<<steps stays well inside int.
const maxSteps = 30

// maxSide bounds the table side so that side*side cells remain addressable.
const maxSide = 1 << 15

// Lattice is the finished, immutable category table.
// Cells are stored row-major: index = row*side + col. Rows follow the
// lattice y axis, columns the lattice x axis.
type Lattice struct {
	cells   []int
	side    int
	stride  int
	size    int
	steps   int
	variety int
}

// Side returns the table side length, stride*size + 1.
func (l *Lattice) Side() int { return l.side }

// Unpadded returns stride*size, the side length without the padding row/column.
func (l *Lattice) Unpadded() int { return l.side - 1 }

// Stride returns 2^steps, the spacing between anchors.
func (l *Lattice) Stride() int { return l.stride }

// Size returns the number of coarse cells per axis.
func (l *Lattice) Size() int { return l.size }

// Steps returns the number of subdivision passes.
func (l *Lattice) Steps() int { return l.steps }

// Variety returns the number of distinct categories.
func (l *Lattice) Variety() int { return l.variety }

// At returns the category stored at (row, col).
// Returns ErrOutOfRange if either index lies outside [0, Side()).
// Complexity: O(1).
func (l *Lattice) At(row, col int) (int, error) {
	if !l.InBounds(row, col) {
		return 0, ErrOutOfRange
	}
	return l.cells[l.index(row, col)], nil
}

// Value returns the category at (row, col) without bounds reporting.
// Callers must have checked InBounds; an invalid index panics like a slice access.
func (l *Lattice) Value(row, col int) int {
	return l.cells[l.index(row, col)]
}

// Anchor returns the independently drawn category of the coarse anchor at
// coarse column i and coarse row j, i.e. the cell (j*stride, i*stride).
// Valid for 0 ≤ i, j ≤ Size().
func (l *Lattice) Anchor(i, j int) (int, error) {
	return l.At(j*l.stride, i*l.stride)
}

// InBounds reports whether (row, col) lies within the table.
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.side && col >= 0 && col < l.side
}

// Cells returns a copy of the row-major cell buffer.
// Complexity: O(side²).
func (l *Lattice) Cells() []int {
	out := make([]int, len(l.cells))
	copy(out, l.cells)
	return out
}

// Grid returns a deep copy of the table as rows, Grid()[row][col].
// Useful as input to gridgraph.From2D.
// Complexity: O(side²).
func (l *Lattice) Grid() [][]int {
	out := make([][]int, l.side)
	for row := 0; row < l.side; row++ {
		out[row] = make([]int, l.side)
		copy(out[row], l.cells[row*l.side:(row+1)*l.side])
	}
	return out
}

func (l *Lattice) index(row, col int) int {
	return row*l.side + col
}

func (l *Lattice) set(row, col, v int) {
	l.cells[l.index(row, col)] = v
}
