// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of category indices as a graph of
// cells, enabling region analysis over sampled region maps.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid, for instance the output of
//     region.Generator.Grid or lattice.Lattice.Grid.
//   - Identifies connected regions: maximal groups of neighbouring cells
//     sharing one category.
//   - Counts cells per category.
//
// Connectivity:
//
//   - Conn4: N, E, S, W.
//   - Conn8: Conn4 plus diagonals.
//   - ConnHex: the six neighbours of a diagonally-compressed square, i.e.
//     (±1,0), (0,±1), (1,1) and (−1,−1). Use it on lattice tables, whose
//     rows and columns are two axes of a triangular tiling.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 4, 6 or 8).
//   - CategoryCounts:      O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCategory: a cell holds a negative value.
//   - ErrCategoryRange: a cell is ≥ the variety passed to CategoryCounts.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
