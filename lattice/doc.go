// SPDX-License-Identifier: MIT

// Package lattice builds the fractal category table behind a hexagonal
// region map.
//
// What:
//
//   - A Lattice is a square table of category indices in [0, variety).
//   - The table is a diagonally-compressed square: its columns and rows are
//     two of the three axes of a triangular tiling, sheared into a square.
//   - Side length is stride*size + 1 where stride = 2^steps. The extra row
//     and column are padding so midpoint lookups at the far border stay in
//     range.
//
// How:
//
//  1. Anchor pass: every cell whose row and column are multiples of stride
//     receives an independent draw in [0, variety).
//  2. Subdivision passes (steps times, halving the stride): each assigned
//     cell derives the three "positive" hexagonal midpoints (h,0), (0,h) and
//     (h,h) by a coin flip between itself and the matching far neighbour.
//     The other three midpoints of its hexagon belong to a neighbouring
//     cell's positive set, so every midpoint is produced exactly once.
//
// This is a discrete analogue of diamond-square over a hex lattice: coarse
// regions keep their category while their borders become fractal.
//
// Determinism:
//
//   - The random stream is consumed in a fixed order: anchors first (column
//     by column), then each pass row by row. Same seed and parameters give a
//     bit-identical table.
//   - WithSource swaps the default math/rand source for another algorithm.
//
// Complexity:
//
//   - Build: O(side²) time and memory.
//   - At, Anchor: O(1).
//
// Errors:
//
//   - ErrInvalidParameter: variety < 1, size < 1, steps < 0, or a table too
//     large to address.
//   - ErrOutOfRange: a cell lookup outside the table.
package lattice
