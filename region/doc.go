// SPDX-License-Identifier: MIT

// Package region answers point queries against a fractal hex lattice.
//
// A Generator wraps an immutable lattice.Lattice and maps continuous plane
// coordinates to a category index in O(1):
//
//   - Nearest: the single closest lattice corner under the skewed hex
//     metric. Region borders are hard polygons.
//   - Smooth: the three corners of the enclosing triangle vote with a
//     hexagonally symmetric bump weight, summed per category. Region borders
//     become rounded.
//
// Coordinates are unit-less: [0, size] on both axes covers the generated
// region. Internally they are scaled by stride·√(1/3) and skewed with the
// 2D simplex factor (√3−1)/2, so the diagonally-compressed table behaves as
// a triangular grid.
//
// Grid samples a whole width×height raster of categories, the loop any
// image or export layer runs on top of this package.
//
// Concurrency: every method is read-only. Any number of goroutines may
// sample one Generator without synchronization.
//
// Errors:
//
//   - lattice.ErrInvalidParameter: bad construction or raster parameters.
//   - ErrOutOfRange: NaN/Inf input, or coordinates whose cell falls outside
//     the table.
package region
