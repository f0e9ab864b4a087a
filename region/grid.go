// SPDX-License-Identifier: MIT

package region

import (
	"fmt"

	"github.com/katalvlaran/hexregion/lattice"
)

// Grid samples a width×height raster over [0, size)² and returns
// Grid()[py][px], the category at plane (px·size/width, py·size/height).
//
// Returns lattice.ErrInvalidParameter (wrapped) for non-positive dimensions.
// Complexity: O(width·height).
func (g *Generator) Grid(mode Mode, width, height int) ([][]int, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d, want ≥ 1x1", lattice.ErrInvalidParameter, width, height)
	}
	size := float64(g.Size())
	out := make([][]int, height)
	for py := 0; py < height; py++ {
		row := make([]int, width)
		y := float64(py) * size / float64(height)
		for px := 0; px < width; px++ {
			v, err := g.Sample(mode, float64(px)*size/float64(width), y)
			if err != nil {
				return nil, fmt.Errorf("grid (%d,%d): %w", px, py, err)
			}
			row[px] = v
		}
		out[py] = row
	}
	return out, nil
}
