// SPDX-License-Identifier: MIT

package region

import (
	"fmt"
	"math"
)

const (
	// skewF2 is (√3−1)/2, the 2D simplex skew factor.
	skewF2 = 0.366025403784439
	// unskewG2 is (3−√3)/6, the inverse of skewF2.
	unskewG2 = 0.21132486540518711775
	// invSqrt3 is √(1/3); scaled by stride it maps unit coordinates to cells.
	invSqrt3 = 0.5773502691896257
)

// cell is a query point resolved into the table: the base corner of its
// unit rhombus and the fractional offset inside it.
type cell struct {
	xsb, ysb int     // base column, base row
	xsi, ysi float64 // offsets from the base corner, normally in [0, 1)
}

// locate scales and skews (x, y) into lattice space.
//
// The rhombus (xsb..xsb+1, ysb..ysb+1) must lie inside the table. A base on
// the last row or column, which the maximum coordinate x = y = size lands
// on, is moved back one cell with its offset raised by one so the far
// corner is still addressable.
func (g *Generator) locate(x, y float64) (cell, error) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return cell{}, fmt.Errorf("%w: (%v, %v)", ErrOutOfRange, x, y)
	}
	sx, sy := x*g.scale, y*g.scale

	s := skewF2 * (sx + sy)
	xs, ys := sx+s, sy+s

	fx, fy := math.Floor(xs), math.Floor(ys)
	last := float64(g.lat.Unpadded())
	if fx < 0 || fy < 0 || fx > last || fy > last {
		return cell{}, fmt.Errorf("%w: (%v, %v)", ErrOutOfRange, x, y)
	}

	c := cell{xsb: int(fx), ysb: int(fy), xsi: xs - fx, ysi: ys - fy}
	if c.xsb == g.lat.Unpadded() {
		c.xsb--
		c.xsi++
	}
	if c.ysb == g.lat.Unpadded() {
		c.ysb--
		c.ysi++
	}
	return c, nil
}

// LatticePoint returns the plane coordinate of table cell (row, col), the
// inverse of the scale-and-skew applied by Nearest and Smooth.
// Complexity: O(1).
func (g *Generator) LatticePoint(row, col int) (x, y float64) {
	xs, ys := float64(col), float64(row)
	t := unskewG2 * (xs + ys)
	return (xs - t) / g.scale, (ys - t) / g.scale
}
