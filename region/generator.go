// SPDX-License-Identifier: MIT

package region

import (
	"github.com/katalvlaran/hexregion/lattice"
)

// Mode selects the sampling procedure used by Sample and Grid.
type Mode int

const (
	// ModeNearest returns the closest lattice corner's category.
	ModeNearest Mode = iota
	// ModeSmooth blends the three enclosing corners by bump weight.
	ModeSmooth
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNearest:
		return "nearest"
	case ModeSmooth:
		return "smooth"
	default:
		return "unknown"
	}
}

// Generator resolves plane coordinates to categories over one lattice.
// It is immutable and safe for concurrent use.
type Generator struct {
	lat   *lattice.Lattice
	scale float64
}

// New builds the lattice for (seed, variety, size, steps) and wraps it.
// Errors from lattice.Build are returned unchanged (ErrInvalidParameter).
// Complexity: O(side²), see lattice.Build.
func New(seed int64, variety, size, steps int, opts ...lattice.Option) (*Generator, error) {
	lat, err := lattice.Build(seed, variety, size, steps, opts...)
	if err != nil {
		return nil, err
	}
	return FromLattice(lat), nil
}

// FromLattice wraps an already built lattice.
func FromLattice(lat *lattice.Lattice) *Generator {
	return &Generator{
		lat:   lat,
		scale: float64(lat.Stride()) * invSqrt3,
	}
}

// Lattice returns the underlying table.
func (g *Generator) Lattice() *lattice.Lattice { return g.lat }

// Size returns the coarse size; [0, Size()] is the meaningful coordinate range.
func (g *Generator) Size() int { return g.lat.Size() }

// Variety returns the number of categories.
func (g *Generator) Variety() int { return g.lat.Variety() }

// CoordinateScale returns stride·√(1/3), the factor from plane to lattice units.
func (g *Generator) CoordinateScale() float64 { return g.scale }

// Sample dispatches to Nearest or Smooth.
func (g *Generator) Sample(mode Mode, x, y float64) (int, error) {
	if mode == ModeSmooth {
		return g.Smooth(x, y)
	}
	return g.Nearest(x, y)
}

// Nearest returns the category of the lattice corner closest to (x, y).
//
// Inside the unit rhombus, p = 2·xsi − ysi, q = 2·ysi − xsi and
// r = xsi + ysi pick one of the four corners:
//
//	r ≤ 1 (near triangle): p > 1 → (ysb, xsb+1), q > 1 → (ysb+1, xsb), else (ysb, xsb)
//	r > 1 (far triangle):  shift by one, then p < −1 → (ysb+1, xsb),
//	                       q < −1 → (ysb, xsb+1), else (ysb+1, xsb+1)
//
// Complexity: O(1).
func (g *Generator) Nearest(x, y float64) (int, error) {
	c, err := g.locate(x, y)
	if err != nil {
		return 0, err
	}

	p := 2*c.xsi - c.ysi
	q := 2*c.ysi - c.xsi
	r := c.xsi + c.ysi
	if r > 1 {
		p--
		q--
		switch {
		case p < -1:
			return g.lat.Value(c.ysb+1, c.xsb), nil
		case q < -1:
			return g.lat.Value(c.ysb, c.xsb+1), nil
		}
		return g.lat.Value(c.ysb+1, c.xsb+1), nil
	}
	switch {
	case p > 1:
		return g.lat.Value(c.ysb, c.xsb+1), nil
	case q > 1:
		return g.lat.Value(c.ysb+1, c.xsb), nil
	}
	return g.lat.Value(c.ysb, c.xsb), nil
}

// Smooth returns the category with the largest summed bump weight among
// the three corners of the triangle containing (x, y).
//
// Corners vote in a fixed order: (ysb, xsb), (ysb+1, xsb+1), then
// (ysb+1, xsb) when ysi > xsi or (ysb, xsb+1) otherwise. Equal totals keep
// the category seen first.
//
// Complexity: O(1).
func (g *Generator) Smooth(x, y float64) (int, error) {
	c, err := g.locate(x, y)
	if err != nil {
		return 0, err
	}

	var t tally
	t.add(g.lat.Value(c.ysb, c.xsb), bump(c.xsi, c.ysi))
	t.add(g.lat.Value(c.ysb+1, c.xsb+1), bump(c.xsi-1, c.ysi-1))
	if c.ysi > c.xsi {
		t.add(g.lat.Value(c.ysb+1, c.xsb), bump(c.xsi, c.ysi-1))
	} else {
		t.add(g.lat.Value(c.ysb, c.xsb+1), bump(c.xsi-1, c.ysi))
	}
	return t.winner(), nil
}
