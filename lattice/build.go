// SPDX-License-Identifier: MIT

package lattice

// Build constructs a Lattice for the given seed and parameters.
//
// Parameters:
//   - seed:    seeds the default math/rand source (see WithSource).
//   - variety: number of categories, ≥ 1.
//   - size:    number of coarse cells per axis, ≥ 1.
//   - steps:   number of subdivision passes, ≥ 0; stride = 2^steps.
//
// Returns ErrInvalidParameter (wrapped) before allocating anything when a
// parameter is out of range. The result is immutable.
//
// Complexity: O(side²) time and memory, side = 2^steps*size + 1.
func Build(seed int64, variety, size, steps int, opts ...Option) (*Lattice, error) {
	if variety < 1 {
		return nil, invalidf("variety=%d, want ≥ 1", variety)
	}
	if size < 1 {
		return nil, invalidf("size=%d, want ≥ 1", size)
	}
	if steps < 0 || steps > maxSteps {
		return nil, invalidf("steps=%d, want 0..%d", steps, maxSteps)
	}
	stride := 1 << steps
	if size > (maxSide-1)/stride {
		return nil, invalidf("size=%d with steps=%d exceeds side limit %d", size, steps, maxSide)
	}

	cfg := resolveOptions(seed, opts)
	unpadded := stride * size
	l := &Lattice{
		cells:   make([]int, (unpadded+1)*(unpadded+1)),
		side:    unpadded + 1,
		stride:  stride,
		size:    size,
		steps:   steps,
		variety: variety,
	}
	d := newDrawer(cfg.src)

	l.seedAnchors(d)
	for cur := stride; cur > 1; cur /= 2 {
		l.subdivide(d, cur)
	}

	return l, nil
}

// seedAnchors assigns independent draws to every multiple of stride.
// The outer loop walks columns, so anchors are drawn column by column.
func (l *Lattice) seedAnchors(d *drawer) {
	for col := 0; col < l.side; col += l.stride {
		for row := 0; row < l.side; row += l.stride {
			l.set(row, col, d.category(l.variety))
		}
	}
}

// subdivide runs one pass at spacing cur, filling the midpoints at cur/2.
//
// Each cell (y, x) at this level fills its three positive hex midpoints:
//
//	(y, x+h)    between (y, x) and (y, x+cur)
//	(y+h, x)    between (y, x) and (y+cur, x)
//	(y+h, x+h)  between (y, x) and (y+cur, x+cur)
//
// A midpoint is skipped when its far neighbour would be past the last
// anchor row/column, i.e. when x (or y) already equals Unpadded().
func (l *Lattice) subdivide(d *drawer, cur int) {
	h := cur / 2
	last := l.Unpadded()
	for y := 0; y < l.side; y += cur {
		for x := 0; x < l.side; x += cur {
			if x < last {
				l.set(y, x+h, l.pick(d, y, x, y, x+cur))
			}
			if y < last {
				l.set(y+h, x, l.pick(d, y, x, y+cur, x))
			}
			if x < last && y < last {
				l.set(y+h, x+h, l.pick(d, y, x, y+cur, x+cur))
			}
		}
	}
}

// pick returns the far cell's value on a winning flip, otherwise the near one.
func (l *Lattice) pick(d *drawer, nearRow, nearCol, farRow, farCol int) int {
	if d.flip() {
		return l.Value(farRow, farCol)
	}
	return l.Value(nearRow, nearCol)
}
