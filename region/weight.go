// SPDX-License-Identifier: MIT

package region

import "math"

// bump is the hexagonally symmetric falloff of a corner at offset (dx, dy)
// from the query point. It is 1 at the corner and reaches 0 on the border
// of the corner's hexagonal zone. Values outside that zone go negative and
// are kept as-is.
func bump(dx, dy float64) float64 {
	dz := dx - dy
	return (1 - dx*dx) * (1 - dy*dy) * (1 - dz*dz)
}

// tally accumulates bump weights per category. Only three corners vote, so
// three slots always suffice.
type tally struct {
	category [3]int
	weight   [3]float64
	n        int
}

// add folds weight into the slot already holding category, or opens a new one.
func (t *tally) add(category int, weight float64) {
	for i := 0; i < t.n; i++ {
		if t.category[i] == category {
			t.weight[i] += weight
			return
		}
	}
	t.category[t.n] = category
	t.weight[t.n] = weight
	t.n++
}

// winner returns the category with the highest total. Ties keep the slot
// opened first.
func (t *tally) winner() int {
	best, score := -1, math.Inf(-1)
	for i := 0; i < t.n; i++ {
		if t.weight[i] > score {
			best, score = t.category[i], t.weight[i]
		}
	}
	return best
}
