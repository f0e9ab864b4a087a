// SPDX-License-Identifier: MIT

package lattice

import "math/rand"

// drawer wraps the random stream consumed by Build.
//
// Only two kinds of draws exist: a category in [0, variety) for anchors and
// a single bit for midpoint coin flips. Keeping them here pins the exact
// number of values consumed per draw, which is what makes tables
// reproducible.
//
// Not goroutine-safe; Build owns one drawer per call.
type drawer struct {
	r *rand.Rand
}

func newDrawer(src rand.Source) *drawer {
	return &drawer{r: rand.New(src)}
}

// category draws uniformly from [0, variety).
func (d *drawer) category(variety int) int {
	return d.r.Intn(variety)
}

// flip reports whether the far neighbour wins a midpoint coin flip.
func (d *drawer) flip() bool {
	return d.r.Int63()&1 == 1
}
