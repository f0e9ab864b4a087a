// Package hexregion builds seedable, discrete region maps over a hexagonal
// lattice: every point of the plane resolves to one of a fixed set of
// category indices, and neighbouring points tend to share one. Typical use
// is terrain or biome assignment.
//
// What's inside:
//
//	lattice/   — fractal construction of the category table (a discrete
//	             diamond-square over a triangular grid)
//	region/    — O(1) point queries: nearest-corner (hard edges) and
//	             bump-weighted vote (rounded edges), plus raster sampling
//	gridgraph/ — region analysis of sampled category grids
//	config/    — YAML generator parameters
//
// Quick start:
//
//	g, err := region.New(8, 4, 9, 9) // seed, variety, size, steps
//	if err != nil {
//		// lattice.ErrInvalidParameter
//	}
//	c, err := g.Smooth(4.5, 2.25) // category in [0, 4)
//
// Coordinates in [0, size]×[0, size] cover the generated region. A
// Generator is immutable and safe for concurrent sampling.
//
//	go get github.com/katalvlaran/hexregion
package hexregion
