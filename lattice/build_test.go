package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hexregion/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_InvalidParameters checks every precondition maps to ErrInvalidParameter.
func TestBuild_InvalidParameters(t *testing.T) {
	cases := []struct {
		name                  string
		variety, size, steps int
	}{
		{"zero variety", 0, 4, 2},
		{"negative variety", -3, 4, 2},
		{"zero size", 4, 0, 2},
		{"negative size", 4, -1, 2},
		{"negative steps", 4, 4, -1},
		{"steps too deep", 4, 1, 31},
		{"table too large", 4, 1 << 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := lattice.Build(1, tc.variety, tc.size, tc.steps)
			assert.ErrorIs(t, err, lattice.ErrInvalidParameter)
			assert.Nil(t, l)
		})
	}
}

// TestBuild_Dimensions verifies side = 2^steps*size + 1 and accessor values.
func TestBuild_Dimensions(t *testing.T) {
	l, err := lattice.Build(3, 5, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, l.Stride())
	assert.Equal(t, 12, l.Unpadded())
	assert.Equal(t, 13, l.Side())
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, 2, l.Steps())
	assert.Equal(t, 5, l.Variety())
	assert.Len(t, l.Cells(), 13*13)
}

// TestBuild_Deterministic builds twice with the same parameters and expects
// bit-identical tables; a different seed should diverge.
func TestBuild_Deterministic(t *testing.T) {
	a, err := lattice.Build(42, 6, 5, 4)
	require.NoError(t, err)
	b, err := lattice.Build(42, 6, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, a.Cells(), b.Cells())

	c, err := lattice.Build(43, 6, 5, 4)
	require.NoError(t, err)
	assert.NotEqual(t, a.Cells(), c.Cells())
}

// TestBuild_Range checks every cell is a valid category, which also shows no
// cell kept its zero value from an unassigned read of a larger category set.
func TestBuild_Range(t *testing.T) {
	for _, variety := range []int{1, 2, 3, 7} {
		l, err := lattice.Build(int64(variety), variety, 4, 3)
		require.NoError(t, err)
		for i, v := range l.Cells() {
			if v < 0 || v >= variety {
				t.Fatalf("variety=%d: cell %d = %d out of range", variety, i, v)
			}
		}
	}
}

// TestBuild_SingleVariety: with one category every cell must be 0.
func TestBuild_SingleVariety(t *testing.T) {
	l, err := lattice.Build(99, 1, 3, 3)
	require.NoError(t, err)
	for _, v := range l.Cells() {
		require.Equal(t, 0, v)
	}
}

// TestBuild_NoSteps: without subdivision the table is anchors only.
func TestBuild_NoSteps(t *testing.T) {
	l, err := lattice.Build(5, 4, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Stride())
	assert.Equal(t, 4, l.Side())
	for j := 0; j <= 3; j++ {
		for i := 0; i <= 3; i++ {
			a, err := l.Anchor(i, j)
			require.NoError(t, err)
			v, err := l.At(j, i)
			require.NoError(t, err)
			assert.Equal(t, a, v)
		}
	}
}

// TestBuild_AnchorDrawOrder replays the anchor draws from an identically
// seeded source: anchors are drawn column by column before any coin flip.
func TestBuild_AnchorDrawOrder(t *testing.T) {
	const seed, variety, size, steps = 8, 4, 9, 3
	l, err := lattice.Build(seed, variety, size, steps)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(seed))
	for col := 0; col <= size; col++ {
		for row := 0; row <= size; row++ {
			want := r.Intn(variety)
			got, err := l.Anchor(col, row)
			require.NoError(t, err)
			require.Equalf(t, want, got, "anchor col=%d row=%d", col, row)
		}
	}
}

// TestBuild_MidpointsFollowParents checks, for every non-anchor cell at every
// level, that it copies one of its two parents:
//
//	(even, odd)  horizontal midpoint: (r, c-h) or (r, c+h)
//	(odd, even)  vertical midpoint:   (r-h, c) or (r+h, c)
//	(odd, odd)   diagonal midpoint:   (r-h, c-h) or (r+h, c+h)
//
// where parity is measured in units of h, the cell's own level spacing.
func TestBuild_MidpointsFollowParents(t *testing.T) {
	for _, p := range []struct{ seed int64; variety, size, steps int }{
		{1, 2, 2, 1},
		{7, 3, 3, 3},
		{8, 4, 2, 5},
	} {
		l, err := lattice.Build(p.seed, p.variety, p.size, p.steps)
		require.NoError(t, err)
		assertParents(t, l)
	}
}

// TestBuild_EdgeSkip is the small padded-border case: steps=1, variety=2,
// size=2 gives a 5×5 table whose border midpoints must still copy a parent.
func TestBuild_EdgeSkip(t *testing.T) {
	for seed := int64(0); seed < 32; seed++ {
		l, err := lattice.Build(seed, 2, 2, 1)
		require.NoError(t, err)
		require.Equal(t, 5, l.Side())
		assertParents(t, l)

		last := l.Unpadded()
		for k := 1; k < last; k += 2 {
			// Bottom padding row and right padding column.
			v, _ := l.At(last, k)
			a, _ := l.At(last, k-1)
			b, _ := l.At(last, k+1)
			assert.Contains(t, []int{a, b}, v)

			v, _ = l.At(k, last)
			a, _ = l.At(k-1, last)
			b, _ = l.At(k+1, last)
			assert.Contains(t, []int{a, b}, v)
		}
	}
}

// TestBuild_WithSource uses a caller-supplied source; the seed argument is
// then irrelevant.
func TestBuild_WithSource(t *testing.T) {
	a, err := lattice.Build(1, 5, 3, 3, lattice.WithSource(rand.NewSource(77)))
	require.NoError(t, err)
	b, err := lattice.Build(2, 5, 3, 3, lattice.WithSource(rand.NewSource(77)))
	require.NoError(t, err)
	c, err := lattice.Build(77, 5, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, a.Cells(), b.Cells())
	assert.Equal(t, a.Cells(), c.Cells())
	assert.Panics(t, func() { lattice.WithSource(nil) })
}

// assertParents walks the whole table and checks the parent rule.
func assertParents(t *testing.T, l *lattice.Lattice) {
	t.Helper()
	stride := l.Stride()
	for r := 0; r < l.Side(); r++ {
		for c := 0; c < l.Side(); c++ {
			if r%stride == 0 && c%stride == 0 {
				continue // anchor
			}
			h := lowBit(r | c)
			var ar, ac, br, bc int
			switch {
			case r%(2*h) == 0:
				ar, ac, br, bc = r, c-h, r, c+h
			case c%(2*h) == 0:
				ar, ac, br, bc = r-h, c, r+h, c
			default:
				ar, ac, br, bc = r-h, c-h, r+h, c+h
			}
			v := l.Value(r, c)
			a, err := l.At(ar, ac)
			require.NoError(t, err)
			b, err := l.At(br, bc)
			require.NoError(t, err)
			if v != a && v != b {
				t.Fatalf("cell (%d,%d)=%d matches neither parent (%d,%d)=%d nor (%d,%d)=%d",
					r, c, v, ar, ac, a, br, bc, b)
			}
		}
	}
}

func lowBit(v int) int {
	return v & -v
}
