package matroid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchapoton/oriented-matroids/signedset"
)

// hexagonCovectors is the covector collection of three generic lines
// through the origin in the plane: the zero face, six rays and six
// chambers, read off anticlockwise.
var hexagonCovectors = [][]any{
	{0, 0, 0},
	{1, -1, -1},
	{1, 0, -1},
	{1, 1, -1},
	{0, 1, -1},
	{-1, 1, -1},
	{-1, 1, 0},
	{-1, 1, 1},
	{-1, 0, 1},
	{-1, -1, 1},
	{0, -1, 1},
	{1, -1, 1},
	{1, -1, 0},
}

func mustCovectors(t *testing.T, vectors [][]any) *CovectorSystem[int] {
	t.Helper()
	sys, err := NewIndexed(KindCovector, vectors)
	require.NoError(t, err)
	cov, ok := sys.(*CovectorSystem[int])
	require.True(t, ok)
	return cov
}

func signed(t *testing.T, signs ...signedset.Sign) *signedset.SignedSubset[int] {
	t.Helper()
	x, err := signedset.FromSigns(signs)
	require.NoError(t, err)
	return x
}

func TestValidateRankOne(t *testing.T) {
	sys := mustCovectors(t, [][]any{{1}, {-1}, {0}})

	assert.NoError(t, sys.Validate())
	assert.Equal(t, 1, sys.Rank())
	assert.Equal(t, KindCovector, sys.Kind())
}

func TestValidateHexagon(t *testing.T) {
	sys := mustCovectors(t, hexagonCovectors)

	assert.NoError(t, sys.Validate())
	assert.Equal(t, 3, sys.Rank())
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		vectors [][]any
		want    error
	}{
		{
			name:    "missing zero",
			vectors: [][]any{{1}, {-1}},
			want:    ErrMissingZero,
		},
		{
			name:    "missing negation",
			vectors: [][]any{{0}, {1}},
			want:    ErrNegationClosure,
		},
		{
			name: "composition escapes",
			vectors: [][]any{
				{0, 0},
				{1, 0},
				{-1, 0},
				{0, 1},
				{0, -1},
			},
			want: ErrCompositionClosure,
		},
		{
			name: "no elimination witness",
			vectors: [][]any{
				{0, 0},
				{1, 1},
				{-1, -1},
				{1, -1},
				{-1, 1},
			},
			want: ErrElimination,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := mustCovectors(t, tt.vectors)
			assert.ErrorIs(t, sys.Validate(), tt.want)
		})
	}
}

func TestFacePoset(t *testing.T) {
	// One line through the origin: the zero face below both rays.
	sys := mustCovectors(t, [][]any{{1}, {-1}, {0}})

	p, err := sys.FacePoset()
	require.NoError(t, err)

	assert.True(t, p.Leq(2, 0))
	assert.True(t, p.Leq(2, 1))
	assert.False(t, p.Leq(0, 1))
	assert.False(t, p.Leq(1, 0))

	bottom, ok := p.Bottom()
	require.True(t, ok)
	assert.Equal(t, 2, bottom)
	assert.ElementsMatch(t, []int{0, 1}, p.MaximalElements())
}

func TestFacePosetRejectsDuplicates(t *testing.T) {
	sys := mustCovectors(t, [][]any{{0}, {1}, {1}, {-1}})

	_, err := sys.FacePoset()
	assert.Error(t, err)
}

func TestFaceLattice(t *testing.T) {
	sys := mustCovectors(t, hexagonCovectors)

	fl, err := sys.FaceLattice()
	require.NoError(t, err)

	assert.Equal(t, 14, fl.Lattice.Len())
	assert.Equal(t, 13, fl.TopIndex)
	assert.Nil(t, fl.Elements[fl.TopIndex])

	bottom, ok := fl.Lattice.Bottom()
	require.True(t, ok)
	assert.True(t, fl.Elements[bottom].IsZero())

	top, ok := fl.Lattice.Top()
	require.True(t, ok)
	assert.Equal(t, fl.TopIndex, top)

	// zero, ray, chamber, top
	assert.Equal(t, 4, fl.Lattice.Height())
}

func TestTopes(t *testing.T) {
	sys := mustCovectors(t, hexagonCovectors)

	topes, err := sys.Topes()
	require.NoError(t, err)
	require.Len(t, topes, 6)
	for _, tp := range topes {
		assert.Empty(t, tp.Zeroes())
	}
}

func TestIsTope(t *testing.T) {
	sys := mustCovectors(t, hexagonCovectors)

	chamber := signed(t, signedset.Plus, signedset.Minus, signedset.Minus)
	ray := signed(t, signedset.Plus, signedset.Zero, signedset.Minus)

	ok, err := sys.IsTope(chamber)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sys.IsTope(ray)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTopePoset(t *testing.T) {
	sys := mustCovectors(t, hexagonCovectors)
	base := signed(t, signedset.Plus, signedset.Minus, signedset.Minus)

	p, topes, err := sys.TopePoset(base)
	require.NoError(t, err)
	require.Equal(t, 6, p.Len())
	require.Len(t, topes, 6)

	bottom, ok := p.Bottom()
	require.True(t, ok)
	assert.True(t, topes[bottom].Equal(base))

	top, ok := p.Top()
	require.True(t, ok)
	assert.True(t, topes[top].Equal(base.Neg()))

	assert.Equal(t, 4, p.Height())
}

func TestIsAcyclic(t *testing.T) {
	line := mustCovectors(t, [][]any{{1}, {-1}, {0}})
	ok, err := line.IsAcyclic()
	require.NoError(t, err)
	assert.True(t, ok)

	// No chamber of the hexagon has all-positive signs.
	hexagon := mustCovectors(t, hexagonCovectors)
	ok, err = hexagon.IsAcyclic()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSimplicialTope(t *testing.T) {
	sys := mustCovectors(t, hexagonCovectors)
	chamber := signed(t, signedset.Plus, signedset.Minus, signedset.Minus)
	ray := signed(t, signedset.Plus, signedset.Zero, signedset.Minus)

	ok, err := sys.IsSimplicialTope(chamber)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = sys.IsSimplicialTope(ray)
	assert.ErrorIs(t, err, ErrNotTope)
}

func TestIsSimplicial(t *testing.T) {
	for _, vectors := range [][][]any{
		{{1}, {-1}, {0}},
		hexagonCovectors,
	} {
		sys := mustCovectors(t, vectors)
		ok, err := sys.IsSimplicial()
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
