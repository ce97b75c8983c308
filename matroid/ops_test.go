package matroid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchapoton/oriented-matroids/signedset"
)

func TestTopesCapability(t *testing.T) {
	circuits := mustCircuits(t, [][]any{{1, 1}, {-1, -1}})

	_, err := Topes[int](circuits)
	assert.ErrorIs(t, err, ErrNoFaceLattice)

	covectors := mustCovectors(t, [][]any{{1}, {-1}, {0}})
	topes, err := Topes[int](covectors)
	require.NoError(t, err)
	assert.Len(t, topes, 2)
}

func TestDeletion(t *testing.T) {
	sys, err := New(KindCircuit, []signedset.Encoding[int]{
		signedset.Sets[int]{Positives: []int{1, 4}, Negatives: []int{2, 3}},
		signedset.Sets[int]{Positives: []int{2, 3}, Negatives: []int{1, 4}},
	}, []int{1, 2, 3, 4})
	require.NoError(t, err)

	del, err := Deletion(sys, 1)
	require.NoError(t, err)

	ground := del.GroundSet()
	assert.Equal(t, []int{2, 3, 4}, ground.Labels())

	first, err := signedset.FromSets(ground, []int{4}, []int{2, 3})
	require.NoError(t, err)
	second := first.Neg()

	elements := del.Elements()
	require.Len(t, elements, 2)
	assert.True(t, elements[0].Equal(first))
	assert.True(t, elements[1].Equal(second))

	_, err = Deletion(sys, 9)
	assert.ErrorIs(t, err, signedset.ErrNotInGroundSet)
}

func TestRestriction(t *testing.T) {
	sys := mustCovectors(t, hexagonCovectors)

	res, err := Restriction[int](sys, 0)
	require.NoError(t, err)

	// Only the faces lying on the first line survive.
	assert.Equal(t, []int{1, 2}, res.GroundSet().Labels())
	assert.Len(t, res.Elements(), 3)
	assert.NoError(t, res.Validate())

	_, err = Restriction[int](sys, 7)
	assert.ErrorIs(t, err, signedset.ErrNotInGroundSet)
}

func TestLoops(t *testing.T) {
	sys := mustCovectors(t, [][]any{{1, 0}, {-1, 0}, {0, 0}})

	loops, err := Loops[int](sys)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, loops)

	hexagon := mustCovectors(t, hexagonCovectors)
	loops, err = Loops[int](hexagon)
	require.NoError(t, err)
	assert.Empty(t, loops)
}

func TestAreParallel(t *testing.T) {
	sys := mustCovectors(t, [][]any{{1, 1}, {-1, -1}, {0, 0}})

	parallel, err := AreParallel[int](sys, 0, 1)
	require.NoError(t, err)
	assert.True(t, parallel)

	hexagon := mustCovectors(t, hexagonCovectors)
	parallel, err = AreParallel[int](hexagon, 0, 1)
	require.NoError(t, err)
	assert.False(t, parallel)

	_, err = AreParallel[int](hexagon, 0, 9)
	assert.ErrorIs(t, err, signedset.ErrNotInGroundSet)

	withLoop := mustCovectors(t, [][]any{{1, 0}, {-1, 0}, {0, 0}})
	_, err = AreParallel[int](withLoop, 0, 1)
	assert.Error(t, err)
}

func TestIsSimple(t *testing.T) {
	simple, err := IsSimple[int](mustCovectors(t, hexagonCovectors))
	require.NoError(t, err)
	assert.True(t, simple)

	simple, err = IsSimple[int](mustCovectors(t, [][]any{{1, 1}, {-1, -1}, {0, 0}}))
	require.NoError(t, err)
	assert.False(t, simple)

	simple, err = IsSimple[int](mustCovectors(t, [][]any{{1, 0}, {-1, 0}, {0, 0}}))
	require.NoError(t, err)
	assert.False(t, simple)
}
