package poset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boolean builds the lattice of subsets of {0..bits-1}, with element i
// standing for the subset encoded by its bits.
func boolean(t *testing.T, bits int) *Lattice {
	t.Helper()
	n := 1 << bits
	var rels [][2]int
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a != b && a&b == a {
				rels = append(rels, [2]int{a, b})
			}
		}
	}
	p, err := New(n, rels)
	require.NoError(t, err)
	l, err := NewLattice(p)
	require.NoError(t, err)
	return l
}

func TestNewLatticeRejectsNonLattices(t *testing.T) {
	// Two bottoms with two incomparable upper bounds: no unique join.
	p, err := New(4, [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}})
	require.NoError(t, err)

	_, err = NewLattice(p)
	assert.ErrorIs(t, err, ErrNotLattice)
}

func TestJoinAndMeet(t *testing.T) {
	l := boolean(t, 3)

	assert.Equal(t, 0b011, l.Join(0b001, 0b010))
	assert.Equal(t, 0b111, l.Join(0b011, 0b100))
	assert.Equal(t, 0b001, l.Meet(0b011, 0b101))
	assert.Equal(t, 0b000, l.Meet(0b001, 0b010))
	assert.Equal(t, 0b010, l.Join(0b010, 0b010))
}

func TestBreadth(t *testing.T) {
	assert.Equal(t, 2, boolean(t, 2).Breadth())
	assert.Equal(t, 3, boolean(t, 3).Breadth())

	// A chain has breadth 1.
	p, err := New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	chain, err := NewLattice(p)
	require.NoError(t, err)
	assert.Equal(t, 1, chain.Breadth())

	// A single element has breadth 0.
	p, err = New(1, nil)
	require.NoError(t, err)
	single, err := NewLattice(p)
	require.NoError(t, err)
	assert.Equal(t, 0, single.Breadth())
}

func TestSublattice(t *testing.T) {
	l := boolean(t, 3)

	sub, members, err := l.Sublattice([]int{0b001, 0b010})
	require.NoError(t, err)

	// Closure adds the join and the meet.
	assert.Equal(t, []int{0b000, 0b001, 0b010, 0b011}, members)
	assert.Equal(t, 4, sub.Len())
	assert.Equal(t, 2, sub.Breadth())

	_, _, err = l.Sublattice([]int{99})
	assert.ErrorIs(t, err, ErrBadRelation)
}
