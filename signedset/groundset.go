package signedset

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateLabel indicates a ground set listing a label twice.
	ErrDuplicateLabel = errors.New("duplicate ground-set label")

	// ErrNotInGroundSet indicates a label absent from the ground set.
	ErrNotInGroundSet = errors.New("label not in ground set")
)

// GroundSet is the fixed, ordered universe of labels a signed subset is
// defined over. The order only matters for vector encodings and for
// rendering; two ground sets with the same labels in different orders
// compare equal.
type GroundSet[E comparable] struct {
	labels []E
	index  map[E]int
}

// NewGroundSet builds a ground set from an ordered label sequence.
// Duplicate labels fail with ErrDuplicateLabel.
func NewGroundSet[E comparable](labels []E) (*GroundSet[E], error) {
	g := &GroundSet[E]{
		labels: make([]E, len(labels)),
		index:  make(map[E]int, len(labels)),
	}
	copy(g.labels, labels)
	for i, e := range labels {
		if _, ok := g.index[e]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateLabel, e)
		}
		g.index[e] = i
	}
	return g, nil
}

// Len returns the number of labels.
func (g *GroundSet[E]) Len() int {
	return len(g.labels)
}

// Labels returns the labels in ground-set order. The slice is a copy.
func (g *GroundSet[E]) Labels() []E {
	out := make([]E, len(g.labels))
	copy(out, g.labels)
	return out
}

// Contains reports whether the label belongs to the ground set.
func (g *GroundSet[E]) Contains(e E) bool {
	_, ok := g.index[e]
	return ok
}

// IndexOf returns the position of the label in ground-set order.
func (g *GroundSet[E]) IndexOf(e E) (int, bool) {
	i, ok := g.index[e]
	return i, ok
}

// Equal reports whether two ground sets carry the same labels. Ordering
// is ignored: ground sets are compared as label sets.
func (g *GroundSet[E]) Equal(other *GroundSet[E]) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.labels) != len(other.labels) {
		return false
	}
	for e := range g.index {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}
