package matroid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fchapoton/oriented-matroids/signedset"
)

var (
	// ErrEmptySystem indicates a system constructed with no elements.
	ErrEmptySystem = errors.New("system needs at least one element")

	// ErrGroundSetMismatch indicates elements reporting different
	// ground sets.
	ErrGroundSetMismatch = errors.New("all elements must share one ground set")

	// ErrBadKind indicates an unrecognized axiom-system kind.
	ErrBadKind = errors.New("unrecognized system kind")
)

// Kind names an oriented-matroid axiom system.
type Kind string

const (
	// KindCovector selects the covector axioms.
	KindCovector Kind = "covector"

	// KindVector selects the vector axioms.
	KindVector Kind = "vector"

	// KindCircuit selects the circuit axioms.
	KindCircuit Kind = "circuit"
)

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCovector, KindVector, KindCircuit:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadKind, s)
}

// System is an oriented matroid presented through one axiom system.
type System[E comparable] interface {
	// Kind reports which axiom system the elements are measured against.
	Kind() Kind

	// GroundSet returns the shared ground set.
	GroundSet() *signedset.GroundSet[E]

	// Elements returns the signed subsets in construction order.
	Elements() []*signedset.SignedSubset[E]

	// Validate runs the exhaustive axiom check for the system kind.
	Validate() error

	// Rank returns the rank of the underlying matroid, read off as the
	// largest support cardinality among the elements.
	Rank() int
}

// New constructs the system matching the kind from raw element
// encodings. A nil labels slice takes the ground set from the first
// element; later elements that describe a different ground set fail
// with ErrGroundSetMismatch.
func New[E comparable](kind Kind, data []signedset.Encoding[E], labels []E) (System[E], error) {
	switch kind {
	case KindCovector:
		return NewCovectorSystem(data, labels)
	case KindVector:
		return NewVectorSystem(data, labels)
	case KindCircuit:
		return NewCircuitSystem(data, labels)
	}
	return nil, fmt.Errorf("%w: %q", ErrBadKind, kind)
}

// NewIndexed constructs a system from bare ternary token vectors,
// labelling the ground set with the positions 0..n-1 the way the
// vectors themselves are indexed.
func NewIndexed(kind Kind, vectors [][]any) (System[int], error) {
	if len(vectors) == 0 {
		return nil, ErrEmptySystem
	}
	labels := make([]int, len(vectors[0]))
	for i := range labels {
		labels[i] = i
	}
	data := make([]signedset.Encoding[int], len(vectors))
	for i, v := range vectors {
		data[i] = signedset.VectorOf[int](v)
	}
	return New(kind, data, labels)
}

// base carries the state every system kind shares.
type base[E comparable] struct {
	kind     Kind
	ground   *signedset.GroundSet[E]
	elements []*signedset.SignedSubset[E]
}

// newBase normalizes raw encodings into signed subsets over a single
// ground set.
func newBase[E comparable](kind Kind, data []signedset.Encoding[E], labels []E) (base[E], error) {
	if len(data) == 0 {
		return base[E]{}, ErrEmptySystem
	}
	var ground *signedset.GroundSet[E]
	if labels != nil {
		g, err := signedset.NewGroundSet(labels)
		if err != nil {
			return base[E]{}, err
		}
		ground = g
	}
	elements := make([]*signedset.SignedSubset[E], len(data))
	for i, enc := range data {
		x, err := signedset.New(ground, enc)
		if err != nil {
			// Once a ground set is fixed, a membership or coverage
			// failure means the element describes a different one.
			if ground != nil && (errors.Is(err, signedset.ErrNotInGroundSet) ||
				errors.Is(err, signedset.ErrUnsigned) ||
				errors.Is(err, signedset.ErrLengthMismatch)) {
				return base[E]{}, fmt.Errorf("%w: element %d: %w", ErrGroundSetMismatch, i, err)
			}
			return base[E]{}, fmt.Errorf("element %d: %w", i, err)
		}
		if ground == nil {
			ground = x.GroundSet()
		}
		elements[i] = x
	}
	return base[E]{kind: kind, ground: ground, elements: elements}, nil
}

// Kind reports the axiom system of the elements.
func (b *base[E]) Kind() Kind {
	return b.kind
}

// GroundSet returns the shared ground set.
func (b *base[E]) GroundSet() *signedset.GroundSet[E] {
	return b.ground
}

// Elements returns the signed subsets in construction order. The slice
// is a copy; the elements themselves are immutable.
func (b *base[E]) Elements() []*signedset.SignedSubset[E] {
	out := make([]*signedset.SignedSubset[E], len(b.elements))
	copy(out, b.elements)
	return out
}

// Rank returns the largest support cardinality among the elements.
func (b *base[E]) Rank() int {
	rank := 0
	for _, x := range b.elements {
		if n := len(x.Support()); n > rank {
			rank = n
		}
	}
	return rank
}

// contains scans the collection for a structurally equal element.
func (b *base[E]) contains(x *signedset.SignedSubset[E]) bool {
	for _, y := range b.elements {
		if y.Equal(x) {
			return true
		}
	}
	return false
}

// sigstr renders an element as a compact sign word for error messages.
func sigstr[E comparable](x *signedset.SignedSubset[E]) string {
	var sb strings.Builder
	for _, s := range x.Signs() {
		sb.WriteString(s.String())
	}
	return sb.String()
}
