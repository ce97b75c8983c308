package signedset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSignOverlap indicates a label assigned more than one sign.
	ErrSignOverlap = errors.New("label carries more than one sign")

	// ErrUnsigned indicates a ground-set label left without a sign.
	ErrUnsigned = errors.New("every ground-set label needs exactly one sign")
)

// SignedSubset assigns one of {+, -, 0} to every label of a ground set.
// Only nonzero signs are stored; a missing entry means zero.
type SignedSubset[E comparable] struct {
	ground *GroundSet[E]
	signs  map[E]Sign
}

// New resolves an encoding variant against a ground set. When ground is
// nil the encoding must be able to report its own ground set (explicit
// zeroes or a copied instance); a vector encoding always needs one.
func New[E comparable](ground *GroundSet[E], enc Encoding[E]) (*SignedSubset[E], error) {
	return enc.resolve(ground)
}

// FromVector builds a signed subset from a ternary token sequence
// aligned positionally with the ground set.
func FromVector[E comparable](ground *GroundSet[E], tokens []any) (*SignedSubset[E], error) {
	return New(ground, VectorOf[E](tokens))
}

// FromSigns builds a signed subset over integer labels 0..n-1 from a
// sign sequence, for callers that have no named ground set.
func FromSigns(signs []Sign) (*SignedSubset[int], error) {
	labels := make([]int, len(signs))
	tokens := make([]any, len(signs))
	for i, s := range signs {
		labels[i] = i
		tokens[i] = s
	}
	ground, err := NewGroundSet(labels)
	if err != nil {
		return nil, err
	}
	return FromVector(ground, tokens)
}

// FromSets builds a signed subset from explicit positive and negative
// label collections. Zeroes are derived from the ground set.
func FromSets[E comparable](ground *GroundSet[E], positives, negatives []E) (*SignedSubset[E], error) {
	return New(ground, Sets[E]{Positives: positives, Negatives: negatives})
}

// build assembles the canonical representation from the three parts,
// enforcing the partition invariants.
func build[E comparable](ground *GroundSet[E], positives, negatives, zeroes []E) (*SignedSubset[E], error) {
	x := &SignedSubset[E]{
		ground: ground,
		signs:  make(map[E]Sign, len(positives)+len(negatives)),
	}
	seen := make(map[E]struct{}, len(positives)+len(negatives)+len(zeroes))
	assign := func(labels []E, s Sign) error {
		for _, e := range labels {
			if !ground.Contains(e) {
				return fmt.Errorf("%w: %v", ErrNotInGroundSet, e)
			}
			if _, dup := seen[e]; dup {
				return fmt.Errorf("%w: %v", ErrSignOverlap, e)
			}
			seen[e] = struct{}{}
			if s != Zero {
				x.signs[e] = s
			}
		}
		return nil
	}
	if err := assign(positives, Plus); err != nil {
		return nil, err
	}
	if err := assign(negatives, Minus); err != nil {
		return nil, err
	}
	if err := assign(zeroes, Zero); err != nil {
		return nil, err
	}
	if len(seen) != ground.Len() {
		for _, e := range ground.labels {
			if _, ok := seen[e]; !ok {
				return nil, fmt.Errorf("%w: %v has none", ErrUnsigned, e)
			}
		}
	}
	return x, nil
}

// GroundSet returns the ground set the subset is defined over.
func (x *SignedSubset[E]) GroundSet() *GroundSet[E] {
	return x.ground
}

// Sign returns the sign of a label, failing with ErrNotInGroundSet for
// labels outside the ground set.
func (x *SignedSubset[E]) Sign(e E) (Sign, error) {
	if !x.ground.Contains(e) {
		return Zero, fmt.Errorf("%w: %v", ErrNotInGroundSet, e)
	}
	return x.signs[e], nil
}

// signOf is Sign for labels already known to be in the ground set.
func (x *SignedSubset[E]) signOf(e E) Sign {
	return x.signs[e]
}

// Positives returns the positive part in ground-set order.
func (x *SignedSubset[E]) Positives() []E {
	return x.part(func(s Sign) bool { return s == Plus })
}

// Negatives returns the negative part in ground-set order.
func (x *SignedSubset[E]) Negatives() []E {
	return x.part(func(s Sign) bool { return s == Minus })
}

// Zeroes returns the zero part in ground-set order.
func (x *SignedSubset[E]) Zeroes() []E {
	return x.part(func(s Sign) bool { return s == Zero })
}

// Support returns the union of the positive and negative parts in
// ground-set order.
func (x *SignedSubset[E]) Support() []E {
	return x.part(func(s Sign) bool { return s != Zero })
}

func (x *SignedSubset[E]) part(keep func(Sign) bool) []E {
	var out []E
	for _, e := range x.ground.labels {
		if keep(x.signs[e]) {
			out = append(out, e)
		}
	}
	return out
}

// IsZero reports whether the support is empty. The empty signed subset
// plays the role of the zero vector regardless of ground-set size.
func (x *SignedSubset[E]) IsZero() bool {
	return len(x.signs) == 0
}

// Equal reports structural equality: same ground-set labels and the
// same sign for every label.
func (x *SignedSubset[E]) Equal(y *SignedSubset[E]) bool {
	if x == nil || y == nil {
		return x == y
	}
	if !x.ground.Equal(y.ground) {
		return false
	}
	if len(x.signs) != len(y.signs) {
		return false
	}
	for e, s := range x.signs {
		if y.signs[e] != s {
			return false
		}
	}
	return true
}

// Neg returns the opposite signed subset: positives and negatives swap,
// zeroes stay put.
func (x *SignedSubset[E]) Neg() *SignedSubset[E] {
	n := &SignedSubset[E]{
		ground: x.ground,
		signs:  make(map[E]Sign, len(x.signs)),
	}
	for e, s := range x.signs {
		n.signs[e] = s.Neg()
	}
	return n
}

// Compose returns the composition X∘Y: for each label the sign of X
// when nonzero, otherwise the sign of Y. Composition is commutative
// exactly when the separation set is empty.
func (x *SignedSubset[E]) Compose(y *SignedSubset[E]) *SignedSubset[E] {
	z := &SignedSubset[E]{
		ground: x.ground,
		signs:  make(map[E]Sign, len(x.signs)+len(y.signs)),
	}
	for e, s := range y.signs {
		z.signs[e] = s
	}
	for e, s := range x.signs {
		z.signs[e] = s
	}
	return z
}

// SeparationSet returns S(X,Y) = {e : X(e) = -Y(e) ≠ 0} in ground-set
// order.
func (x *SignedSubset[E]) SeparationSet(y *SignedSubset[E]) []E {
	var out []E
	for _, e := range x.ground.labels {
		s := x.signs[e]
		if s != Zero && y.signOf(e) == s.Neg() {
			out = append(out, e)
		}
	}
	return out
}

// ConformalWith reports whether the separation set with y is empty.
func (x *SignedSubset[E]) ConformalWith(y *SignedSubset[E]) bool {
	for e, s := range x.signs {
		if y.signOf(e) == s.Neg() {
			return false
		}
	}
	return true
}

// RestrictionOf reports whether x is a restriction of y, that is
// whether the positive and negative parts of x are contained in those
// of y. Computed the same way as conformality of supports but kept as
// its own relation: callers distinguish "restricts" from "conformal".
func (x *SignedSubset[E]) RestrictionOf(y *SignedSubset[E]) bool {
	for e, s := range x.signs {
		if y.signOf(e) != s {
			return false
		}
	}
	return true
}

// Reorient flips the signs of every label in the change set, leaving
// zeroes unchanged. Labels outside the ground set fail with
// ErrNotInGroundSet. Reorienting twice by the same set is the identity.
func (x *SignedSubset[E]) Reorient(changeSet ...E) (*SignedSubset[E], error) {
	flip := make(map[E]struct{}, len(changeSet))
	for _, e := range changeSet {
		if !x.ground.Contains(e) {
			return nil, fmt.Errorf("%w: %v", ErrNotInGroundSet, e)
		}
		flip[e] = struct{}{}
	}
	n := &SignedSubset[E]{
		ground: x.ground,
		signs:  make(map[E]Sign, len(x.signs)),
	}
	for e, s := range x.signs {
		if _, ok := flip[e]; ok {
			s = s.Neg()
		}
		n.signs[e] = s
	}
	return n, nil
}

// Signs returns the sign sequence in ground-set order. Constructing
// from a vector and reading Signs back reproduces the vector.
func (x *SignedSubset[E]) Signs() []Sign {
	out := make([]Sign, x.ground.Len())
	for i, e := range x.ground.labels {
		out[i] = x.signs[e]
	}
	return out
}

// String renders the three parts one per line, matching the notation
// used throughout the oriented-matroid literature.
func (x *SignedSubset[E]) String() string {
	join := func(labels []E) string {
		parts := make([]string, len(labels))
		for i, e := range labels {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	}
	return "+: " + join(x.Positives()) + "\n" +
		"-: " + join(x.Negatives()) + "\n" +
		"0: " + join(x.Zeroes())
}
