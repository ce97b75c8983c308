package signedset

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates a vector whose length differs from
	// the ground set.
	ErrLengthMismatch = errors.New("vector length must match ground-set length")

	// ErrMissingGroundSet indicates an encoding that cannot determine
	// its ground set on its own.
	ErrMissingGroundSet = errors.New("encoding requires a ground set")

	// ErrPairedParts indicates positives supplied without negatives or
	// the other way around.
	ErrPairedParts = errors.New("positives and negatives must be supplied together")

	// ErrBadPartKey indicates an unrecognized key in a parts mapping.
	ErrBadPartKey = errors.New("unrecognized part key")

	// ErrDuplicatePart indicates a part named twice in a mapping, for
	// example both "p" and "positives".
	ErrDuplicatePart = errors.New("part named twice")
)

// Encoding is one of the recognized input shapes for a signed subset.
// Each shape resolves once, at the boundary, into the canonical
// three-part representation.
//
// The variants are Vector (ternary token sequence), Sets (explicit
// positive/negative/[zero] collections), Parts (a keyed mapping) and
// CopyOf (duplicate an existing instance).
type Encoding[E comparable] interface {
	resolve(ground *GroundSet[E]) (*SignedSubset[E], error)
}

// Vector encodes a signed subset as a ternary token sequence aligned
// positionally with the ground set. Tokens follow the ParseSign
// alphabet.
type Vector []any

func (v Vector) resolve(ground *GroundSet[any]) (*SignedSubset[any], error) {
	return resolveVector(ground, v)
}

// VectorOf is Vector for a concrete label type. Vector itself only
// satisfies Encoding[any]; generic call sites wrap their tokens in
// VectorOf[E].
type VectorOf[E comparable] []any

func (v VectorOf[E]) resolve(ground *GroundSet[E]) (*SignedSubset[E], error) {
	return resolveVector(ground, v)
}

func resolveVector[E comparable](ground *GroundSet[E], tokens []any) (*SignedSubset[E], error) {
	if ground == nil {
		return nil, fmt.Errorf("%w: vector encodings are positional", ErrMissingGroundSet)
	}
	if len(tokens) != ground.Len() {
		return nil, fmt.Errorf("%w: vector has %d entries, ground set has %d",
			ErrLengthMismatch, len(tokens), ground.Len())
	}
	x := &SignedSubset[E]{
		ground: ground,
		signs:  make(map[E]Sign, len(tokens)),
	}
	for i, tok := range tokens {
		s, err := ParseSign(tok)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if s != Zero {
			x.signs[ground.labels[i]] = s
		}
	}
	return x, nil
}

// Sets encodes a signed subset as explicit label collections. A nil
// Zeroes is derived as the ground set minus the support; an explicit
// Zeroes (even empty) is validated as given. When no ground set is
// supplied the three parts must cover it themselves, so Zeroes is
// required.
type Sets[E comparable] struct {
	Positives []E
	Negatives []E
	Zeroes    []E
}

func (s Sets[E]) resolve(ground *GroundSet[E]) (*SignedSubset[E], error) {
	if s.Positives == nil && s.Negatives != nil || s.Positives != nil && s.Negatives == nil {
		return nil, ErrPairedParts
	}
	zeroes := s.Zeroes
	if ground == nil {
		labels := make([]E, 0, len(s.Positives)+len(s.Negatives)+len(zeroes))
		labels = append(labels, s.Positives...)
		labels = append(labels, s.Negatives...)
		labels = append(labels, zeroes...)
		var err error
		ground, err = NewGroundSet(labels)
		if err != nil {
			return nil, err
		}
	} else if zeroes == nil {
		zeroes = deriveZeroes(ground, s.Positives, s.Negatives)
	}
	return build(ground, s.Positives, s.Negatives, zeroes)
}

// Parts encodes a signed subset as a mapping with the keys p,
// positives, n, negatives, z and zeroes. Short and long keys for the
// same part may not both appear; absent parts default to empty, with
// zeroes derived from the ground set.
type Parts[E comparable] map[string][]E

func (p Parts[E]) resolve(ground *GroundSet[E]) (*SignedSubset[E], error) {
	var positives, negatives, zeroes []E
	sawZeroes := false
	for key, labels := range p {
		switch key {
		case "p", "positives":
			if positives != nil {
				return nil, fmt.Errorf("%w: positives", ErrDuplicatePart)
			}
			positives = labels
		case "n", "negatives":
			if negatives != nil {
				return nil, fmt.Errorf("%w: negatives", ErrDuplicatePart)
			}
			negatives = labels
		case "z", "zeroes":
			if sawZeroes {
				return nil, fmt.Errorf("%w: zeroes", ErrDuplicatePart)
			}
			zeroes = labels
			sawZeroes = true
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadPartKey, key)
		}
	}
	if ground == nil {
		labels := make([]E, 0, len(positives)+len(negatives)+len(zeroes))
		labels = append(labels, positives...)
		labels = append(labels, negatives...)
		labels = append(labels, zeroes...)
		var err error
		ground, err = NewGroundSet(labels)
		if err != nil {
			return nil, err
		}
	} else if !sawZeroes {
		zeroes = deriveZeroes(ground, positives, negatives)
	}
	return build(ground, positives, negatives, zeroes)
}

// CopyOf duplicates an existing signed subset, optionally rebasing it
// onto an equal ground set.
type CopyOf[E comparable] struct {
	Source *SignedSubset[E]
}

func (c CopyOf[E]) resolve(ground *GroundSet[E]) (*SignedSubset[E], error) {
	if c.Source == nil {
		return nil, errors.New("copy of nil signed subset")
	}
	if ground == nil {
		ground = c.Source.ground
	} else if !ground.Equal(c.Source.ground) {
		return nil, fmt.Errorf("%w: copy targets a different ground set", ErrNotInGroundSet)
	}
	x := &SignedSubset[E]{
		ground: ground,
		signs:  make(map[E]Sign, len(c.Source.signs)),
	}
	for e, s := range c.Source.signs {
		x.signs[e] = s
	}
	return x, nil
}

func deriveZeroes[E comparable](ground *GroundSet[E], positives, negatives []E) []E {
	support := make(map[E]struct{}, len(positives)+len(negatives))
	for _, e := range positives {
		support[e] = struct{}{}
	}
	for _, e := range negatives {
		support[e] = struct{}{}
	}
	zeroes := make([]E, 0, ground.Len())
	for _, e := range ground.labels {
		if _, ok := support[e]; !ok {
			zeroes = append(zeroes, e)
		}
	}
	return zeroes
}
