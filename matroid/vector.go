package matroid

import (
	"fmt"

	"github.com/fchapoton/oriented-matroids/signedset"
)

// VectorSystem is an oriented matroid presented by its vectors.
type VectorSystem[E comparable] struct {
	base[E]
}

// NewVectorSystem normalizes raw vector encodings into a system.
// Validity is not checked here; call Validate.
func NewVectorSystem[E comparable](data []signedset.Encoding[E], labels []E) (*VectorSystem[E], error) {
	b, err := newBase(KindVector, data, labels)
	if err != nil {
		return nil, err
	}
	return &VectorSystem[E]{base: b}, nil
}

// Validate checks the vector axioms: the zero vector is present, the
// collection is closed under negation and composition, and vector
// elimination holds for every e in X⁺∩Y⁻ of every ordered pair.
func (m *VectorSystem[E]) Validate() error {
	zeroFound := false
	for _, x := range m.elements {
		if x.IsZero() {
			zeroFound = true
			break
		}
	}
	if !zeroFound {
		return fmt.Errorf("%w: no vector has empty support", ErrMissingZero)
	}
	for i, x := range m.elements {
		if !m.contains(x.Neg()) {
			return fmt.Errorf("%w: vector %d (%s)", ErrNegationClosure, i, sigstr(x))
		}
	}
	for i, x := range m.elements {
		for j, y := range m.elements {
			xy := x.Compose(y)
			if !m.contains(xy) {
				return fmt.Errorf("%w: vectors %d and %d compose to %s",
					ErrCompositionClosure, i, j, sigstr(xy))
			}
			if err := m.eliminate(i, j, x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// eliminate checks vector elimination for one ordered pair: for every
// e positive in x and negative in y there must be a z with
// z⁺ ⊆ (x⁺∪y⁺)\{e}, z⁻ ⊆ (x⁻∪y⁻)\{e} whose support covers the
// symmetric support difference and the sign agreements of x and y.
func (m *VectorSystem[E]) eliminate(i, j int, x, y *signedset.SignedSubset[E]) error {
	xs := x.Signs()
	ys := y.Signs()
	labels := m.ground.Labels()
	for ei, e := range labels {
		if xs[ei] != signedset.Plus || ys[ei] != signedset.Minus {
			continue
		}
		if !m.hasVectorWitness(ei, xs, ys) {
			return fmt.Errorf("%w: vectors %d and %d cannot eliminate %v",
				ErrElimination, i, j, e)
		}
	}
	return nil
}

func (m *VectorSystem[E]) hasVectorWitness(ei int, xs, ys []signedset.Sign) bool {
candidates:
	for _, z := range m.elements {
		zs := z.Signs()
		for f := range zs {
			if f == ei {
				if zs[f] != signedset.Zero {
					continue candidates
				}
				continue
			}
			switch zs[f] {
			case signedset.Plus:
				if xs[f] != signedset.Plus && ys[f] != signedset.Plus {
					continue candidates
				}
			case signedset.Minus:
				if xs[f] != signedset.Minus && ys[f] != signedset.Minus {
					continue candidates
				}
			case signedset.Zero:
				// Support must cover where exactly one of x, y is
				// supported and where they agree.
				if mustCover(xs[f], ys[f]) {
					continue candidates
				}
			}
		}
		return true
	}
	return false
}

// mustCover reports whether a label with the given x and y signs
// belongs to the mandatory support of an elimination witness.
func mustCover(xf, yf signedset.Sign) bool {
	if xf == signedset.Zero && yf == signedset.Zero {
		return false
	}
	if xf != signedset.Zero && yf != signedset.Zero && xf != yf {
		return false
	}
	return true
}
