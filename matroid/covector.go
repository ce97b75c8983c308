package matroid

import (
	"errors"
	"fmt"

	"github.com/fchapoton/oriented-matroids/poset"
	"github.com/fchapoton/oriented-matroids/signedset"
)

var (
	// ErrMissingZero indicates a covector or vector system without the
	// all-zero element (axiom 1).
	ErrMissingZero = errors.New("the zero element is required")

	// ErrNegationClosure indicates an element whose opposite is absent
	// (axiom 2).
	ErrNegationClosure = errors.New("every element needs an opposite")

	// ErrCompositionClosure indicates a composition that escapes the
	// collection (axiom 3).
	ErrCompositionClosure = errors.New("composition must stay in the collection")

	// ErrElimination indicates a separation element with no
	// elimination witness (axiom 4).
	ErrElimination = errors.New("elimination failed")

	// ErrNoFaceLattice indicates a tope or simpliciality query against
	// a system kind that has no face-lattice construction.
	ErrNoFaceLattice = errors.New("system kind has no face lattice")

	// ErrNotTope indicates a simpliciality query for an element that
	// is not a tope.
	ErrNotTope = errors.New("only topes can be simplicial")
)

// CovectorSystem is an oriented matroid presented by its covectors.
type CovectorSystem[E comparable] struct {
	base[E]
}

// NewCovectorSystem normalizes raw covector encodings into a system.
// Validity is not checked here; call Validate.
func NewCovectorSystem[E comparable](data []signedset.Encoding[E], labels []E) (*CovectorSystem[E], error) {
	b, err := newBase(KindCovector, data, labels)
	if err != nil {
		return nil, err
	}
	return &CovectorSystem[E]{base: b}, nil
}

// Validate checks the four covector axioms: the zero covector is
// present, the collection is closed under negation and composition,
// and weak elimination holds for every separation element of every
// ordered pair.
func (m *CovectorSystem[E]) Validate() error {
	zeroFound := false
	for _, x := range m.elements {
		if x.IsZero() {
			zeroFound = true
			break
		}
	}
	if !zeroFound {
		return fmt.Errorf("%w: no covector has empty support", ErrMissingZero)
	}
	for i, x := range m.elements {
		if !m.contains(x.Neg()) {
			return fmt.Errorf("%w: covector %d (%s)", ErrNegationClosure, i, sigstr(x))
		}
	}
	for i, x := range m.elements {
		for j, y := range m.elements {
			xy := x.Compose(y)
			if !m.contains(xy) {
				return fmt.Errorf("%w: covectors %d and %d compose to %s",
					ErrCompositionClosure, i, j, sigstr(xy))
			}
			sep := x.SeparationSet(y)
			if len(sep) == 0 {
				continue
			}
			inSep := make(map[E]struct{}, len(sep))
			for _, e := range sep {
				inSep[e] = struct{}{}
			}
			for _, e := range sep {
				if !m.hasEliminationWitness(e, inSep, xy) {
					return fmt.Errorf("%w: covectors %d and %d have no witness eliminating %v",
						ErrElimination, i, j, e)
				}
			}
		}
	}
	return nil
}

// hasEliminationWitness scans for a Z that is zero on e and agrees with
// X∘Y outside the separation set. Each candidate is judged on its own;
// a mismatch moves the scan to the next one.
func (m *CovectorSystem[E]) hasEliminationWitness(e E, sep map[E]struct{}, xy *signedset.SignedSubset[E]) bool {
	labels := m.ground.Labels()
	want := xy.Signs()
candidates:
	for _, z := range m.elements {
		signs := z.Signs()
		for i, f := range labels {
			if f == e {
				if signs[i] != signedset.Zero {
					continue candidates
				}
				continue
			}
			if _, skip := sep[f]; skip {
				continue
			}
			if signs[i] != want[i] {
				continue candidates
			}
		}
		return true
	}
	return false
}

// faceRelations generates the big face order: (Y, X) whenever Y is
// conformal with X and the support of Y is contained in that of X.
func (m *CovectorSystem[E]) faceRelations() [][2]int {
	var rels [][2]int
	for xi, x := range m.elements {
		for yi, y := range m.elements {
			if xi == yi {
				continue
			}
			if y.ConformalWith(x) && supportSubset(y, x) {
				rels = append(rels, [2]int{yi, xi})
			}
		}
	}
	return rels
}

// FacePoset returns the big face poset. Element indices match the
// order of Elements.
func (m *CovectorSystem[E]) FacePoset() (*poset.Poset, error) {
	return poset.New(len(m.elements), m.faceRelations())
}

// FaceLattice is the big face poset capped by one synthetic top
// element. The top is a sentinel index, never a covector.
type FaceLattice[E comparable] struct {
	// Lattice orders the covector indices plus TopIndex.
	Lattice *poset.Lattice

	// Elements aligns covectors with lattice indices; the slot at
	// TopIndex is nil.
	Elements []*signedset.SignedSubset[E]

	// TopIndex is the index of the synthetic top.
	TopIndex int
}

// FaceLattice builds the big face lattice.
func (m *CovectorSystem[E]) FaceLattice() (*FaceLattice[E], error) {
	n := len(m.elements)
	rels := m.faceRelations()
	for i := 0; i < n; i++ {
		rels = append(rels, [2]int{i, n})
	}
	p, err := poset.New(n+1, rels)
	if err != nil {
		return nil, err
	}
	l, err := poset.NewLattice(p)
	if err != nil {
		return nil, err
	}
	elements := make([]*signedset.SignedSubset[E], n+1)
	copy(elements, m.elements)
	return &FaceLattice[E]{Lattice: l, Elements: elements, TopIndex: n}, nil
}

// Topes returns the maximal covectors of the face poset.
func (m *CovectorSystem[E]) Topes() ([]*signedset.SignedSubset[E], error) {
	p, err := m.FacePoset()
	if err != nil {
		return nil, err
	}
	var topes []*signedset.SignedSubset[E]
	for _, i := range p.MaximalElements() {
		topes = append(topes, m.elements[i])
	}
	return topes, nil
}

// IsTope reports whether x is a maximal covector.
func (m *CovectorSystem[E]) IsTope(x *signedset.SignedSubset[E]) (bool, error) {
	topes, err := m.Topes()
	if err != nil {
		return false, err
	}
	for _, t := range topes {
		if t.Equal(x) {
			return true, nil
		}
	}
	return false, nil
}

// TopePoset orders the topes by inclusion of their separation sets
// from a base tope. The returned elements align with poset indices.
func (m *CovectorSystem[E]) TopePoset(base *signedset.SignedSubset[E]) (*poset.Poset, []*signedset.SignedSubset[E], error) {
	topes, err := m.Topes()
	if err != nil {
		return nil, nil, err
	}
	seps := make([]map[E]struct{}, len(topes))
	for i, t := range topes {
		sep := base.SeparationSet(t)
		seps[i] = make(map[E]struct{}, len(sep))
		for _, e := range sep {
			seps[i][e] = struct{}{}
		}
	}
	var rels [][2]int
	for i := range topes {
		for j := range topes {
			if i == j {
				continue
			}
			subset := true
			for e := range seps[i] {
				if _, ok := seps[j][e]; !ok {
					subset = false
					break
				}
			}
			if subset {
				rels = append(rels, [2]int{i, j})
			}
		}
	}
	p, err := poset.New(len(topes), rels)
	if err != nil {
		return nil, nil, err
	}
	return p, topes, nil
}

// IsAcyclic reports whether some tope has an empty negative part.
func (m *CovectorSystem[E]) IsAcyclic() (bool, error) {
	topes, err := m.Topes()
	if err != nil {
		return false, err
	}
	for _, t := range topes {
		if len(t.Negatives()) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// IsSimplicialTope reports whether the interval [0, t] of the face
// lattice is boolean. The interval is boolean exactly when its size is
// 2^b for b the breadth of the interval sublattice.
func (m *CovectorSystem[E]) IsSimplicialTope(t *signedset.SignedSubset[E]) (bool, error) {
	ok, err := m.IsTope(t)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotTope, sigstr(t))
	}
	fl, err := m.FaceLattice()
	if err != nil {
		return false, err
	}
	bottom, ok := fl.Lattice.Bottom()
	if !ok {
		return false, fmt.Errorf("%w: face lattice has no bottom", ErrMissingZero)
	}
	ti := -1
	for i, x := range fl.Elements {
		if x != nil && x.Equal(t) {
			ti = i
			break
		}
	}
	if ti < 0 {
		return false, fmt.Errorf("%w: %s", ErrNotTope, sigstr(t))
	}
	interval := fl.Lattice.Interval(bottom, ti)
	sub, _, err := fl.Lattice.Sublattice(interval)
	if err != nil {
		return false, err
	}
	return len(interval) == 1<<sub.Breadth(), nil
}

// IsSimplicial reports whether every tope is simplicial.
func (m *CovectorSystem[E]) IsSimplicial() (bool, error) {
	topes, err := m.Topes()
	if err != nil {
		return false, err
	}
	for _, t := range topes {
		ok, err := m.IsSimplicialTope(t)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// supportSubset reports whether the support of y is contained in the
// support of x.
func supportSubset[E comparable](y, x *signedset.SignedSubset[E]) bool {
	ys := y.Signs()
	xs := x.Signs()
	for i := range ys {
		if ys[i] != signedset.Zero && xs[i] == signedset.Zero {
			return false
		}
	}
	return true
}
