package matroid

import (
	"errors"
	"fmt"

	"github.com/fchapoton/oriented-matroids/signedset"
)

var (
	// ErrZeroPresent indicates a circuit collection containing the
	// empty signed subset, which the circuit axioms forbid.
	ErrZeroPresent = errors.New("the zero element is not allowed")

	// ErrSupportContainment indicates two circuits with nested
	// supports that are neither equal nor opposite.
	ErrSupportContainment = errors.New("only equal or opposite circuits may have nested supports")
)

// CircuitSystem is an oriented matroid presented by its circuits.
type CircuitSystem[E comparable] struct {
	base[E]
}

// NewCircuitSystem normalizes raw circuit encodings into a system.
// Validity is not checked here; call Validate.
func NewCircuitSystem[E comparable](data []signedset.Encoding[E], labels []E) (*CircuitSystem[E], error) {
	b, err := newBase(KindCircuit, data, labels)
	if err != nil {
		return nil, err
	}
	return &CircuitSystem[E]{base: b}, nil
}

// Validate checks the circuit axioms: the empty set is absent, the
// collection is closed under negation, nested supports force equal or
// opposite circuits, and weak elimination holds for every e ∈ X⁺∩Y⁻
// of every pair with X ≠ -Y.
func (m *CircuitSystem[E]) Validate() error {
	for i, x := range m.elements {
		if x.IsZero() {
			return fmt.Errorf("%w: circuit %d is empty", ErrZeroPresent, i)
		}
		if !m.contains(x.Neg()) {
			return fmt.Errorf("%w: circuit %d (%s)", ErrNegationClosure, i, sigstr(x))
		}
		for j, y := range m.elements {
			if supportSubset(x, y) && !x.Equal(y) && !x.Equal(y.Neg()) {
				return fmt.Errorf("%w: circuits %d and %d", ErrSupportContainment, i, j)
			}
			if x.Equal(y.Neg()) {
				continue
			}
			if err := m.eliminate(i, j, x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// eliminate checks weak elimination for one ordered pair of circuits.
func (m *CircuitSystem[E]) eliminate(i, j int, x, y *signedset.SignedSubset[E]) error {
	xs := x.Signs()
	ys := y.Signs()
	labels := m.ground.Labels()
	for ei, e := range labels {
		if xs[ei] != signedset.Plus || ys[ei] != signedset.Minus {
			continue
		}
		if !m.hasCircuitWitness(ei, xs, ys) {
			return fmt.Errorf("%w: circuits %d and %d cannot eliminate %v",
				ErrElimination, i, j, e)
		}
	}
	return nil
}

// hasCircuitWitness scans for a z with z⁺ ⊆ (x⁺∪y⁺)\{e} and
// z⁻ ⊆ (x⁻∪y⁻)\{e}.
func (m *CircuitSystem[E]) hasCircuitWitness(ei int, xs, ys []signedset.Sign) bool {
candidates:
	for _, z := range m.elements {
		zs := z.Signs()
		for f := range zs {
			switch zs[f] {
			case signedset.Plus:
				if f == ei || (xs[f] != signedset.Plus && ys[f] != signedset.Plus) {
					continue candidates
				}
			case signedset.Minus:
				if f == ei || (xs[f] != signedset.Minus && ys[f] != signedset.Minus) {
					continue candidates
				}
			}
		}
		return true
	}
	return false
}
