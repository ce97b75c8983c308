package matroid

import (
	"fmt"

	"github.com/fchapoton/oriented-matroids/signedset"
)

// topeser is satisfied by system kinds that can enumerate topes, which
// today means kinds with a face-poset construction.
type topeser[E comparable] interface {
	Topes() ([]*signedset.SignedSubset[E], error)
}

// Topes returns the topes of the system, failing with ErrNoFaceLattice
// for kinds that have no face-order construction.
func Topes[E comparable](sys System[E]) ([]*signedset.SignedSubset[E], error) {
	t, ok := sys.(topeser[E])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoFaceLattice, sys.Kind())
	}
	return t.Topes()
}

// Deletion removes the change set from the ground set and restricts
// every element to the remaining labels.
func Deletion[E comparable](sys System[E], changeSet ...E) (System[E], error) {
	labels, keep, err := splitGround(sys, changeSet)
	if err != nil {
		return nil, err
	}
	var data []signedset.Encoding[E]
	for _, x := range sys.Elements() {
		data = append(data, restrictedSets(x, keep))
	}
	return New(sys.Kind(), data, labels)
}

// Restriction removes the change set from the ground set and keeps
// only the elements that are zero everywhere on it, restricted to the
// remaining labels.
func Restriction[E comparable](sys System[E], changeSet ...E) (System[E], error) {
	labels, keep, err := splitGround(sys, changeSet)
	if err != nil {
		return nil, err
	}
	var data []signedset.Encoding[E]
	for _, x := range sys.Elements() {
		zeroOnSet := true
		for _, e := range changeSet {
			if s, err := x.Sign(e); err != nil || s != signedset.Zero {
				zeroOnSet = false
				break
			}
		}
		if zeroOnSet {
			data = append(data, restrictedSets(x, keep))
		}
	}
	return New(sys.Kind(), data, labels)
}

// splitGround validates the change set and returns the surviving
// labels in ground order plus a membership set for them.
func splitGround[E comparable](sys System[E], changeSet []E) ([]E, map[E]struct{}, error) {
	ground := sys.GroundSet()
	drop := make(map[E]struct{}, len(changeSet))
	for _, e := range changeSet {
		if !ground.Contains(e) {
			return nil, nil, fmt.Errorf("%w: %v", signedset.ErrNotInGroundSet, e)
		}
		drop[e] = struct{}{}
	}
	var labels []E
	keep := make(map[E]struct{})
	for _, e := range ground.Labels() {
		if _, gone := drop[e]; !gone {
			labels = append(labels, e)
			keep[e] = struct{}{}
		}
	}
	return labels, keep, nil
}

// restrictedSets re-encodes an element with everything outside keep
// dropped from all three parts.
func restrictedSets[E comparable](x *signedset.SignedSubset[E], keep map[E]struct{}) signedset.Sets[E] {
	filter := func(labels []E) []E {
		out := []E{}
		for _, e := range labels {
			if _, ok := keep[e]; ok {
				out = append(out, e)
			}
		}
		return out
	}
	return signedset.Sets[E]{
		Positives: filter(x.Positives()),
		Negatives: filter(x.Negatives()),
		Zeroes:    filter(x.Zeroes()),
	}
}

// Loops returns the labels that are zero in every tope. If one tope is
// zero at a label, all of them are.
func Loops[E comparable](sys System[E]) ([]E, error) {
	topes, err := Topes(sys)
	if err != nil {
		return nil, err
	}
	if len(topes) == 0 {
		return nil, nil
	}
	return topes[0].Zeroes(), nil
}

// AreParallel reports whether f vanishes wherever the non-loop label e
// does, across every element of the system.
func AreParallel[E comparable](sys System[E], e, f E) (bool, error) {
	loops, err := Loops(sys)
	if err != nil {
		return false, err
	}
	isLoop := make(map[E]struct{}, len(loops))
	for _, l := range loops {
		isLoop[l] = struct{}{}
	}
	for _, label := range []E{e, f} {
		if !sys.GroundSet().Contains(label) {
			return false, fmt.Errorf("%w: %v", signedset.ErrNotInGroundSet, label)
		}
		if _, loop := isLoop[label]; loop {
			return false, fmt.Errorf("parallel labels must not be loops: %v", label)
		}
	}
	for _, x := range sys.Elements() {
		se, err := x.Sign(e)
		if err != nil {
			return false, err
		}
		sf, err := x.Sign(f)
		if err != nil {
			return false, err
		}
		if se == signedset.Zero && sf != signedset.Zero {
			return false, nil
		}
	}
	return true, nil
}

// IsSimple reports whether the system has no loops and no parallel
// pair of labels.
func IsSimple[E comparable](sys System[E]) (bool, error) {
	loops, err := Loops(sys)
	if err != nil {
		return false, err
	}
	if len(loops) > 0 {
		return false, nil
	}
	labels := sys.GroundSet().Labels()
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			parallel, err := AreParallel(sys, labels[i], labels[j])
			if err != nil {
				return false, err
			}
			if parallel {
				return false, nil
			}
		}
	}
	return true, nil
}
