// Package poset implements finite partially ordered sets and lattices
// over integer element indices.
//
// A Poset is built from a generating relation; the constructor takes the
// reflexive-transitive closure and rejects generators that would violate
// antisymmetry. Callers keep their own element list and address elements
// by index, which keeps the package independent of any element type.
//
// Lattice layers join and meet tables on top of a poset and adds the
// order-theoretic queries the oriented-matroid layer needs: intervals,
// sublattices and breadth.
package poset
