// Package matroid implements oriented matroids presented through their
// signed-subset axiom systems.
//
// An oriented matroid is a pair (E, C) of a ground set and a collection
// of signed subsets of E. The collection is handed in at construction
// and never changes; whether it actually satisfies the axioms of its
// kind (covector, vector or circuit) is a derived property checked by
// Validate, which scans all pairs and triples exhaustively and reports
// the first violated axiom together with the offending witnesses.
//
// Covector systems additionally expose the big face poset and face
// lattice, built from pairwise conformality and support containment and
// materialized through the poset package.
package matroid
