// Package signedset implements signed subsets of a finite ground set.
//
// A signed subset partitions a ground set E into positives, negatives and
// zeroes, assigning every element exactly one sign. Signed subsets are the
// raw material of oriented-matroid theory: covectors, vectors and circuits
// are all signed subsets whose collections satisfy different axiom systems.
//
// Values are immutable after construction. Every algebra operation
// (composition, negation, reorientation) returns a fresh instance, so
// signed subsets can be shared freely across goroutines.
package signedset
