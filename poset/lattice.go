package poset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotLattice indicates a poset where some pair of elements has no
// unique least upper bound or greatest lower bound.
var ErrNotLattice = errors.New("poset is not a lattice")

// Lattice is a finite poset in which every pair of elements has a join
// and a meet.
type Lattice struct {
	*Poset
	join [][]int
	meet [][]int
}

// NewLattice checks that the poset is a lattice and precomputes its
// join and meet tables.
func NewLattice(p *Poset) (*Lattice, error) {
	n := p.Len()
	l := &Lattice{
		Poset: p,
		join:  make([][]int, n),
		meet:  make([][]int, n),
	}
	for i := 0; i < n; i++ {
		l.join[i] = make([]int, n)
		l.meet[i] = make([]int, n)
		for j := 0; j < n; j++ {
			v, err := bound(p, i, j, true)
			if err != nil {
				return nil, err
			}
			l.join[i][j] = v
			v, err = bound(p, i, j, false)
			if err != nil {
				return nil, err
			}
			l.meet[i][j] = v
		}
	}
	return l, nil
}

// bound finds the least upper bound (upper) or greatest lower bound of
// a and b.
func bound(p *Poset, a, b int, upper bool) (int, error) {
	leq := p.Leq
	var candidates []int
	for z := 0; z < p.Len(); z++ {
		if upper && leq(a, z) && leq(b, z) {
			candidates = append(candidates, z)
		}
		if !upper && leq(z, a) && leq(z, b) {
			candidates = append(candidates, z)
		}
	}
	for _, z := range candidates {
		extreme := true
		for _, w := range candidates {
			if upper && !leq(z, w) || !upper && !leq(w, z) {
				extreme = false
				break
			}
		}
		if extreme {
			return z, nil
		}
	}
	kind := "join"
	if !upper {
		kind = "meet"
	}
	return 0, fmt.Errorf("%w: elements %d and %d have no %s", ErrNotLattice, a, b, kind)
}

// Join returns the least upper bound of a and b.
func (l *Lattice) Join(a, b int) int {
	return l.join[a][b]
}

// Meet returns the greatest lower bound of a and b.
func (l *Lattice) Meet(a, b int) int {
	return l.meet[a][b]
}

// Sublattice returns the smallest sublattice containing the given
// elements, as a fresh Lattice plus the original index of each of its
// elements.
func (l *Lattice) Sublattice(elements []int) (*Lattice, []int, error) {
	in := make(map[int]struct{}, len(elements))
	for _, e := range elements {
		if e < 0 || e >= l.Len() {
			return nil, nil, fmt.Errorf("%w: (%d, %d) with %d elements", ErrBadRelation, e, e, l.Len())
		}
		in[e] = struct{}{}
	}
	// Close under join and meet.
	for {
		added := false
		members := keys(in)
		for _, a := range members {
			for _, b := range members {
				for _, c := range []int{l.join[a][b], l.meet[a][b]} {
					if _, ok := in[c]; !ok {
						in[c] = struct{}{}
						added = true
					}
				}
			}
		}
		if !added {
			break
		}
	}
	members := keys(in)
	sort.Ints(members)
	index := make(map[int]int, len(members))
	for i, e := range members {
		index[e] = i
	}
	var rels [][2]int
	for _, a := range members {
		for _, b := range members {
			if a != b && l.Leq(a, b) {
				rels = append(rels, [2]int{index[a], index[b]})
			}
		}
	}
	sub, err := New(len(members), rels)
	if err != nil {
		return nil, nil, err
	}
	lat, err := NewLattice(sub)
	if err != nil {
		return nil, nil, err
	}
	return lat, members, nil
}

// Breadth returns the breadth of the lattice: the largest k for which
// some k elements have a join strictly above the join of every proper
// subset. A lattice of breadth k contains a sublattice isomorphic to
// the boolean lattice on 2^k elements.
func (l *Lattice) Breadth() int {
	n := l.Len()
	if n <= 1 {
		return 0
	}
	best := 1
	// A witness family of size k forces at least 2^k elements, so k
	// never exceeds log2(n).
	maxK := 1
	for 1<<(maxK+1) <= n {
		maxK++
	}
	family := make([]int, 0, maxK)
	var search func(start, k int) bool
	search = func(start, k int) bool {
		if len(family) == k {
			return irredundant(l, family)
		}
		for e := start; e < n; e++ {
			family = append(family, e)
			if search(e+1, k) {
				family = family[:len(family)-1]
				return true
			}
			family = family[:len(family)-1]
		}
		return false
	}
	for k := 2; k <= maxK; k++ {
		if search(0, k) {
			best = k
		}
	}
	return best
}

// irredundant reports whether the join of the family strictly exceeds
// the join of every subfamily missing one element.
func irredundant(l *Lattice, family []int) bool {
	total := family[0]
	for _, e := range family[1:] {
		total = l.join[total][e]
	}
	for skip := range family {
		partial := -1
		for i, e := range family {
			if i == skip {
				continue
			}
			if partial < 0 {
				partial = e
			} else {
				partial = l.join[partial][e]
			}
		}
		if partial == total {
			return false
		}
	}
	return true
}

func keys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}
