package poset

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRelation indicates a generator referencing an element index
	// outside [0, n).
	ErrBadRelation = errors.New("relation references unknown element")

	// ErrNotAntisymmetric indicates generators whose closure relates
	// two distinct elements in both directions.
	ErrNotAntisymmetric = errors.New("relation is not antisymmetric")
)

// Poset is a finite partial order on the element indices 0..n-1.
type Poset struct {
	n   int
	leq [][]bool
}

// New builds a poset from a generating relation. Each pair (a, b) means
// a ≤ b; the constructor adds reflexivity and transitivity itself.
func New(n int, relations [][2]int) (*Poset, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative element count %d", n)
	}
	leq := make([][]bool, n)
	for i := range leq {
		leq[i] = make([]bool, n)
		leq[i][i] = true
	}
	for _, r := range relations {
		a, b := r[0], r[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("%w: (%d, %d) with %d elements", ErrBadRelation, a, b, n)
		}
		leq[a][b] = true
	}
	// Warshall closure.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !leq[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if leq[k][j] {
					leq[i][j] = true
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if leq[i][j] && leq[j][i] {
				return nil, fmt.Errorf("%w: %d and %d", ErrNotAntisymmetric, i, j)
			}
		}
	}
	return &Poset{n: n, leq: leq}, nil
}

// Len returns the number of elements.
func (p *Poset) Len() int {
	return p.n
}

// Leq reports whether element a is below or equal to element b.
func (p *Poset) Leq(a, b int) bool {
	return p.leq[a][b]
}

// Bottom returns the unique minimum element, if one exists.
func (p *Poset) Bottom() (int, bool) {
	for i := 0; i < p.n; i++ {
		below := true
		for j := 0; j < p.n; j++ {
			if !p.leq[i][j] {
				below = false
				break
			}
		}
		if below {
			return i, true
		}
	}
	return 0, false
}

// Top returns the unique maximum element, if one exists.
func (p *Poset) Top() (int, bool) {
	for i := 0; i < p.n; i++ {
		above := true
		for j := 0; j < p.n; j++ {
			if !p.leq[j][i] {
				above = false
				break
			}
		}
		if above {
			return i, true
		}
	}
	return 0, false
}

// MinimalElements returns the elements with nothing strictly below them.
func (p *Poset) MinimalElements() []int {
	var out []int
	for i := 0; i < p.n; i++ {
		minimal := true
		for j := 0; j < p.n; j++ {
			if j != i && p.leq[j][i] {
				minimal = false
				break
			}
		}
		if minimal {
			out = append(out, i)
		}
	}
	return out
}

// MaximalElements returns the elements with nothing strictly above them.
func (p *Poset) MaximalElements() []int {
	var out []int
	for i := 0; i < p.n; i++ {
		maximal := true
		for j := 0; j < p.n; j++ {
			if j != i && p.leq[i][j] {
				maximal = false
				break
			}
		}
		if maximal {
			out = append(out, i)
		}
	}
	return out
}

// Interval returns every element z with a ≤ z ≤ b, in index order.
// An empty slice means a is not below b.
func (p *Poset) Interval(a, b int) []int {
	var out []int
	for z := 0; z < p.n; z++ {
		if p.leq[a][z] && p.leq[z][b] {
			out = append(out, z)
		}
	}
	return out
}

// CoverRelations returns the pairs (a, b) where b covers a: a < b with
// no element strictly between.
func (p *Poset) CoverRelations() [][2]int {
	var out [][2]int
	for a := 0; a < p.n; a++ {
		for b := 0; b < p.n; b++ {
			if a == b || !p.leq[a][b] {
				continue
			}
			cover := true
			for z := 0; z < p.n; z++ {
				if z != a && z != b && p.leq[a][z] && p.leq[z][b] {
					cover = false
					break
				}
			}
			if cover {
				out = append(out, [2]int{a, b})
			}
		}
	}
	return out
}

// Height returns the number of elements in a longest chain.
func (p *Poset) Height() int {
	memo := make([]int, p.n)
	var longest func(i int) int
	longest = func(i int) int {
		if memo[i] != 0 {
			return memo[i]
		}
		best := 1
		for j := 0; j < p.n; j++ {
			if j != i && p.leq[i][j] {
				if h := longest(j) + 1; h > best {
					best = h
				}
			}
		}
		memo[i] = best
		return best
	}
	best := 0
	for i := 0; i < p.n; i++ {
		if h := longest(i); h > best {
			best = h
		}
	}
	return best
}
