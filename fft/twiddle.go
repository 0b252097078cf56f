package fft

import (
	"sync"

	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/num"
)

// Twiddles holds the two read-only tables a radix pass chain needs:
// Omegas[i] = root^(2^i), one entry per transform stage, and
// PQ[i] = w^i for w the 2^maxDeg-th root of unity below root,
// indexed by the butterfly rounds of a single pass.
// Tables are built once per (n, maxDeg, root) and shared by every pass
// and every concurrent transform over the same domain.
type Twiddles struct {
	n      int
	maxDeg int

	Omegas []field.Element
	PQ     []field.Element
}

// NewTwiddles creates twiddle tables for transforms of size n with
// single-pass radix up to 2^maxDeg, around the n-th root of unity root.
// Panics if n is not a power of two >= 2, or maxDeg is not in [1, log2(n)].
func NewTwiddles(n, maxDeg int, root field.Element) *Twiddles {
	if !num.IsPowerOfTwo(n) || n < 2 {
		panic("n must be a power of two >= 2")
	}
	logN := num.Log2(n)
	if maxDeg < 1 || maxDeg > logN {
		panic("maxDeg must be in [1, log2(n)]")
	}

	omegas := make([]field.Element, logN)
	omegas[0] = root
	for i := 1; i < logN; i++ {
		omegas[i].Square(&omegas[i-1])
	}

	pq := make([]field.Element, 1<<(maxDeg-1))
	pq[0] = field.One()
	if maxDeg > 1 {
		tw := field.Pow(root, uint64(n>>maxDeg))
		for i := 1; i < len(pq); i++ {
			pq[i].Mul(&pq[i-1], &tw)
		}
	}

	return &Twiddles{
		n:      n,
		maxDeg: maxDeg,

		Omegas: omegas,
		PQ:     pq,
	}
}

// N returns the transform size the tables were built for.
func (tw *Twiddles) N() int {
	return tw.n
}

// MaxDeg returns the largest single-pass radix exponent the tables support.
func (tw *Twiddles) MaxDeg() int {
	return tw.maxDeg
}

type twiddleKey struct {
	n      int
	maxDeg int
	root   field.Element
}

// Cache memoizes twiddle tables by (n, maxDeg, root).
// It is owned by the caller rather than being process-global, so multiple
// domains can coexist without hidden shared state.
// Safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	tables map[twiddleKey]*Twiddles
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		tables: make(map[twiddleKey]*Twiddles),
	}
}

// Twiddles returns the cached tables for (n, maxDeg, root),
// building them on first use.
func (c *Cache) Twiddles(n, maxDeg int, root field.Element) *Twiddles {
	key := twiddleKey{n: n, maxDeg: maxDeg, root: root}

	c.mu.Lock()
	defer c.mu.Unlock()

	if tw, ok := c.tables[key]; ok {
		return tw
	}
	tw := NewTwiddles(n, maxDeg, root)
	c.tables[key] = tw
	return tw
}
