// Package fft implements a multi-pass radix-2^k Number Theoretic Transform
// over a power-of-two multiplicative subgroup, decomposed into data-parallel
// group launches the way GPU transform kernels are, together with the coset
// and scaling utilities that surround it.
package fft

import (
	"math/big"

	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/lane"
	"github.com/sp301415/halogen/num"
)

// RadixPass performs one radix-2^deg pass of a transform of size tw.N(),
// reading src and writing dst. lgp is the number of bits already handled by
// earlier passes; passes must be issued in order, with src and dst swapped
// between them. lanes is the number of cooperating lanes per group and must
// be a power of two at most 2^(deg-1).
//
// Each group loads 2^deg strided elements pre-multiplied by incrementally
// computed powers of its twiddle factor into a shared scratch buffer, runs
// deg butterfly rounds against the PQ table with a barrier after each, and
// scatters the scratch bit-reversed with output stride 2^lgp.
//
// Direction is decided by the root the tables were built with; forward and
// inverse transforms run the exact same passes.
func RadixPass(src, dst []field.Element, tw *Twiddles, lgp, deg, lanes int) {
	n := tw.n
	logN := num.Log2(n)
	if len(src) != n || len(dst) != n {
		panic("buffer length does not match twiddle domain")
	}
	if deg < 1 || deg > tw.maxDeg || lgp < 0 || lgp+deg > logN {
		panic("invalid pass parameters")
	}
	if !num.IsPowerOfTwo(lanes) || lanes > 1<<(deg-1) {
		panic("lanes must be a power of two at most 2^(deg-1)")
	}

	t := n >> deg
	p := 1 << lgp
	count := 1 << deg
	counth := count >> 1
	per := count / lanes
	pqshift := tw.maxDeg - deg
	groups := n >> deg

	lane.Dispatch(groups, lanes,
		func() []field.Element { return make([]field.Element, count) },
		func(g, lid int, u []field.Element, b *lane.Barrier) {
			k := g & (p - 1)
			xbase := g
			ybase := ((g - k) << deg) + k

			counts := per * lid
			counte := counts + per

			twiddle := field.PowLookup(tw.Omegas, uint64((n>>lgp>>deg)*k))
			tmp := field.Pow(twiddle, uint64(counts))
			for i := counts; i < counte; i++ {
				u[i].Mul(&tmp, &src[xbase+i*t])
				tmp.Mul(&tmp, &twiddle)
			}
			b.Wait()

			for rnd := 0; rnd < deg; rnd++ {
				bit := counth >> rnd
				for i := counts >> 1; i < counte>>1; i++ {
					di := i & (bit - 1)
					i0 := (i << 1) - di
					i1 := i0 + bit

					u0 := u[i0]
					u[i0].Add(&u0, &u[i1])
					u[i1].Sub(&u0, &u[i1])
					if di != 0 {
						u[i1].Mul(&tw.PQ[di<<rnd<<pqshift], &u[i1])
					}
				}
				b.Wait()
			}

			for i := counts >> 1; i < counte>>1; i++ {
				dst[ybase+i*p] = u[num.BitReverse(i, deg)]
				dst[ybase+(i+counth)*p] = u[num.BitReverse(i+counth, deg)]
			}
		})
}

// Transformer computes forward and inverse transforms over the size-n
// multiplicative subgroup, chaining radix passes over an internal
// ping-pong buffer. Input and output are both in bit-natural order.
type Transformer struct {
	n      int
	maxDeg int

	// Lanes is the number of cooperating lanes per transform group,
	// clamped per pass to 2^(deg-1). Must be a power of two.
	Lanes int

	root    field.Element
	rootInv field.Element
	nInv    field.Element

	fwd *Twiddles
	inv *Twiddles

	buffer []field.Element
}

// NewTransformer creates a new Transformer with the given domain size and
// maximum single-pass radix exponent, searching for an n-th root of unity.
// Panics if n is not a power of two >= 2, maxDeg is not in [1, log2(n)],
// or the field has no primitive n-th root of unity.
func NewTransformer(n, maxDeg int) *Transformer {
	if !num.IsPowerOfTwo(n) || n < 2 {
		panic("n must be a power of two >= 2")
	}

	q := field.Modulus()
	qSubOne := big.NewInt(0).Sub(q, big.NewInt(1))
	if big.NewInt(0).Mod(qSubOne, big.NewInt(int64(n))).Sign() != 0 {
		panic("no nth root of unity")
	}

	exp := big.NewInt(0).Div(qSubOne, big.NewInt(int64(n)))
	expHalf := big.NewInt(int64(n / 2))
	g := big.NewInt(0)
	for x := big.NewInt(2); x.Cmp(q) < 0; x.Add(x, big.NewInt(1)) {
		g.Exp(x, exp, q)
		gPow := big.NewInt(0).Exp(g, expHalf, q)
		if gPow.Cmp(big.NewInt(1)) != 0 {
			break
		}
	}

	var root field.Element
	root.SetBigInt(g)

	return NewTransformerFromRoot(n, maxDeg, root)
}

// NewTransformerFromRoot creates a new Transformer from a given primitive
// n-th root of unity.
func NewTransformerFromRoot(n, maxDeg int, root field.Element) *Transformer {
	rootPowNHalf := field.Pow(root, uint64(n/2))
	rootPowN := field.Pow(root, uint64(n))
	if rootPowNHalf.IsOne() || !rootPowN.IsOne() {
		panic("root is not a primitive nth root of unity")
	}

	var rootInv field.Element
	rootInv.Inverse(&root)

	var nInv field.Element
	nInv.SetUint64(uint64(n))
	nInv.Inverse(&nInv)

	return &Transformer{
		n:      n,
		maxDeg: maxDeg,

		Lanes: 1,

		root:    root,
		rootInv: rootInv,
		nInv:    nInv,

		fwd: NewTwiddles(n, maxDeg, root),
		inv: NewTwiddles(n, maxDeg, rootInv),

		buffer: make([]field.Element, n),
	}
}

// ShallowCopy creates a shallow copy of the Transformer that is safe for
// concurrent use: twiddle tables are shared, the ping-pong buffer is not.
func (t *Transformer) ShallowCopy() *Transformer {
	return &Transformer{
		n:      t.n,
		maxDeg: t.maxDeg,

		Lanes: t.Lanes,

		root:    t.root,
		rootInv: t.rootInv,
		nInv:    t.nInv,

		fwd: t.fwd,
		inv: t.inv,

		buffer: make([]field.Element, t.n),
	}
}

// N returns the domain size.
func (t *Transformer) N() int {
	return t.n
}

// NthRoot returns the primitive n-th root of unity the domain is built on.
func (t *Transformer) NthRoot() field.Element {
	return t.root
}

// NTTInPlace computes the forward transform of v in-place.
func (t *Transformer) NTTInPlace(v []field.Element) {
	t.transformInPlace(v, t.fwd)
}

// INTTInPlace computes the inverse transform of v in-place,
// without normalization.
func (t *Transformer) INTTInPlace(v []field.Element) {
	t.transformInPlace(v, t.inv)
}

// NormalizeInPlace scales v by 1/n in-place.
func (t *Transformer) NormalizeInPlace(v []field.Element) {
	ScaleAssign(v, t.nInv)
}

// CosetNTTInPlace moves v onto the coset described by cosetPowers and
// computes the forward transform in-place.
func (t *Transformer) CosetNTTInPlace(v []field.Element, cosetPowers []field.Element) {
	DistributePowersAssign(v, cosetPowers)
	t.NTTInPlace(v)
}

// CosetINTTInPlace computes the normalized inverse transform of v in-place
// and moves it back off the coset using the inverse coset powers.
func (t *Transformer) CosetINTTInPlace(v []field.Element, cosetPowersInv []field.Element) {
	t.INTTInPlace(v)
	t.NormalizeInPlace(v)
	DistributePowersAssign(v, cosetPowersInv)
}

func (t *Transformer) transformInPlace(v []field.Element, tw *Twiddles) {
	if len(v) != t.n {
		panic("buffer length does not match domain size")
	}

	logN := num.Log2(t.n)
	src, dst := v, t.buffer
	for lgp := 0; lgp < logN; {
		deg := min(t.maxDeg, logN-lgp)
		lanes := min(t.Lanes, 1<<(deg-1))
		RadixPass(src, dst, tw, lgp, deg, lanes)
		src, dst = dst, src
		lgp += deg
	}

	if &src[0] != &v[0] {
		copy(v, src)
	}
}
