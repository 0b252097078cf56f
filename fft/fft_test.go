package fft_test

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sp301415/halogen/csprng"
	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/fft"
	"github.com/sp301415/halogen/num"
	"github.com/stretchr/testify/assert"
)

// naiveDFT computes vOut[k] = sum_j v[j]·root^(jk) with big.Int modular
// arithmetic, as an independent reference.
func naiveDFT(v []field.Element, root field.Element) []field.Element {
	q := field.Modulus()
	n := len(v)

	coeffs := make([]*big.Int, n)
	for i := range v {
		coeffs[i] = v[i].BigInt(big.NewInt(0))
	}
	rootBig := root.BigInt(big.NewInt(0))

	vOut := make([]field.Element, n)
	mul := big.NewInt(0)
	for k := 0; k < n; k++ {
		wk := big.NewInt(0).Exp(rootBig, big.NewInt(int64(k)), q)
		wjk := big.NewInt(1)
		acc := big.NewInt(0)
		for j := 0; j < n; j++ {
			mul.Mul(coeffs[j], wjk)
			acc.Add(acc, mul)
			acc.Mod(acc, q)
			wjk.Mul(wjk, wk)
			wjk.Mod(wjk, q)
		}
		vOut[k].SetBigInt(acc)
	}
	return vOut
}

func sampleSlice(seed int64, n int) []field.Element {
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], uint64(seed))
	s := csprng.NewUniformSamplerWithSeed(seedBytes[:])

	v := make([]field.Element, n)
	s.SampleSliceAssign(v)
	return v
}

func TestNTT(t *testing.T) {
	t.Run("MatchesReference", func(t *testing.T) {
		s := csprng.NewStreamSampler()
		for _, n := range []int{2, 4, 8, 16, 32} {
			for maxDeg := 1; maxDeg <= num.Log2(n); maxDeg++ {
				tr := fft.NewTransformer(n, maxDeg)

				v := make([]field.Element, n)
				s.SampleSliceAssign(v)

				want := naiveDFT(v, tr.NthRoot())

				got := make([]field.Element, n)
				copy(got, v)
				tr.NTTInPlace(got)

				assert.Equal(t, want, got, "n=%d maxDeg=%d", n, maxDeg)
			}
		}
	})

	t.Run("MatchesReferenceMultiLane", func(t *testing.T) {
		s := csprng.NewStreamSampler()

		tr := fft.NewTransformer(32, 4)
		tr.Lanes = 4

		v := make([]field.Element, 32)
		s.SampleSliceAssign(v)

		want := naiveDFT(v, tr.NthRoot())

		got := make([]field.Element, 32)
		copy(got, v)
		tr.NTTInPlace(got)

		assert.Equal(t, want, got)
	})

	t.Run("MultiPassEquivalence", func(t *testing.T) {
		const n = 64

		s := csprng.NewStreamSampler()
		v := make([]field.Element, n)
		s.SampleSliceAssign(v)

		single := fft.NewTransformer(n, num.Log2(n))
		root := single.NthRoot()

		want := make([]field.Element, n)
		copy(want, v)
		single.NTTInPlace(want)

		for _, maxDeg := range []int{1, 2, 4, 5} {
			chained := fft.NewTransformerFromRoot(n, maxDeg, root)

			got := make([]field.Element, n)
			copy(got, v)
			chained.NTTInPlace(got)

			assert.Equal(t, want, got, "maxDeg=%d", maxDeg)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 20
		properties := gopter.NewProperties(parameters)

		tr := fft.NewTransformer(256, 4)

		properties.Property("INTT(NTT(v))/n == v", prop.ForAll(
			func(seed int64) bool {
				v := sampleSlice(seed, tr.N())

				w := make([]field.Element, tr.N())
				copy(w, v)

				tr.NTTInPlace(w)
				tr.INTTInPlace(w)
				tr.NormalizeInPlace(w)

				for i := range v {
					if !v[i].Equal(&w[i]) {
						return false
					}
				}
				return true
			},
			gen.Int64(),
		))

		properties.TestingRun(t)
	})

	t.Run("InvalidDomain", func(t *testing.T) {
		assert.Panics(t, func() { fft.NewTransformer(24, 2) })
		assert.Panics(t, func() { fft.NewTransformer(16, 5) })

		tr := fft.NewTransformer(16, 2)
		assert.Panics(t, func() { tr.NTTInPlace(make([]field.Element, 8)) })
	})
}

func TestCoset(t *testing.T) {
	const n = 32

	s := csprng.NewStreamSampler()

	t.Run("PowersAssign", func(t *testing.T) {
		g := s.Sample()

		v := make([]field.Element, n)
		fft.PowersAssign(g, v)

		acc := field.One()
		for i := range v {
			assert.True(t, acc.Equal(&v[i]))
			acc.Mul(&acc, &g)
		}
	})

	t.Run("ScaleAssign", func(t *testing.T) {
		c := s.Sample()
		v := make([]field.Element, n)
		s.SampleSliceAssign(v)

		w := make([]field.Element, n)
		copy(w, v)
		fft.ScaleAssign(w, c)

		for i := range v {
			var want field.Element
			want.Mul(&v[i], &c)
			assert.True(t, want.Equal(&w[i]))
		}
	})

	t.Run("DistributePowers", func(t *testing.T) {
		powers := make([]field.Element, 2)
		s.SampleSliceAssign(powers)

		v := make([]field.Element, n)
		s.SampleSliceAssign(v)

		w := make([]field.Element, n)
		copy(w, v)
		fft.DistributePowersAssign(w, powers)

		for i := range v {
			want := v[i]
			if i%3 != 0 {
				want.Mul(&want, &powers[i%3-1])
			}
			assert.True(t, want.Equal(&w[i]), "i=%d", i)
		}
	})

	t.Run("PadAssign", func(t *testing.T) {
		src := make([]field.Element, 5)
		s.SampleSliceAssign(src)

		dst := make([]field.Element, n)
		s.SampleSliceAssign(dst)
		fft.PadAssign(src, dst)

		for i := range dst {
			if i < len(src) {
				assert.True(t, src[i].Equal(&dst[i]))
			} else {
				assert.True(t, dst[i].IsZero())
			}
		}

		assert.Panics(t, func() { fft.PadAssign(dst, src) })
	})

	t.Run("CosetRoundTrip", func(t *testing.T) {
		tr := fft.NewTransformer(n, 3)

		g := s.Sample()
		var gInv field.Element
		gInv.Inverse(&g)

		powers := make([]field.Element, n)
		fft.PowersAssign(g, powers)
		powersInv := make([]field.Element, n)
		fft.PowersAssign(gInv, powersInv)

		v := make([]field.Element, n)
		s.SampleSliceAssign(v)

		w := make([]field.Element, n)
		copy(w, v)
		tr.CosetNTTInPlace(w, powers[1:])
		tr.CosetINTTInPlace(w, powersInv[1:])

		for i := range v {
			assert.True(t, v[i].Equal(&w[i]))
		}
	})
}

func TestTwiddleCache(t *testing.T) {
	cache := fft.NewCache()

	tr := fft.NewTransformer(16, 2)
	root := tr.NthRoot()
	var rootInv field.Element
	rootInv.Inverse(&root)

	tw0 := cache.Twiddles(16, 2, root)
	tw1 := cache.Twiddles(16, 2, root)
	assert.Same(t, tw0, tw1)

	tw2 := cache.Twiddles(16, 2, rootInv)
	assert.NotSame(t, tw0, tw2)

	tw3 := cache.Twiddles(16, 4, root)
	assert.NotSame(t, tw0, tw3)
}
