package fft

import (
	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/lane"
)

// ScaleAssign multiplies every element of v by c in place.
func ScaleAssign(v []field.Element, c field.Element) {
	lane.Execute(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			v[i].Mul(&v[i], &c)
		}
	})
}

// DistributePowersAssign multiplies the element at index i by
// powers[(i mod m) - 1], where m = len(powers) + 1, leaving elements whose
// index is a multiple of m untouched. This shifts a polynomial onto a coset
// without recomputing a transform.
func DistributePowersAssign(v []field.Element, powers []field.Element) {
	m := len(powers) + 1
	lane.Execute(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			if r := i % m; r != 0 {
				v[i].Mul(&v[i], &powers[r-1])
			}
		}
	})
}

// PowersAssign fills v with successive powers of base: v[i] = base^i.
func PowersAssign(base field.Element, v []field.Element) {
	lane.Execute(len(v), func(start, end int) {
		acc := field.Pow(base, uint64(start))
		for i := start; i < end; i++ {
			v[i] = acc
			acc.Mul(&acc, &base)
		}
	})
}

// PadAssign copies src into the low indices of dst and fills the remainder
// with zero. Panics if dst is smaller than src.
func PadAssign(src, dst []field.Element) {
	if len(dst) < len(src) {
		panic("destination smaller than source")
	}

	lane.Execute(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			if i < len(src) {
				dst[i] = src[i]
			} else {
				dst[i] = field.Zero()
			}
		}
	})
}
