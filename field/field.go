// Package field exposes the arithmetic primitives used by every kernel of
// the engine: identities, exponentiation, comparison, and representation
// conversion over the bn254 scalar field.
//
// The engine is instantiated once per field, mirroring the per-curve
// package layout of gnark-crypto; swapping the field means swapping the
// fr import, not introducing runtime polymorphism.
package field

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/sp301415/halogen/lane"
)

// Element is a field element in Montgomery representation.
type Element = fr.Element

// Bytes is the size of the canonical byte representation of an Element.
const Bytes = fr.Bytes

// Zero returns the additive identity.
func Zero() Element {
	var z Element
	return z
}

// One returns the multiplicative identity.
func One() Element {
	return fr.One()
}

// Modulus returns the field modulus.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Pow returns base^exp by square-and-multiply.
func Pow(base Element, exp uint64) Element {
	res := One()
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			res.Mul(&res, &base)
		}
		base.Square(&base)
	}
	return res
}

// PowLookup returns omega^exp given the table omegas[i] = omega^(2^i).
// Panics if exp has set bits beyond the table size.
func PowLookup(omegas []Element, exp uint64) Element {
	res := One()
	for i := 0; exp > 0; i, exp = i+1, exp>>1 {
		if exp&1 == 1 {
			res.Mul(&res, &omegas[i])
		}
	}
	return res
}

// BatchInvert inverts every element of v in a single inversion plus
// O(len(v)) multiplications, returning a fresh slice.
// Zero elements stay zero.
func BatchInvert(v []Element) []Element {
	return fr.BatchInvert(v)
}

// Gte returns a >= b, comparing canonical representatives.
func Gte(a, b Element) bool {
	return a.Cmp(&b) >= 0
}

// ToMontAssign re-encodes every element of v in place, interpreting its
// limbs as a standard-representation integer. Elements crossing into the
// engine from standard form must pass through here before any kernel
// touches them.
func ToMontAssign(v []Element) {
	lane.Execute(len(v), func(start, end int) {
		var b big.Int
		var buf [Bytes]byte
		for i := start; i < end; i++ {
			binary.BigEndian.PutUint64(buf[0:8], v[i][3])
			binary.BigEndian.PutUint64(buf[8:16], v[i][2])
			binary.BigEndian.PutUint64(buf[16:24], v[i][1])
			binary.BigEndian.PutUint64(buf[24:32], v[i][0])
			b.SetBytes(buf[:])
			v[i].SetBigInt(&b)
		}
	})
}

// FromMontAssign decodes every element of v in place, leaving its limbs
// holding the standard-representation integer.
func FromMontAssign(v []Element) {
	lane.Execute(len(v), func(start, end int) {
		var b big.Int
		var buf [Bytes]byte
		for i := start; i < end; i++ {
			v[i].BigInt(&b)
			b.FillBytes(buf[:])
			v[i][3] = binary.BigEndian.Uint64(buf[0:8])
			v[i][2] = binary.BigEndian.Uint64(buf[8:16])
			v[i][1] = binary.BigEndian.Uint64(buf[16:24])
			v[i][0] = binary.BigEndian.Uint64(buf[24:32])
		}
	})
}
