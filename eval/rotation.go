// Package eval implements the elementwise, rotation-indexed kernels that
// accumulate custom-gate, permutation-argument and lookup-argument
// constraint terms into a running quotient-value buffer.
//
// An operand read with rotation rot resolves to position
// (i + size + rot) mod size, so identities referencing shifted evaluation
// points (X, wX, w^-1 X) become cyclic reads. All kernels are pure except
// for their output buffer, and none validates buffer lengths: matching
// lengths and rot >= -size are caller contracts.
//
// The output buffer may alias an operand read at rotation zero, where every
// write lands on an index already consumed. An operand read at a nonzero
// rotation must be a distinct buffer: its wrapped reads reach indices the
// output has already overwritten.
package eval

import (
	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/lane"
)

// SumRotatedAssign assigns vOut[i] = v0[i+rot0] + v1[i+rot1],
// with rotated cyclic indexing.
func SumRotatedAssign(v0, v1 []field.Element, rot0, rot1 int, vOut []field.Element) {
	size := len(vOut)
	lane.Execute(size, func(start, end int) {
		for i := start; i < end; i++ {
			i0 := (i + size + rot0) % size
			i1 := (i + size + rot1) % size
			vOut[i].Add(&v0[i0], &v1[i1])
		}
	})
}

// MulRotatedAssign assigns vOut[i] = v0[i+rot0] * v1[i+rot1],
// with rotated cyclic indexing.
func MulRotatedAssign(v0, v1 []field.Element, rot0, rot1 int, vOut []field.Element) {
	size := len(vOut)
	lane.Execute(size, func(start, end int) {
		for i := start; i < end; i++ {
			i0 := (i + size + rot0) % size
			i1 := (i + size + rot1) % size
			vOut[i].Mul(&v0[i0], &v1[i1])
		}
	})
}

// ScaleRotatedAssign assigns vOut[i] = v[i+rot] * c,
// with rotated cyclic indexing.
func ScaleRotatedAssign(v []field.Element, c field.Element, rot int, vOut []field.Element) {
	size := len(vOut)
	lane.Execute(size, func(start, end int) {
		for i := start; i < end; i++ {
			vOut[i].Mul(&v[(i+size+rot)%size], &c)
		}
	})
}

// WeightedSumAssign assigns vOut[i] = sum_j vs[j][i+rots[j]] * cs[j],
// with rotated cyclic indexing. At least one term is required.
func WeightedSumAssign(vs [][]field.Element, rots []int, cs []field.Element, vOut []field.Element) {
	if len(vs) == 0 || len(vs) != len(rots) || len(vs) != len(cs) {
		panic("weighted sum requires matching, non-empty term vectors")
	}

	size := len(vOut)
	lane.Execute(size, func(start, end int) {
		var acc, term field.Element
		for i := start; i < end; i++ {
			acc.Mul(&vs[0][(i+size+rots[0])%size], &cs[0])
			for j := 1; j < len(vs); j++ {
				term.Mul(&vs[j][(i+size+rots[j])%size], &cs[j])
				acc.Add(&acc, &term)
			}
			vOut[i] = acc
		}
	})
}

// ScaleAddRotatedAssign assigns vOut[i] = v0[i+rot0] * c + v1[i+rot1],
// with rotated cyclic indexing. This is the scale-then-add shape used for
// theta-weighted lookup compression and beta/gamma shifts.
func ScaleAddRotatedAssign(v0 []field.Element, c field.Element, v1 []field.Element, rot0, rot1 int, vOut []field.Element) {
	size := len(vOut)
	lane.Execute(size, func(start, end int) {
		var acc field.Element
		for i := start; i < end; i++ {
			i0 := (i + size + rot0) % size
			i1 := (i + size + rot1) % size
			acc.Mul(&v0[i0], &c)
			acc.Add(&acc, &v1[i1])
			vOut[i] = acc
		}
	})
}

// CopyRotatedAssign assigns vOut[i] = v[i+rot], with rotated cyclic
// indexing, materializing a rotated operand as its own buffer.
func CopyRotatedAssign(v []field.Element, rot int, vOut []field.Element) {
	size := len(vOut)
	lane.Execute(size, func(start, end int) {
		for i := start; i < end; i++ {
			vOut[i] = v[(i+size+rot)%size]
		}
	})
}

// BroadcastAssign assigns vOut[i] = c.
func BroadcastAssign(c field.Element, vOut []field.Element) {
	lane.Execute(len(vOut), func(start, end int) {
		for i := start; i < end; i++ {
			vOut[i] = c
		}
	})
}
