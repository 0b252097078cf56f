package eval

import (
	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/lane"
)

// The lookup grand-product column needs one quotient
// (in+β)(tab+γ) / (a'+β)(s'+γ) per row, which would cost one modular
// inversion each. The kernels below batch them: a forward pass per segment
// accumulates running products, a single inversion of each segment total
// happens between the passes (InvertTotals), and a backward pass
// back-substitutes every per-row inverse out of that one inverted total.

// ProductForwardAssign runs the forward pass over permIn/permTab, logically
// divided into slotLen-sized segments (the last one truncated). Within each
// segment it overwrites permIn[i] with the exclusive running product and
// permTab[i] with the per-row factor (permIn[i]+β)(permTab[i]+γ), and
// returns the segment's total product.
//
// The returned totals must be inverted before calling
// ProductBackwardAssign; this sequencing point is a hard contract, not an
// implementation detail.
func ProductForwardAssign(permIn, permTab []field.Element, beta, gamma field.Element, slotLen int) []field.Element {
	if len(permIn) != len(permTab) {
		panic("column length mismatch")
	}
	if slotLen <= 0 {
		panic("slotLen must be positive")
	}

	segments := (len(permIn) + slotLen - 1) / slotLen
	totals := make([]field.Element, segments)

	lane.Execute(segments, func(start, end int) {
		var f, g field.Element
		for seg := start; seg < end; seg++ {
			lo := seg * slotLen
			hi := min(lo+slotLen, len(permIn))

			t3 := field.One()
			for i := lo; i < hi; i++ {
				f.Add(&permIn[i], &beta)
				g.Add(&permTab[i], &gamma)
				f.Mul(&f, &g)

				permIn[i] = t3
				permTab[i] = f
				t3.Mul(&t3, &f)
			}
			totals[seg] = t3
		}
	})

	return totals
}

// InvertTotals inverts the segment totals in one batched pass. This is the
// only modular inversion in the whole lookup product construction.
func InvertTotals(totals []field.Element) []field.Element {
	return field.BatchInvert(totals)
}

// ProductBackwardAssign runs the backward pass: combining the forward
// running products left in permIn/permTab with the inverted segment totals
// and the unpermuted compressed columns, it reconstructs
//
//	permIn[i] = (compressedIn[i]+β)(compressedTab[i]+γ) · ((a'[i]+β)(s'[i]+γ))⁻¹
//
// for every row, without any further inversion.
func ProductBackwardAssign(permIn, permTab, compressedIn, compressedTab []field.Element, beta, gamma field.Element, invTotals []field.Element, slotLen int) {
	if len(permIn) != len(permTab) || len(permIn) != len(compressedIn) || len(permIn) != len(compressedTab) {
		panic("column length mismatch")
	}
	segments := (len(permIn) + slotLen - 1) / slotLen
	if len(invTotals) != segments {
		panic("segment count mismatch")
	}

	lane.Execute(segments, func(start, end int) {
		var fInv, q, g field.Element
		for seg := start; seg < end; seg++ {
			lo := seg * slotLen
			hi := min(lo+slotLen, len(permIn))

			t3 := invTotals[seg]
			for i := hi - 1; i >= lo; i-- {
				factor := permTab[i]
				fInv.Mul(&permIn[i], &t3)

				q.Add(&compressedIn[i], &beta)
				g.Add(&compressedTab[i], &gamma)
				q.Mul(&q, &g)
				q.Mul(&q, &fInv)

				permIn[i] = q
				t3.Mul(&t3, &factor)
			}
		}
	})
}
