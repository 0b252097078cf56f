package eval

import (
	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/lane"
)

// The Fold kernels accumulate one constraint term per call using the
// recurrence value[i] = value[i]*y + term[i], evaluating a polynomial in the
// challenge y by Horner's method across calls. The recurrence is
// order-sensitive: callers must issue folds in the protocol-defined order.

// FoldFirstRowAssign folds l0·(1 − z) into value: the grand-product column
// must start at one.
func FoldFirstRowAssign(z, l0 []field.Element, y field.Element, value []field.Element) {
	one := field.One()
	lane.Execute(len(value), func(start, end int) {
		var term field.Element
		for i := start; i < end; i++ {
			term.Sub(&one, &z[i])
			term.Mul(&term, &l0[i])
			value[i].Mul(&value[i], &y)
			value[i].Add(&value[i], &term)
		}
	})
}

// FoldLastRowAssign folds lLast·(z² − z) into value: the final
// grand-product value must be idempotent, i.e. zero or one.
func FoldLastRowAssign(z, lLast []field.Element, y field.Element, value []field.Element) {
	lane.Execute(len(value), func(start, end int) {
		var term field.Element
		for i := start; i < end; i++ {
			term.Square(&z[i])
			term.Sub(&term, &z[i])
			term.Mul(&term, &lLast[i])
			value[i].Mul(&value[i], &y)
			value[i].Add(&value[i], &term)
		}
	})
}

// FoldContinuityAssign folds l0·(zCurr − zPrev[i+rot]) into value, with
// rotated cyclic indexing: chained grand-product columns must agree at the
// domain's first row.
func FoldContinuityAssign(zCurr, zPrev, l0 []field.Element, rot int, y field.Element, value []field.Element) {
	size := len(value)
	lane.Execute(size, func(start, end int) {
		var term field.Element
		for i := start; i < end; i++ {
			term.Sub(&zCurr[i], &zPrev[(i+size+rot)%size])
			term.Mul(&term, &l0[i])
			value[i].Mul(&value[i], &y)
			value[i].Add(&value[i], &term)
		}
	})
}

// FoldProductStepAssign multiplies the left and right running columns by
// one permuted-column pairing:
//
//	left[i]  *= β·perm[i] + γ + values[i]
//	right[i] *= delta·step^i + γ + values[i]
//
// and returns delta·step^size, the shift for the next pairing. The per-row
// shift delta·step^i is advanced by repeated multiplication within each
// chunk, never recomputed from scratch.
func FoldProductStepAssign(perm, values []field.Element, beta, gamma, delta, step field.Element, left, right []field.Element) field.Element {
	size := len(values)
	lane.Execute(size, func(start, end int) {
		rowDelta := field.Pow(step, uint64(start))
		rowDelta.Mul(&rowDelta, &delta)

		var term field.Element
		for i := start; i < end; i++ {
			term.Mul(&beta, &perm[i])
			term.Add(&term, &gamma)
			term.Add(&term, &values[i])
			left[i].Mul(&left[i], &term)

			term.Add(&rowDelta, &gamma)
			term.Add(&term, &values[i])
			right[i].Mul(&right[i], &term)

			rowDelta.Mul(&rowDelta, &step)
		}
	})

	next := field.Pow(step, uint64(size))
	next.Mul(&next, &delta)
	return next
}

// FoldProductAssign folds lActive·(left − right) into value, closing the
// running-product check.
func FoldProductAssign(left, right, lActive []field.Element, y field.Element, value []field.Element) {
	lane.Execute(len(value), func(start, end int) {
		var term field.Element
		for i := start; i < end; i++ {
			term.Sub(&left[i], &right[i])
			term.Mul(&term, &lActive[i])
			value[i].Mul(&value[i], &y)
			value[i].Add(&value[i], &term)
		}
	})
}
