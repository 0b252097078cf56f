package eval

import (
	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/lane"
)

// Lookup groups the columns of one lookup argument.
type Lookup struct {
	// Z is the grand-product column.
	Z []field.Element
	// Input is the permuted (sorted) input column a'.
	Input []field.Element
	// Table is the permuted table column s'.
	Table []field.Element
	// CompressedInput is the unpermuted, theta-compressed input column.
	CompressedInput []field.Element
	// CompressedTable is the unpermuted, theta-compressed table column.
	CompressedTable []field.Element
}

// FoldLookupAssign folds the five lookup-argument terms into value, in
// fixed order:
//
//	1. l0·(1 − z)
//	2. lLast·(z² − z)
//	3. lActive·( z[i+rot]·(a'+β)(s'+γ) − z·(in+β)(tab+γ) )
//	4. l0·(a' − s')
//	5. lActive·(a' − s')·(a' − a'[i-rot])
//
// with rotated cyclic indexing for the next/previous reads. Each term is
// folded through the Horner recurrence value = value·y + term.
func FoldLookupAssign(lk Lookup, l0, lLast, lActive []field.Element, y, beta, gamma field.Element, rot int, value []field.Element) {
	one := field.One()
	size := len(value)
	lane.Execute(size, func(start, end int) {
		var acc, term, t0, t1 field.Element
		for i := start; i < end; i++ {
			next := (i + size + rot) % size
			prev := (i + size - rot) % size
			acc = value[i]

			// 1: boundary.
			term.Sub(&one, &lk.Z[i])
			term.Mul(&term, &l0[i])
			acc.Mul(&acc, &y)
			acc.Add(&acc, &term)

			// 2: idempotence.
			term.Square(&lk.Z[i])
			term.Sub(&term, &lk.Z[i])
			term.Mul(&term, &lLast[i])
			acc.Mul(&acc, &y)
			acc.Add(&acc, &term)

			// 3: grand-product transition.
			t0.Add(&lk.Input[i], &beta)
			t1.Add(&lk.Table[i], &gamma)
			t0.Mul(&t0, &t1)
			t0.Mul(&t0, &lk.Z[next])

			t1.Add(&lk.CompressedInput[i], &beta)
			term.Add(&lk.CompressedTable[i], &gamma)
			t1.Mul(&t1, &term)
			t1.Mul(&t1, &lk.Z[i])

			term.Sub(&t0, &t1)
			term.Mul(&term, &lActive[i])
			acc.Mul(&acc, &y)
			acc.Add(&acc, &term)

			// 4: first-row equality of the permuted columns.
			term.Sub(&lk.Input[i], &lk.Table[i])
			term.Mul(&term, &l0[i])
			acc.Mul(&acc, &y)
			acc.Add(&acc, &term)

			// 5: adjacency. The permuted input may only change where it
			// matches the table.
			t0.Sub(&lk.Input[i], &lk.Table[i])
			t1.Sub(&lk.Input[i], &lk.Input[prev])
			term.Mul(&t0, &t1)
			term.Mul(&term, &lActive[i])
			acc.Mul(&acc, &y)
			acc.Add(&acc, &term)

			value[i] = acc
		}
	})
}
