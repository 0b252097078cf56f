package eval

import (
	"github.com/sp301415/halogen/field"
	"github.com/sp301415/halogen/lane"
	"github.com/sp301415/halogen/num"
)

// SortStepInPlace performs one compare-exchange phase (i, j) of the bitonic
// sorting network over v. Each lane pairs with the element at id ^ j and
// conditionally swaps based on field comparison XORed with the direction
// bit id & i. The caller must issue the full canonical stage sequence;
// SortInPlace does exactly that.
func SortStepInPlace(v []field.Element, i, j int) {
	lane.Execute(len(v), func(start, end int) {
		for id := start; id < end; id++ {
			ixj := id ^ j
			if ixj <= id {
				continue
			}
			if field.Gte(v[id], v[ixj]) != (id&i != 0) {
				v[id], v[ixj] = v[ixj], v[id]
			}
		}
	})
}

// SortInPlace sorts v ascending by canonical representative, issuing the
// O(log²(count)) bitonic stage sequence. Panics if len(v) is not a power
// of two.
func SortInPlace(v []field.Element) {
	n := len(v)
	if n <= 1 {
		return
	}
	if !num.IsPowerOfTwo(n) {
		panic("count must be a power of two")
	}

	for i := 2; i <= n; i <<= 1 {
		for j := i >> 1; j > 0; j >>= 1 {
			SortStepInPlace(v, i, j)
		}
	}
}
