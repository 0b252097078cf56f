// Package num implements various utility functions regarding numeric types.
package num

import "math/bits"

// IsPowerOfTwo returns whether x is a power of two.
// Returns false for x <= 0.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns the base-2 logarithm of x.
// Panics if x is not a power of two.
func Log2(x int) int {
	if !IsPowerOfTwo(x) {
		panic("x is not a power of two")
	}
	return bits.TrailingZeros64(uint64(x))
}

// BitReverse returns x with its lowest width bits reversed.
func BitReverse(x, width int) int {
	return int(bits.Reverse64(uint64(x)) >> (64 - width))
}

// BitReverseInPlace reorders v into bit-reversal order in-place.
func BitReverseInPlace[T any](v []T) {
	var bit, j int
	for i := 1; i < len(v); i++ {
		bit = len(v) >> 1
		for j >= bit {
			j -= bit
			bit >>= 1
		}
		j += bit
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}
