package num_test

import (
	"testing"

	"github.com/sp301415/halogen/num"
	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, num.IsPowerOfTwo(1))
	assert.True(t, num.IsPowerOfTwo(2))
	assert.True(t, num.IsPowerOfTwo(1<<20))

	assert.False(t, num.IsPowerOfTwo(0))
	assert.False(t, num.IsPowerOfTwo(-4))
	assert.False(t, num.IsPowerOfTwo(3))
	assert.False(t, num.IsPowerOfTwo(12))
}

func TestLog2(t *testing.T) {
	for i := 0; i < 30; i++ {
		assert.Equal(t, i, num.Log2(1<<i))
	}

	assert.Panics(t, func() { num.Log2(6) })
}

func TestBitReverse(t *testing.T) {
	assert.Equal(t, 0, num.BitReverse(0, 4))
	assert.Equal(t, 8, num.BitReverse(1, 4))
	assert.Equal(t, 1, num.BitReverse(8, 4))
	assert.Equal(t, 6, num.BitReverse(6, 4))

	// Involution.
	for x := 0; x < 1<<6; x++ {
		assert.Equal(t, x, num.BitReverse(num.BitReverse(x, 6), 6))
	}
}

func TestBitReverseInPlace(t *testing.T) {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7}
	num.BitReverseInPlace(v)
	assert.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, v)

	num.BitReverseInPlace(v)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, v)
}
