package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/sp301415/halogen/field"
)

// StreamSampler samples field elements from uniform distribution.
// This uses AES-256 as a underlying prng, and is faster than
// UniformSampler for bulk buffer fills.
type StreamSampler struct {
	prng cipher.Stream

	buf [elementBytes]byte
}

// NewStreamSampler creates a new StreamSampler.
//
// Panics when read from crypto/rand or AES initialization fails.
func NewStreamSampler() *StreamSampler {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	iv := make([]byte, block.BlockSize())
	if _, err := rand.Read(iv); err != nil {
		panic(err)
	}

	prng := cipher.NewCTR(block, iv)

	return &StreamSampler{
		prng: prng,
	}
}

// Read implements the [io.Reader] interface.
func (s *StreamSampler) Read(p []byte) (n int, err error) {
	s.prng.XORKeyStream(p, p)
	return len(p), nil
}

// Sample uniformly samples a random field element.
func (s *StreamSampler) Sample() field.Element {
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.prng.XORKeyStream(s.buf[:], s.buf[:])

	var res field.Element
	res.SetBytes(s.buf[:])
	return res
}

// SampleSliceAssign fills v with uniformly random field elements.
func (s *StreamSampler) SampleSliceAssign(v []field.Element) {
	for i := range v {
		v[i] = s.Sample()
	}
}
