package csprng

import (
	"crypto/rand"

	"github.com/sp301415/halogen/field"
	"golang.org/x/crypto/blake2b"
)

// elementBytes is the number of XOF bytes folded into one field element.
// Sampling 16 bytes beyond the field size keeps the modular bias negligible.
const elementBytes = field.Bytes + 16

// UniformSampler samples field elements from uniform distribution.
// This uses blake2b as a underlying prng.
type UniformSampler struct {
	prng blake2b.XOF

	buf [elementBytes]byte
}

// NewUniformSampler creates a new UniformSampler.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
// Samplers with equal seeds produce equal streams.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		prng: prng,
	}
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	return s.prng.Read(p)
}

// Sample uniformly samples a random field element.
func (s *UniformSampler) Sample() field.Element {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}

	var res field.Element
	res.SetBytes(s.buf[:])
	return res
}

// SampleSliceAssign fills v with uniformly random field elements.
func (s *UniformSampler) SampleSliceAssign(v []field.Element) {
	for i := range v {
		v[i] = s.Sample()
	}
}
