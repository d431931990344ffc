// Package noise provides a small deterministic pseudo-random source for
// real-time use: no allocation, no locking, 32 bits of state.
package noise

import "math/rand/v2"

// DefaultSeed replaces a zero seed, which would lock xorshift at zero forever.
const DefaultSeed uint32 = 0xDEADBEEF

// AlternateSeed is the zero-seed fallback for a second, independent stream.
const AlternateSeed uint32 = 0xCAFEBABE

const normalization = 1.0 / 4294967296.0

// Xorshift32 is Marsaglia's 13/17/5 xorshift generator.
// The zero value is seeded with [DefaultSeed].
type Xorshift32 struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Xorshift32 {
	x := &Xorshift32{}
	x.Seed(seed)
	return x
}

// Seed resets the generator state. A zero seed is replaced by [DefaultSeed].
func (x *Xorshift32) Seed(seed uint32) {
	if seed == 0 {
		seed = DefaultSeed
	}
	x.state = seed
}

// State returns the current generator state.
func (x *Xorshift32) State() uint32 {
	if x.state == 0 {
		return DefaultSeed
	}
	return x.state
}

// Uint32 advances the generator and returns the new state.
func (x *Xorshift32) Uint32() uint32 {
	s := x.state
	if s == 0 {
		s = DefaultSeed
	}
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// Next returns a uniform value in [0, 1).
func (x *Xorshift32) Next() float64 {
	return float64(x.Uint32()) * normalization
}

// EntropySeed returns a non-zero seed drawn from the runtime's random source.
// Hosts use it as the default when no fixed seed is requested.
func EntropySeed() uint32 {
	for {
		if s := rand.Uint32(); s != 0 {
			return s
		}
	}
}
