package walk

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
	"time"
)

// Xoshiro256 is the xoshiro256** generator by Blackman and Vigna. It
// implements math/rand.Source64, so rand.New(NewXoshiro(seed)) yields a
// *rand.Rand with unbiased Intn.
//
// A Xoshiro256 is not safe for concurrent use.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro returns a generator whose state is expanded from seed with
// SplitMix64, so nearby seeds give unrelated streams.
func NewXoshiro(seed uint64) *Xoshiro256 {
	x := &Xoshiro256{}
	x.reseed(seed)

	return x
}

func (x *Xoshiro256) reseed(seed uint64) {
	sm := seed
	for i := range x.s {
		x.s[i] = splitMix64(&sm)
	}
	// The all-zero state is a fixed point; SplitMix64 never yields four zeros
	// in a row, but keep the generator alive regardless.
	if x.s == [4]uint64{} {
		x.s[0] = 1
	}
}

// Uint64 returns the next 64 pseudo-random bits.
func (x *Xoshiro256) Uint64() uint64 {
	s := &x.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Int63 returns a non-negative 63-bit integer.
func (x *Xoshiro256) Int63() int64 {
	return int64(x.Uint64() >> 1)
}

// Seed resets the state from seed.
func (x *Xoshiro256) Seed(seed int64) {
	x.reseed(uint64(seed))
}

// splitMix64 advances *state and returns the next output.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// deriveSeed mixes a stream index into a base seed.
func deriveSeed(base uint64, stream int) uint64 {
	s := base ^ (uint64(stream) * 0xd1b54a32d192ed03)
	return splitMix64(&s)
}

// entropySeed draws a seed from the OS, falling back to the clock.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(b[:])
}
