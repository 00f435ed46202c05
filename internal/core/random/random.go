// Package random provides the seeded pseudo-random stream every output file
// draws its values from. The seed derivation and the generator algorithm are
// both fixed so a given seed index yields the same stream on every platform
// and Go release.
package random

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
)

type Source struct {
	index  int64
	chacha *rand.ChaCha8
	draws  uint64
}

// SeedBytes expands a seed index into the 32-byte ChaCha8 key: the index is encoded
// as 8 big-endian bytes and hashed with SHA-256.
func SeedBytes(index int64) [32]byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(index))
	return sha256.Sum256(buf[:])
}

func New(index int64) *Source {
	return &Source{index: index, chacha: rand.NewChaCha8(SeedBytes(index))}
}

func (s *Source) Index() int64 {
	return s.index
}

// Draws reports how many 64-bit values have been consumed so far.
func (s *Source) Draws() uint64 {
	return s.draws
}

// Uint64 makes a Source a math/rand/v2 Source, so the fake value providers
// draw from the same stream as the generators.
func (s *Source) Uint64() uint64 {
	s.draws++
	return s.chacha.Uint64()
}

// IntN returns a uniform value in [0, bound). It panics if bound <= 0.
func (s *Source) IntN(bound int) int {
	if bound <= 0 {
		panic("random: IntN called with non-positive bound")
	}
	n := uint64(bound)
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return int(hi)
}

// Between returns a uniform value in [lo, hi].
func (s *Source) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Int32 returns a value drawn from the full signed 32-bit range.
func (s *Source) Int32() int32 {
	return int32(uint32(s.Uint64() >> 32))
}

// Pick returns a uniformly chosen element of values.
func Pick[T any](s *Source, values []T) T {
	return values[s.IntN(len(values))]
}
