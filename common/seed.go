package common

import "unicode/utf16"

// StringSeed returns a 32-bit hash stream seeded from s (xmur3). Each call
// yields the next value; the stream is meant to seed Mulberry32. s is hashed
// as UTF-16 code units.
func StringSeed(s string) func() uint32 {
	units := utf16.Encode([]rune(s))
	h := uint32(1779033703) ^ uint32(len(units))
	for _, u := range units {
		h = (h ^ uint32(u)) * 3432918353
		h = h<<13 | h>>19
	}
	return func() uint32 {
		h = (h ^ (h >> 16)) * 2246822507
		h = (h ^ (h >> 13)) * 3266489909
		h ^= h >> 16
		return h
	}
}

// Mulberry32 is a seeded pseudo-random generator producing reproducible
// floats in [0, 1). It is not safe for concurrent use.
type Mulberry32 struct {
	state uint32
	seed  uint32
}

func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed, seed: seed}
}

// Uint32 advances the generator and returns the raw 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296.0
}

// Reset rewinds the generator to its construction seed.
func (m *Mulberry32) Reset() {
	m.state = m.seed
}

func (m *Mulberry32) Seed() uint32 {
	return m.seed
}
