package common

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	// 53 random bits give every representable float in [0, 1) at a uniform step.
	return float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53)
}

// Crypto is the default, non-reproducible source.
var Crypto Source = cryptoSource{}

// Rand returns a uniform float in [lo, hi) drawn from Crypto.
func Rand(lo, hi float64) float64 {
	return RandFrom(Crypto, lo, hi)
}

func RandFrom(src Source, lo, hi float64) float64 {
	if src == nil {
		src = Crypto
	}
	return lo + src.Float64()*(hi-lo)
}

// Choose picks the element at the rounded random index.
func Choose[T any](list []T) T {
	return ChooseFrom(Crypto, list)
}

func ChooseFrom[T any](src Source, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	idx := int(math.Round(RandFrom(src, 0, float64(len(list)-1))))
	if idx >= len(list) {
		idx = len(list) - 1
	}
	return list[idx]
}

// WeightedChoice picks an element with probability proportional to its
// weight. Negative weights count as zero and missing weights default to zero.
func WeightedChoice[T any](list []T, weights []float64) T {
	return WeightedChoiceFrom(Crypto, list, weights)
}

func WeightedChoiceFrom[T any](src Source, list []T, weights []float64) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	total := 0.0
	for i := range list {
		if i < len(weights) && weights[i] > 0 {
			total += weights[i]
		}
	}
	if total <= 0 {
		return ChooseFrom(src, list)
	}
	roll := RandFrom(src, 0, total)
	acc := 0.0
	last := 0
	for i := range list {
		if i >= len(weights) || weights[i] <= 0 {
			continue
		}
		acc += weights[i]
		last = i
		if roll < acc {
			return list[i]
		}
	}
	return list[last]
}

// Chance reports true with probability Clamp(p, 0, 1).
func Chance(p float64) bool {
	return ChanceFrom(Crypto, p)
}

func ChanceFrom(src Source, p float64) bool {
	return Clamp(p, 0, 1) > RandFrom(src, 0, 1)
}
