package domain

import (
	"math"
	"unicode/utf16"
)

const (
	lcgModulus    = 2147483647 // 2^31 - 1
	lcgMultiplier = 16807      // Park-Miller minimal standard
)

// SeededRNG is a Park-Miller linear congruential generator. The same seed
// always yields the same value stream, across runs and platforms. It is a
// reproducibility tool, not a source of unpredictability.
type SeededRNG struct {
	state int64
}

// NewSeededRNG constructs a generator from any seed. Zero and negative
// seeds are coerced into the valid state range [1, 2147483646] rather
// than rejected.
func NewSeededRNG(seed int64) *SeededRNG {
	state := seed % lcgModulus
	if state <= 0 {
		state += lcgModulus - 1
	}
	return &SeededRNG{state: state}
}

// Next advances the generator and returns a float in [0, 1).
func (r *SeededRNG) Next() float64 {
	// The intermediate product can exceed 32 bits; int64 keeps it exact.
	r.state = r.state * lcgMultiplier % lcgModulus
	return float64(r.state-1) / float64(lcgModulus-1)
}

// NextInt returns an integer in [min, max).
func (r *SeededRNG) NextInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min))) + min
}

// NextBool returns a deterministic coin flip.
func (r *SeededRNG) NextBool() bool {
	return r.Next() < 0.5
}

// HashQuestion maps a question string to a non-negative seed using a
// rolling multiply-and-add over UTF-16 code units, wrapped to 32-bit
// signed. Identical questions always hash identically; different
// questions may collide, which is accepted rather than treated as a
// defect so that previously shared readings keep reproducing.
func HashQuestion(text string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(text)) {
		h = h*31 + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// SeededShuffle returns a Fisher-Yates permutation of cards driven by a
// fresh generator for the given seed. The input slice is never mutated.
func SeededShuffle(cards []Card, seed int64) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	rng := NewSeededRNG(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.NextInt(0, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
