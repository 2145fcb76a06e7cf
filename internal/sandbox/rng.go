package sandbox

import "time"

// tickRNG is the xorshift32 generator (13/17/5 taps) that drives every
// per-tick random decision in the engine. The driver advances the master
// state exactly once per tick (§4.1); stages only ever consume the
// resulting per-tick seed, never a wall-clock source (§5).
type tickRNG struct {
	state uint32
}

func newTickRNG(seed int64) *tickRNG {
	s := uint32(seed)
	if s == 0 {
		s = 0x9e3779b9
	}
	return &tickRNG{state: s}
}

func seedFromWallClock() int64 {
	return time.Now().UnixNano()
}

// next advances the generator and returns the raw 32-bit value.
func (r *tickRNG) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint32 returns the next raw 32-bit value from the tick seed.
func (r *tickRNG) Uint32() uint32 {
	return r.next()
}

// Float64 returns the next value in [0, 1].
func (r *tickRNG) Float64() float64 {
	return float64(r.next()) / float64(0xFFFFFFFF)
}

// IntRange returns a ≤ n ≤ b for a ≤ b, using rand_range's definition:
// a + rand % (b - a + 1).
func (r *tickRNG) IntRange(a, b int) int {
	if b < a {
		a, b = b, a
	}
	span := uint32(b-a) + 1
	return a + int(r.next()%span)
}

// Bool centralizes every left/right tie-break in the spec behind one RNG
// bit, so reimplementations consume randomness identically (§9 Design Notes).
func (r *tickRNG) Bool() bool {
	return r.next()&1 == 1
}

// Chance reports whether a probability p in [0, 1] fires this call.
// Probabilities outside [0,1] clamp: p<=0 never fires, p>=1 always fires (§7).
func (r *tickRNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// hash32 mixes a 32-bit value twice and xor-shifts, used both for color
// perturbation (§4.3) and anywhere a seed needs decorrelating from its
// source cell. Grounded on original_source/include/core/utils.h.
func hash32(x uint32) uint32 {
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = (x >> 16) ^ x
	return x
}
