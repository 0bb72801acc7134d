package common

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// The same seed always yields the same sky, which keeps tests reproducible.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was last reset to.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomFloat returns a value in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// TimeSeed folds a wall-clock reading (milliseconds or nanoseconds) into a
// 32-bit seed, so hosts without a user-supplied seed still get a fresh sky.
func TimeSeed(now int64) uint32 {
	seed := uint32(now) ^ uint32(now>>32)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
