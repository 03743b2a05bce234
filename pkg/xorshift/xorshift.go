// Package xorshift implements the 128-bit xorshift pseudo-random number
// generator from Marsaglia's "Xorshift RNGs". It is fast, deterministic
// across platforms, and NOT cryptographically secure.
package xorshift

// Reference seed words, substituted for any seed word left zero so the
// generator state can never collapse to all zeroes.
const (
	seedX uint32 = 123456789
	seedY uint32 = 362436069
	seedZ uint32 = 521288629
	seedW uint32 = 88675123
)

// XorShift holds the four 32-bit words of generator state.
// It satisfies math/rand.Source64, so it can drive rand.New directly.
// Not safe for concurrent use.
type XorShift struct {
	x, y, z, w uint32
}

// New returns a generator seeded with the given words.
// Zero words are replaced by the reference constants, so New() with all
// zeroes yields the canonical xorshift128 sequence.
func New(x, y, z, w uint32) *XorShift {
	s := &XorShift{}
	s.Init(x, y, z, w)
	return s
}

// Init reseeds the generator. Zero words fall back to the reference
// constants.
func (s *XorShift) Init(x, y, z, w uint32) {
	if x == 0 {
		x = seedX
	}
	if y == 0 {
		y = seedY
	}
	if z == 0 {
		z = seedZ
	}
	if w == 0 {
		w = seedW
	}
	s.x, s.y, s.z, s.w = x, y, z, w
}

// Uint32 returns the next 32 bits of the sequence.
func (s *XorShift) Uint32() uint32 {
	t := s.x ^ (s.x << 11)
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = (s.w ^ (s.w >> 19)) ^ (t ^ (t >> 8))
	return s.w
}

// Uint64 returns the next 64 bits, composed high word first from two
// consecutive 32-bit outputs.
func (s *XorShift) Uint64() uint64 {
	hi := s.Uint32()
	lo := s.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Int63 implements math/rand.Source.
func (s *XorShift) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements math/rand.Source. The single seed value is spread
// across the x and w words; zero restores the reference seed.
func (s *XorShift) Seed(seed int64) {
	s.Init(uint32(seed), 0, 0, uint32(seed>>32))
}

// Fill overwrites p with pseudo-random bytes.
func (s *XorShift) Fill(p []byte) {
	i := 0
	for ; i+4 <= len(p); i += 4 {
		v := s.Uint32()
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = byte(v >> 16)
		p[i+3] = byte(v >> 24)
	}
	if i < len(p) {
		v := s.Uint32()
		for ; i < len(p); i++ {
			p[i] = byte(v)
			v >>= 8
		}
	}
}
