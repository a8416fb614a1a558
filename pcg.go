package hwuuid

import "math/rand/v2"

// pcgStream is the fixed second PCG seed word. Any constant works; it only
// selects which of the PCG streams a seed maps onto.
const pcgStream = 0x9E3779B97F4A7C15

// PCG adapts the permuted congruential generator from math/rand/v2 to
// [Engine]. It is smaller and faster than [Mersenne64], with a 128-bit state.
type PCG struct {
	src *rand.PCG
}

// NewPCG returns a PCG engine seeded with seed.
func NewPCG(seed uint64) *PCG {
	return &PCG{src: rand.NewPCG(seed, pcgStream)}
}

// Seed implements [Engine].
func (p *PCG) Seed(seed uint64) {
	p.src.Seed(seed, pcgStream)
}

// Uint64 implements [Engine].
func (p *PCG) Uint64() uint64 {
	return p.src.Uint64()
}

// Bits implements [Engine].
func (p *PCG) Bits() int { return 64 }

// Min implements [Engine].
func (p *PCG) Min() uint64 { return 0 }

// Max implements [Engine].
func (p *PCG) Max() uint64 { return maxForBits(64) }
