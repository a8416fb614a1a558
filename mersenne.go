package hwuuid

// Mersenne Twister parameters for the 64-bit engine (MT19937-64).
const (
	mt64N         = 312
	mt64M         = 156
	mt64MatrixA   = 0xB5026F5AA96619E9
	mt64UpperMask = 0xFFFFFFFF80000000
	mt64LowerMask = 0x000000007FFFFFFF
	mt64InitMul   = 6364136223846793005
)

// Mersenne Twister parameters for the 32-bit engine (MT19937).
const (
	mt32N         = 624
	mt32M         = 397
	mt32MatrixA   = 0x9908B0DF
	mt32UpperMask = 0x80000000
	mt32LowerMask = 0x7FFFFFFF
	mt32InitMul   = 1812433253
)

// DefaultSeed is the seed of a default-constructed C++ Mersenne engine.
// NewMersenne64(DefaultSeed) reproduces std::mt19937_64{} exactly.
const DefaultSeed = 5489

// Mersenne64 is the 64-bit Mersenne Twister MT19937-64. Its output matches
// C++ std::mt19937_64 word for word, which makes fixtures portable.
// It is the default software engine.
type Mersenne64 struct {
	state [mt64N]uint64
	index int
}

// NewMersenne64 returns an engine seeded with seed.
func NewMersenne64(seed uint64) *Mersenne64 {
	m := &Mersenne64{}
	m.Seed(seed)

	return m
}

// Seed implements [Engine].
func (m *Mersenne64) Seed(seed uint64) {
	m.state[0] = seed
	for i := 1; i < mt64N; i++ {
		prev := m.state[i-1]
		m.state[i] = mt64InitMul*(prev^(prev>>62)) + uint64(i)
	}
	m.index = mt64N
}

// Uint64 implements [Engine].
func (m *Mersenne64) Uint64() uint64 {
	if m.index >= mt64N {
		m.twist()
	}

	y := m.state[m.index]
	m.index++

	y ^= (y >> 29) & 0x5555555555555555
	y ^= (y << 17) & 0x71D67FFFEDA60000
	y ^= (y << 37) & 0xFFF7EEE000000000
	y ^= y >> 43

	return y
}

func (m *Mersenne64) twist() {
	for i := range mt64N {
		x := (m.state[i] & mt64UpperMask) | (m.state[(i+1)%mt64N] & mt64LowerMask)
		xa := x >> 1
		if x&1 != 0 {
			xa ^= mt64MatrixA
		}
		m.state[i] = m.state[(i+mt64M)%mt64N] ^ xa
	}
	m.index = 0
}

// Bits implements [Engine].
func (m *Mersenne64) Bits() int { return 64 }

// Min implements [Engine].
func (m *Mersenne64) Min() uint64 { return 0 }

// Max implements [Engine].
func (m *Mersenne64) Max() uint64 { return maxForBits(64) }

// Mersenne32 is the 32-bit Mersenne Twister MT19937, matching C++
// std::mt19937. Only the low 32 bits of a seed are used.
type Mersenne32 struct {
	state [mt32N]uint32
	index int
}

// NewMersenne32 returns an engine seeded with the low 32 bits of seed.
func NewMersenne32(seed uint64) *Mersenne32 {
	m := &Mersenne32{}
	m.Seed(seed)

	return m
}

// Seed implements [Engine].
func (m *Mersenne32) Seed(seed uint64) {
	m.state[0] = uint32(seed)
	for i := 1; i < mt32N; i++ {
		prev := m.state[i-1]
		m.state[i] = mt32InitMul*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mt32N
}

// Uint64 implements [Engine]. The result never exceeds 2^32-1.
func (m *Mersenne32) Uint64() uint64 {
	if m.index >= mt32N {
		m.twist()
	}

	y := m.state[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9D2C5680
	y ^= (y << 15) & 0xEFC60000
	y ^= y >> 18

	return uint64(y)
}

func (m *Mersenne32) twist() {
	for i := range mt32N {
		x := (m.state[i] & mt32UpperMask) | (m.state[(i+1)%mt32N] & mt32LowerMask)
		xa := x >> 1
		if x&1 != 0 {
			xa ^= mt32MatrixA
		}
		m.state[i] = m.state[(i+mt32M)%mt32N] ^ xa
	}
	m.index = 0
}

// Bits implements [Engine].
func (m *Mersenne32) Bits() int { return 32 }

// Min implements [Engine].
func (m *Mersenne32) Min() uint64 { return 0 }

// Max implements [Engine].
func (m *Mersenne32) Max() uint64 { return maxForBits(32) }
