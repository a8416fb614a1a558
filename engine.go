package hwuuid

// Engine is a deterministic pseudo-random bit generator used by the software
// path. Implementations produce unsigned words of a fixed width and must be
// reproducible: the same seed yields the same word sequence on every
// platform.
//
// Engines are not required to be safe for concurrent use.
type Engine interface {
	// Uint64 returns the next word, in the closed range [Min(), Max()].
	Uint64() uint64
	// Bits returns the output width: 8, 16, 32 or 64.
	Bits() int
	// Min returns the smallest value Uint64 can return.
	Min() uint64
	// Max returns the largest value Uint64 can return.
	Max() uint64
	// Seed resets the engine to the state derived from seed.
	Seed(seed uint64)
}

// ValidateEngine checks that e declares a supported width and a range
// covering every value of that width, so each word contributes Bits()/8 raw
// bytes without bias. A nil engine is invalid.
func ValidateEngine(e Engine) error {
	if e == nil {
		return ErrInvalidEngine
	}

	bits := e.Bits()
	switch bits {
	case 8, 16, 32, 64:
	default:
		return &EngineError{Bits: bits, Min: e.Min(), Max: e.Max()}
	}

	if e.Min() != 0 || e.Max() != maxForBits(bits) {
		return &EngineError{Bits: bits, Min: e.Min(), Max: e.Max()}
	}

	return nil
}

// maxForBits returns 2^bits - 1 for bits in [1, 64].
func maxForBits(bits int) uint64 {
	return ^uint64(0) >> (64 - bits)
}
