package hwuuid

import "encoding/binary"

// Source names the path that filled an identifier.
type Source int

const (
	// SourceSoftware means the bytes came from the software engine.
	SourceSoftware Source = iota
	// SourceHardware means the bytes came from RDRAND or RDSEED.
	SourceHardware
)

// String returns "software" or "hardware".
func (s Source) String() string {
	if s == SourceHardware {
		return "hardware"
	}

	return "software"
}

// mixKey is the round key of the diffusion step, the constants
// 0x9e3779b9 and 0x1b873593 in the low and high 64-bit lanes. The key is
// public and compiled in: the AESENC round only spreads bits of the raw
// hardware words across the block and adds no secrecy whatsoever.
var mixKey = [Size]byte{
	0xb9, 0x79, 0x37, 0x9e, 0x00, 0x00, 0x00, 0x00,
	0x93, 0x35, 0x87, 0x1b, 0x00, 0x00, 0x00, 0x00,
}

// aesMix applies one AESENC round under mixKey to b in place.
func aesMix(b *[Size]byte) {
	aesenc(b, &mixKey)
}

// wordSource yields hardware words; *HardwareSource is the production
// implementation.
type wordSource interface {
	Uint64() (uint64, bool)
}

// strategy fills the 16 raw bytes of an identifier. Strategies are selected
// once when a Generator is configured, so Generate never re-inspects the
// feature flags.
type strategy interface {
	fill(b *[Size]byte) Source
	name() string
}

// softwareStrategy always draws from the engine.
type softwareStrategy struct {
	sw *SoftwareSource
}

func (s softwareStrategy) fill(b *[Size]byte) Source {
	s.sw.Fill(b[:])

	return SourceSoftware
}

func (s softwareStrategy) name() string {
	return "software"
}

// hardwareStrategy draws two hardware words, optionally mixes them and falls
// back to the engine when either word cannot be obtained.
type hardwareStrategy struct {
	hw  wordSource
	mix func(*[Size]byte) // nil when AES is unavailable
	sw  *SoftwareSource
}

func (s hardwareStrategy) fill(b *[Size]byte) Source {
	lo, ok := s.hw.Uint64()
	if !ok {
		s.sw.Fill(b[:])
		return SourceSoftware
	}

	hi, ok := s.hw.Uint64()
	if !ok {
		s.sw.Fill(b[:])
		return SourceSoftware
	}

	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)

	if s.mix != nil {
		s.mix(b)
	}

	return SourceHardware
}

func (s hardwareStrategy) name() string {
	if s.mix != nil {
		return "hardware+aes"
	}

	return "hardware"
}

// resolveStrategy picks the concrete strategy for fs.
func resolveStrategy(fs Features, retries int, sw *SoftwareSource) strategy {
	if !fs.HardwareRandom() {
		return softwareStrategy{sw: sw}
	}

	s := hardwareStrategy{
		hw: NewHardwareSource(fs, retries),
		sw: sw,
	}
	if fs.AES {
		s.mix = aesMix
	}

	return s
}
