package hwuuid

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// entropyReader supplies OS entropy for default seeding. Tests replace it to
// simulate a failing entropy source.
var entropyReader io.Reader = rand.Reader

// RandomSeed reads a 64-bit seed from the operating system entropy source.
// It returns an [*EntropyError] when the source fails.
func RandomSeed() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(entropyReader, b[:]); err != nil {
		return 0, &EntropyError{Source: "crypto/rand", Err: err}
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// SoftwareSource turns the words of an [Engine] into a byte stream.
// It is deterministic for a given engine state and is not safe for
// concurrent use.
type SoftwareSource struct {
	engine Engine
	width  int // bytes contributed per word
}

// NewSoftwareSource wraps e, which must pass [ValidateEngine].
func NewSoftwareSource(e Engine) (*SoftwareSource, error) {
	if err := ValidateEngine(e); err != nil {
		return nil, err
	}

	return &SoftwareSource{engine: e, width: e.Bits() / 8}, nil
}

// Fill overwrites buf with engine output. Words are copied little-endian so
// the stream is identical on every platform. When the word width does not
// divide the remaining length, the last word is truncated to the bytes still
// needed and its remainder discarded.
func (s *SoftwareSource) Fill(buf []byte) {
	var word [8]byte
	for off := 0; off < len(buf); {
		binary.LittleEndian.PutUint64(word[:], s.engine.Uint64())
		off += copy(buf[off:], word[:s.width])
	}
}

// Seed reseeds the underlying engine.
func (s *SoftwareSource) Seed(seed uint64) {
	s.engine.Seed(seed)
}
