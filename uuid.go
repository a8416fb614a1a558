package hwuuid

import (
	"bytes"

	"github.com/google/uuid"
)

// Size is the length in bytes of a [UUID].
const Size = 16

// StringLength is the length of the canonical 8-4-4-4-12 text form.
const StringLength = 36

// UUID is an immutable 128-bit identifier. Values produced by a [Generator]
// always carry version 4 and the RFC 4122 variant. Two UUIDs are equal when
// all 16 bytes are equal, so UUID is usable as a map key and with ==.
type UUID [Size]byte

// Nil is the all-zero UUID.
var Nil UUID

// FromBytes returns the UUID held in b, which must be exactly 16 bytes.
func FromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != Size {
		return Nil, ErrInvalidLength
	}
	copy(u[:], b)

	return u, nil
}

// Parse decodes s into a UUID. It accepts the canonical hyphenated form as
// well as the urn:uuid: prefixed, braced and undashed forms understood by
// github.com/google/uuid. Parse(u.String()) == u for every UUID.
func Parse(s string) (UUID, error) {
	std, err := uuid.Parse(s)
	if err != nil {
		return Nil, &ParseError{Input: s, Err: ErrInvalidFormat}
	}

	return UUID(std), nil
}

// MustParse is like [Parse] but panics if s cannot be parsed.
// It simplifies initialization of fixtures and package-level variables.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// Bytes returns a copy of the raw 16 bytes.
func (u UUID) Bytes() [Size]byte {
	return u
}

// String returns the lowercase 8-4-4-4-12 hexadecimal form, e.g.
// "d6e2e56e-7ddf-41c1-a802-25b9b98f97a3".
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// Compare returns -1, 0 or +1 depending on whether u sorts before, equal to
// or after v in byte-wise lexicographic order.
func (u UUID) Compare(v UUID) int {
	return bytes.Compare(u[:], v[:])
}

// Less reports whether u sorts before v.
func (u UUID) Less(v UUID) bool {
	return u.Compare(v) < 0
}

// IsZero reports whether u is the Nil UUID.
func (u UUID) IsZero() bool {
	return u == Nil
}

// Version returns the version number held in the high nibble of byte 6.
func (u UUID) Version() int {
	return int(u[6] >> 4)
}

// IsRFC4122 reports whether the variant bits of byte 8 are 10.
func (u UUID) IsRFC4122() bool {
	return u[8]&0xC0 == 0x80
}

// Std converts u to a github.com/google/uuid value for interoperability.
func (u UUID) Std() uuid.UUID {
	return uuid.UUID(u)
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return uuid.UUID(u).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = parsed

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UUID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = parsed

	return nil
}

// fixup stamps the version 4 and RFC 4122 variant bits into b, keeping every
// other bit.
func fixup(b *[Size]byte) {
	b[6] = (b[6] & 0x0F) | 0x40
	b[8] = (b[8] & 0x3F) | 0x80
}
