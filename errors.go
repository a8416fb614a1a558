package hwuuid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the constructors and parsers of this package.
var (
	// ErrEntropy is returned when the operating system entropy source could
	// not provide a seed for the software engine.
	ErrEntropy = errors.New("operating system entropy unavailable")

	// ErrInvalidEngine is returned by [NewWithEngine] when the engine does not
	// declare a full unsigned range of 8, 16, 32 or 64 bits.
	ErrInvalidEngine = errors.New("engine does not span its full unsigned range")

	// ErrInvalidFormat is returned when a string is not a valid UUID text form.
	ErrInvalidFormat = errors.New("invalid UUID format")

	// ErrInvalidLength is returned when a byte slice is not exactly 16 bytes.
	ErrInvalidLength = errors.New("invalid UUID length")
)

// EntropyError records a failed read from the operating system entropy source.
// Use [errors.As] to extract the source name from wrapped errors.
type EntropyError struct {
	Source string // entropy source, e.g. "crypto/rand"
	Err    error  // underlying read error
}

// Error returns a human-readable description of the entropy failure.
func (e *EntropyError) Error() string {
	return fmt.Sprintf("reading seed from %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error and [ErrEntropy], so both
// errors.Is(err, ErrEntropy) and errors.Is(err, <read error>) hold.
func (e *EntropyError) Unwrap() []error {
	return []error{ErrEntropy, e.Err}
}

// ParseError records a failure while parsing a UUID text form.
// Use [errors.As] to extract the rejected input from wrapped errors.
type ParseError struct {
	Input string // the rejected text
	Err   error  // underlying parse error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// EngineError records why an engine was rejected by [ValidateEngine].
type EngineError struct {
	Bits int    // declared output width
	Min  uint64 // declared minimum
	Max  uint64 // declared maximum
}

// Error returns a human-readable description of the engine contract violation.
func (e *EngineError) Error() string {
	return fmt.Sprintf("%v: bits=%d min=%d max=%#x", ErrInvalidEngine, e.Bits, e.Min, e.Max)
}

// Unwrap returns [ErrInvalidEngine].
func (e *EngineError) Unwrap() error {
	return ErrInvalidEngine
}
