package hwuuid

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestEntropyErrorMessage(t *testing.T) {
	err := &EntropyError{Source: "crypto/rand", Err: io.ErrUnexpectedEOF}

	want := "reading seed from crypto/rand: unexpected EOF"
	if err.Error() != want {
		t.Errorf("EntropyError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestEntropyErrorIs(t *testing.T) {
	err := fmt.Errorf("constructing generator: %w", &EntropyError{Source: "crypto/rand", Err: io.ErrUnexpectedEOF})

	if !errors.Is(err, ErrEntropy) {
		t.Error("errors.Is(err, ErrEntropy) should be true")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is(err, io.ErrUnexpectedEOF) should be true")
	}
}

func TestEntropyErrorAs(t *testing.T) {
	err := fmt.Errorf("constructing generator: %w", &EntropyError{Source: "crypto/rand", Err: io.EOF})

	var entErr *EntropyError
	if !errors.As(err, &entErr) {
		t.Fatal("errors.As() should find EntropyError in wrapped chain")
	}

	if entErr.Source != "crypto/rand" {
		t.Errorf("EntropyError.Source = %q, want %q", entErr.Source, "crypto/rand")
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Input: "not-a-uuid", Err: ErrInvalidFormat}

	want := `failed to parse "not-a-uuid": invalid UUID format`
	if err.Error() != want {
		t.Errorf("ParseError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{Input: "x", Err: ErrInvalidFormat}

	if err.Unwrap() != ErrInvalidFormat {
		t.Error("ParseError.Unwrap() did not return inner error")
	}
}

func TestParseErrorAs(t *testing.T) {
	err := fmt.Errorf("loading fixture: %w", &ParseError{Input: "zz", Err: ErrInvalidFormat})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("errors.As() should find ParseError in wrapped chain")
	}

	if parseErr.Input != "zz" {
		t.Errorf("ParseError.Input = %q, want %q", parseErr.Input, "zz")
	}
}

func TestEngineErrorMessage(t *testing.T) {
	err := &EngineError{Bits: 31, Min: 0, Max: 0x7fffffff}

	want := "engine does not span its full unsigned range: bits=31 min=0 max=0x7fffffff"
	if err.Error() != want {
		t.Errorf("EngineError.Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrInvalidEngine) {
		t.Error("errors.Is(err, ErrInvalidEngine) should be true")
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{ErrEntropy, ErrInvalidEngine, ErrInvalidFormat, ErrInvalidLength}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
