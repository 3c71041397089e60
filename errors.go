package hashmoji

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidByteLength is the kind of error reported when raw input bytes,
	// or a single chunk, have the wrong length.
	ErrInvalidByteLength = errors.New("invalid byte length")

	// ErrIncompatibleDigest is the kind of error reported when a hash state
	// has a digest size that cannot be divided into chunks. The remedy is to
	// choose a different hash algorithm.
	ErrIncompatibleDigest = errors.New("incompatible digest")
)

// LengthError is the concrete type of errors reported for inputs of the
// wrong size. Use errors.Is with ErrInvalidByteLength or ErrIncompatibleDigest
// to distinguish the kinds.
type LengthError struct {
	Kind    error // ErrInvalidByteLength or ErrIncompatibleDigest
	Length  int   // the offending length in bytes
	Divisor int   // the required divisor (ChunkSize)

	// If set, Length is the size of a single chunk rather than a whole input.
	Chunk bool

	// If positive, the hash state declared this digest size but produced a
	// digest of Length bytes.
	Declared int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	switch {
	case e.Chunk:
		return fmt.Sprintf("%v: chunk is %d bytes, want %d", e.Kind, e.Length, e.Divisor)
	case e.Declared > 0:
		return fmt.Sprintf("%v: digest is %d bytes, but size is declared as %d", e.Kind, e.Length, e.Declared)
	case e.Length <= 0:
		return fmt.Sprintf("%v: %d is not a positive multiple of %d", e.Kind, e.Length, e.Divisor)
	}
	return fmt.Sprintf("%v: %d is not divisible by %d", e.Kind, e.Length, e.Divisor)
}

// Unwrap reports the kind of e, so that errors.Is works for the kinds.
func (e *LengthError) Unwrap() error { return e.Kind }
