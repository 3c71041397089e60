// Package hashmoji converts digests into a string of pictographic symbols.
// The resulting output is not of cryptographic quality -- in particular it is
// not collision resistant -- but it gives a human viewer a quick way to check
// by eye that two parties computed the same value.
//
// Each ChunkSize bytes of the digest select one symbol from the table in
// package symtab. A 20-byte SHA-1 digest thus renders as five symbols:
//
//	📱 🔢 📩 🚦📲
//
// Symbols are separated by a single space, except that the final symbol is
// written directly after its predecessor.
package hashmoji

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/creachadair/hashmoji/symtab"
)

const (
	// ChunkSize is the number of digest bytes that select one symbol.
	ChunkSize = 4

	// MaxChunk is the largest value a chunk can hold.
	MaxChunk = math.MaxUint32
)

// An Input is a value that can be rendered as symbols. The concrete types
// are Bytes and Digest.
type Input interface {
	// resolve returns the digest bytes, or an error describing why the
	// input cannot be rendered.
	resolve() ([]byte, error)
}

// Bytes is an Input of raw digest bytes. Its length must be a positive
// multiple of ChunkSize.
type Bytes []byte

func (b Bytes) resolve() ([]byte, error) {
	if len(b) == 0 || len(b)%ChunkSize != 0 {
		return nil, &LengthError{Kind: ErrInvalidByteLength, Length: len(b), Divisor: ChunkSize}
	}
	return b, nil
}

// A State is an in-progress hash computation that can report its digest
// size and produce the digest. Every hash.Hash satisfies this interface.
type State interface {
	Size() int
	Sum([]byte) []byte
}

// Digest is an Input that finalizes a hash State. The declared digest size
// of the state must be a positive multiple of ChunkSize.
type Digest struct{ State }

func (d Digest) resolve() ([]byte, error) {
	size := d.Size()
	if size <= 0 || size%ChunkSize != 0 {
		return nil, &LengthError{Kind: ErrIncompatibleDigest, Length: size, Divisor: ChunkSize}
	}
	sum := d.Sum(nil)
	if len(sum) != size {
		return nil, &LengthError{Kind: ErrIncompatibleDigest, Length: len(sum), Divisor: ChunkSize, Declared: size}
	}
	return sum, nil
}

// Encode renders in as a string of symbols, one per ChunkSize bytes.
func Encode(in Input) (string, error) {
	syms, err := Symbols(in)
	if err != nil {
		return "", err
	}
	return Join(syms), nil
}

// String renders data as a string of symbols. It is shorthand for
// Encode(Bytes(data)).
func String(data []byte) (string, error) { return Encode(Bytes(data)) }

// Hash renders the current digest of h as a string of symbols. It is
// shorthand for Encode(Digest{h}). The state of h is not modified.
func Hash(h State) (string, error) { return Encode(Digest{h}) }

// Symbols returns the symbols for each chunk of in, in order.
func Symbols(in Input) ([]string, error) {
	data, err := in.resolve()
	if err != nil {
		return nil, err
	}
	syms := make([]string, 0, len(data)/ChunkSize)
	for i := 0; i < len(data); i += ChunkSize {
		sym, err := Symbol(data[i : i+ChunkSize])
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

// Join combines syms into a single string. Each symbol is preceded by a space
// except the first, and except a symbol whose chunk is not followed by at
// least one more byte of digest, which joins directly onto its predecessor.
func Join(syms []string) string {
	size := len(syms) * ChunkSize
	var sb strings.Builder
	for i, sym := range syms {
		off := i * ChunkSize
		if off != 0 && off+ChunkSize+1 <= size {
			sb.WriteByte(' ')
		}
		sb.WriteString(sym)
	}
	return sb.String()
}

// Index reports the table index selected by a single chunk, which must be
// exactly ChunkSize bytes long.
//
// The chunk is read as a little-endian unsigned value v and scaled into the
// table as floor(v/MaxChunk*symtab.Len + 1). That formula reaches one past
// the end of the table for the largest chunk values, and those are clamped
// to the last entry.
func Index(chunk []byte) (int, error) {
	if len(chunk) != ChunkSize {
		return 0, &LengthError{Kind: ErrInvalidByteLength, Length: len(chunk), Divisor: ChunkSize, Chunk: true}
	}
	v := binary.LittleEndian.Uint32(chunk)
	norm := float64(v) / MaxChunk

	// Round the product before the add; a fused multiply-add can change buckets.
	pos := int(math.Floor(float64(norm*symtab.Len) + 1))
	return min(pos, symtab.Len-1), nil
}

// Symbol returns the table symbol selected by a single chunk, which must be
// exactly ChunkSize bytes long.
func Symbol(chunk []byte) (string, error) {
	i, err := Index(chunk)
	if err != nil {
		return "", err
	}
	return symtab.At(i), nil
}
