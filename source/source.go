// Package source reads fingerprint inputs in text, binary, or hex mode and
// prepares them for rendering as hashmoji.
package source

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/creachadair/hashmoji"
	"github.com/creachadair/hashmoji/digests"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// A Mode selects how input is interpreted.
type Mode int

const (
	Text   Mode = iota // UTF-8 text, re-encoded and hashed
	Binary             // raw bytes, hashed or taken as a digest
	Hex                // hexadecimal text decoded to a digest
)

var modeNames = [...]string{Text: "text", Binary: "binary", Hex: "hex"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode with the given name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want text, binary, or hex)", s)
}

// Set implements the flag.Value interface.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(data []byte) error { return m.Set(string(data)) }

// DefaultEncoding is the text encoding used when none is specified.
const DefaultEncoding = "utf-8"

var (
	// ErrTextNoHash is reported by Validate for unhashed text input.
	ErrTextNoHash = errors.New("non-hashed text mode is not supported")

	// ErrUnknownEncoding is reported by Validate for an unrecognized text
	// encoding name.
	ErrUnknownEncoding = errors.New("unknown text encoding")

	// ErrInvalidText is reported by Read for text input that is not UTF-8,
	// that cannot be represented in the selected encoding, or for malformed
	// hex input.
	ErrInvalidText = errors.New("invalid text input")
)

// Options control how input is read.
type Options struct {
	Mode      Mode
	Algorithm string // hash algorithm name; "" means digests.Default
	NoHash    bool   // take input bytes as the digest without hashing
	Encoding  string // text encoding name; "" means DefaultEncoding
}

// Hashed reports whether o hashes its input. Hex mode never hashes.
func (o Options) Hashed() bool { return !o.NoHash && o.Mode != Hex }

// Validate reports an error if o describes an unsupported combination.
func (o Options) Validate() error {
	if o.NoHash && o.Mode == Text {
		return ErrTextNoHash
	}
	if o.Hashed() {
		if _, err := digests.Lookup(o.algorithm()); err != nil {
			return err
		}
	}
	if o.Mode == Text {
		if _, err := LookupEncoding(o.encoding()); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) algorithm() string {
	if o.Algorithm == "" {
		return digests.Default
	}
	return o.Algorithm
}

func (o Options) encoding() string {
	if o.Encoding == "" {
		return DefaultEncoding
	}
	return o.Encoding
}

// Read consumes r according to o and returns an input for rendering. Hashed
// modes return a hashmoji.Digest; otherwise Read returns hashmoji.Bytes.
func (o Options) Read(r io.Reader) (hashmoji.Input, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	switch o.Mode {
	case Text:
		return o.readText(r)
	case Binary:
		return o.readBinary(r)
	case Hex:
		return readHex(r)
	default:
		return nil, fmt.Errorf("unsupported mode %v", o.Mode)
	}
}

// Encode reads r according to o and renders the result.
func (o Options) Encode(r io.Reader) (string, error) {
	in, err := o.Read(r)
	if err != nil {
		return "", err
	}
	return hashmoji.Encode(in)
}

func (o Options) readText(r io.Reader) (hashmoji.Input, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidText)
	}
	enc, err := LookupEncoding(o.encoding())
	if err != nil {
		return nil, err
	}
	text, err := enc.NewEncoder().Bytes(normalizeNewlines(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: encode as %s: %v", ErrInvalidText, o.encoding(), err)
	}
	h, err := digests.New(o.algorithm())
	if err != nil {
		return nil, err
	}
	h.Write(text)
	return hashmoji.Digest{State: h}, nil
}

func (o Options) readBinary(r io.Reader) (hashmoji.Input, error) {
	if o.NoHash {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read binary: %w", err)
		}
		return hashmoji.Bytes(raw), nil
	}
	h, err := digests.New(o.algorithm())
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("read binary: %w", err)
	}
	return hashmoji.Digest{State: h}, nil
}

func readHex(r io.Reader) (hashmoji.Input, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read hex: %w", err)
	}
	digits := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	data := make([]byte, hex.DecodedLen(len(digits)))
	if _, err := hex.Decode(data, digits); err != nil {
		return nil, fmt.Errorf("%w: decode hex: %v", ErrInvalidText, err)
	}
	return hashmoji.Bytes(data), nil
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
}

// LookupEncoding returns the text encoding with the given name. Names are
// resolved as IANA names ("us-ascii", "iso-8859-1", "utf-16le"), then as
// WHATWG labels ("cp1252", "x-sjis"). The IANA registry is consulted first
// so that "ascii" and "latin1" mean what they say rather than windows-1252.
func LookupEncoding(name string) (encoding.Encoding, error) {
	iana := name
	if alias, ok := encodingAlias[strings.ToLower(strings.TrimSpace(name))]; ok {
		iana = alias
	}
	if enc, err := ianaindex.IANA.Encoding(iana); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
}

// encodingAlias maps common names missing from the IANA registry.
var encodingAlias = map[string]string{
	"ascii": "us-ascii",
}
