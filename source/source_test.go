package source_test

import (
	"crypto/sha1"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/hashmoji"
	"github.com/creachadair/hashmoji/digests"
	"github.com/creachadair/hashmoji/source"
)

const (
	testText = "This is my test string."
	testHash = "📱 🔢 📩 🚦📲" // SHA-1 of testText
	testHex  = "8dc102c3edef79cd0bc080c18b18a2e5637c64c3"
)

func mustEncode(t *testing.T, o source.Options, input string) string {
	t.Helper()
	got, err := o.Encode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Encode %+v %q: unexpected error: %v", o, input, err)
	}
	return got
}

func TestModes(t *testing.T) {
	tests := []struct {
		opts  source.Options
		input string
		want  string
	}{
		{source.Options{}, testText, testHash},
		{source.Options{Mode: source.Text, Algorithm: "sha1", Encoding: "utf-8"}, testText, testHash},
		{source.Options{Mode: source.Binary}, testText, testHash},
		{source.Options{Mode: source.Hex}, testHex, testHash},
		{source.Options{Mode: source.Hex}, "  8dc102c3 edef79cd\n0bc080c1\t8b18a2e5 637c64c3\n", testHash},
		{source.Options{Mode: source.Hex, Algorithm: "md5"}, testHex, testHash}, // hex never hashes
		{source.Options{Mode: source.Binary, NoHash: true}, "\x00\x00\x00\x00", "😂"},
	}
	for _, test := range tests {
		if got := mustEncode(t, test.opts, test.input); got != test.want {
			t.Errorf("Encode %+v %q: got %q, want %q", test.opts, test.input, got, test.want)
		}
	}
}

func TestTextNewlines(t *testing.T) {
	lf := mustEncode(t, source.Options{}, "one\ntwo\nthree\n")
	for _, input := range []string{"one\r\ntwo\r\nthree\r\n", "one\rtwo\rthree\r"} {
		if got := mustEncode(t, source.Options{}, input); got != lf {
			t.Errorf("Encode %q: got %q, want %q", input, got, lf)
		}
	}

	// Binary mode does not normalize.
	bin := mustEncode(t, source.Options{Mode: source.Binary}, "one\r\ntwo\r\nthree\r\n")
	if bin == lf {
		t.Errorf("Binary mode normalized line endings: %q", bin)
	}
}

func TestTextEncoding(t *testing.T) {
	// Re-encoding as UTF-16LE hashes the wide form of the text.
	h := sha1.New()
	h.Write([]byte("h\x00i\x00"))
	want, err := hashmoji.Hash(h)
	if err != nil {
		t.Fatalf("Hash: unexpected error: %v", err)
	}
	got := mustEncode(t, source.Options{Encoding: "utf-16le"}, "hi")
	if got != want {
		t.Errorf("Encode utf-16le: got %q, want %q", got, want)
	}

	// Latin-1 text with only ASCII matches UTF-8.
	if a, b := mustEncode(t, source.Options{Encoding: "latin1"}, testText), testHash; a != b {
		t.Errorf("Encode latin1: got %q, want %q", a, b)
	}

	// Latin-1 and its aliases are ISO-8859-1, not windows-1252.
	sum := func(b string) string {
		h := sha1.New()
		h.Write([]byte(b))
		s, err := hashmoji.Hash(h)
		if err != nil {
			t.Fatalf("Hash: unexpected error: %v", err)
		}
		return s
	}
	for _, name := range []string{"latin1", "ISO-8859-1", "l1"} {
		if got, want := mustEncode(t, source.Options{Encoding: name}, "café"), sum("caf\xe9"); got != want {
			t.Errorf("Encode %s: got %q, want %q", name, got, want)
		}
	}
	if got, want := mustEncode(t, source.Options{Encoding: "windows-1252"}, "5€"), sum("5\x80"); got != want {
		t.Errorf("Encode windows-1252: got %q, want %q", got, want)
	}
	if got := mustEncode(t, source.Options{Encoding: "ascii"}, testText); got != testHash {
		t.Errorf("Encode ascii: got %q, want %q", got, testHash)
	}
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"utf-8", "ascii", "US-ASCII", "latin1", "iso-8859-1", "utf-16le", "shift_jis", "x-sjis"} {
		if enc, err := source.LookupEncoding(name); err != nil || enc == nil {
			t.Errorf("LookupEncoding(%q): got (%v, %v), want an encoding", name, enc, err)
		}
	}
	if _, err := source.LookupEncoding("klingon"); !errors.Is(err, source.ErrUnknownEncoding) {
		t.Errorf("LookupEncoding(klingon): got %v, want %v", err, source.ErrUnknownEncoding)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		opts  source.Options
		input string
		want  error
	}{
		{source.Options{NoHash: true}, "abcd", source.ErrTextNoHash},
		{source.Options{Algorithm: "nonesuch"}, "abcd", digests.ErrUnknownAlgorithm},
		{source.Options{Encoding: "klingon"}, "abcd", source.ErrUnknownEncoding},
		{source.Options{}, "\xff\xfe", source.ErrInvalidText},
		{source.Options{Encoding: "latin1"}, "fish 🐟", source.ErrInvalidText},
		{source.Options{Encoding: "latin1"}, "5€", source.ErrInvalidText},
		{source.Options{Encoding: "ascii"}, "café", source.ErrInvalidText},
		{source.Options{Encoding: "us-ascii"}, "naïve", source.ErrInvalidText},
		{source.Options{Mode: source.Binary, NoHash: true}, "abc", hashmoji.ErrInvalidByteLength},
		{source.Options{Mode: source.Hex}, "0011", hashmoji.ErrInvalidByteLength},
		{source.Options{Algorithm: "blake2b:10"}, "abcd", hashmoji.ErrIncompatibleDigest},
	}
	for _, test := range tests {
		got, err := test.opts.Encode(strings.NewReader(test.input))
		if !errors.Is(err, test.want) {
			t.Errorf("Encode %+v %q: got (%q, %v), want %v", test.opts, test.input, got, err, test.want)
		}
	}

	// Invalid hex digits are reported.
	for _, input := range []string{"xyzw", "abc"} {
		if _, err := (source.Options{Mode: source.Hex}).Read(strings.NewReader(input)); !errors.Is(err, source.ErrInvalidText) {
			t.Errorf("Read hex %q: got %v, want %v", input, err, source.ErrInvalidText)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		opts source.Options
		ok   bool
	}{
		{source.Options{}, true},
		{source.Options{Mode: source.Binary, NoHash: true}, true},
		{source.Options{Mode: source.Hex, NoHash: true}, true},
		{source.Options{Mode: source.Hex, Algorithm: "bogus"}, true}, // not hashed
		{source.Options{Mode: source.Binary, Encoding: "bogus"}, true},
		{source.Options{Mode: source.Text, NoHash: true}, false},
		{source.Options{Mode: source.Binary, Algorithm: "bogus"}, false},
	}
	for _, test := range tests {
		err := test.opts.Validate()
		if ok := err == nil; ok != test.ok {
			t.Errorf("Validate %+v: got %v, want ok=%v", test.opts, err, test.ok)
		}
	}
}

func TestMode(t *testing.T) {
	for _, name := range []string{"text", "binary", "hex", "HEX"} {
		var m source.Mode
		if err := m.Set(name); err != nil {
			t.Errorf("Set(%q): unexpected error: %v", name, err)
		} else if got := m.String(); !strings.EqualFold(got, name) {
			t.Errorf("Set(%q): got %q", name, got)
		}
	}
	var m source.Mode
	if err := m.Set("octal"); err == nil {
		t.Errorf("Set(octal): got %v, want error", m)
	}
}
