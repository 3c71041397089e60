// Package symtab holds the ordered table of pictographic symbols used to
// render digests as hashmoji strings.
//
// Each entry is written in source as one or two Unicode code point
// references in "U+XXXX" form. A two-reference entry, such as a flag built
// from a pair of regional indicators or a keycap built from a digit and
// U+20E3, denotes a single visual symbol whose code points are emitted
// consecutively. Callers of this package see only the finished display
// strings.
package symtab

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Len is the number of entries in the table.
const Len = 842

// maxRefs is the most code points a single entry may combine.
const maxRefs = 2

// symbols holds the display strings for refs, in the same order.
var symbols = mustBuild(refs[:])

// At returns the display string for entry i of the table.
// It panics if i is not in the range [0, Len).
func At(i int) string { return symbols[i] }

// Refs returns the code point references for entry i of the table, in the
// "U+XXXX" or "U+XXXX U+YYYY" form. It panics if i is not in [0, Len).
func Refs(i int) string { return refs[i] }

// All returns a copy of the display strings in table order.
func All() []string { return append([]string(nil), symbols[:]...) }

// Index reports the table position of the given display string, or -1 if it
// is not present.
func Index(sym string) int {
	for i, s := range symbols {
		if s == sym {
			return i
		}
	}
	return -1
}

// ParseRef converts a table entry in reference form into its display string.
// The entry must consist of one or two "U+XXXX" references separated by a
// single space.
func ParseRef(s string) (string, error) {
	parts := strings.Split(s, " ")
	if len(parts) > maxRefs {
		return "", fmt.Errorf("entry %q has %d references, at most %d allowed", s, len(parts), maxRefs)
	}
	var sb strings.Builder
	for _, p := range parts {
		r, err := parseCodePoint(p)
		if err != nil {
			return "", fmt.Errorf("entry %q: %w", s, err)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// ErrBadRef is reported by ParseRef for a malformed code point reference.
var ErrBadRef = errors.New("invalid code point reference")

func parseCodePoint(p string) (rune, error) {
	hex, ok := strings.CutPrefix(p, "U+")
	if !ok || hex == "" {
		return 0, fmt.Errorf("%w %q", ErrBadRef, p)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrBadRef, p)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("%w %q (not a valid rune)", ErrBadRef, p)
	}
	return r, nil
}

func mustBuild(src []string) *[Len]string {
	if len(src) != Len {
		panic(fmt.Sprintf("symtab: table has %d entries, want %d", len(src), Len))
	}
	var out [Len]string
	for i, ref := range src {
		sym, err := ParseRef(ref)
		if err != nil {
			panic(fmt.Sprintf("symtab: entry %d: %v", i, err))
		}
		out[i] = sym
	}
	return &out
}
