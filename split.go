package hashmoji

import (
	"fmt"
	"strings"

	"github.com/creachadair/hashmoji/symtab"
)

// Split separates a rendered fingerprint into its symbols. Spaces between
// symbols are optional. Split reports an error if s contains text that is
// not a sequence of table symbols.
func Split(s string) ([]string, error) {
	var out []string
	for _, field := range strings.Fields(s) {
		for field != "" {
			sym := longestSymbol(field)
			if sym == "" {
				return nil, fmt.Errorf("no symbol matches at %q", field)
			}
			out = append(out, sym)
			field = field[len(sym):]
		}
	}
	return out, nil
}

// longestSymbol returns the longest table symbol that is a prefix of s, or "".
// Table entries are at most two runes, so at most two candidates are checked.
func longestSymbol(s string) string {
	var ends []int
	for i := range s {
		if i > 0 {
			ends = append(ends, i)
		}
		if len(ends) == 2 {
			break
		}
	}
	if len(ends) < 2 {
		ends = append(ends, len(s))
	}
	for j := len(ends) - 1; j >= 0; j-- {
		if cand := s[:ends[j]]; symtab.Index(cand) >= 0 {
			return cand
		}
	}
	return ""
}
