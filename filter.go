package lexiloc

import (
	"strings"
	"unicode"
)

// IndexablePattern reports whether a dictionary phrase is worth indexing in
// the automaton. Phrases that fail here are silently excluded at build time
// and never reach the scanner.
//
// A phrase qualifies when its rune length is within [MinPatternLen,
// MaxPatternLen], it contains at least one letter, it spans a single line,
// and it is not a bare roman numeral (item ranks like "IV" or "XII" would
// otherwise shred unrelated text).
func IndexablePattern(s string) bool {
	if strings.ContainsAny(s, "\r\n") {
		return false
	}

	n := 0
	hasLetter := false
	for _, r := range s {
		n++
		if n > MaxPatternLen {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}

	if n < MinPatternLen || !hasLetter {
		return false
	}

	return !isRomanNumeral(s)
}

// FilterPatterns returns the phrases that pass IndexablePattern, preserving
// input order.
func FilterPatterns(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if IndexablePattern(p) {
			out = append(out, p)
		}
	}
	return out
}

// isRomanNumeral reports whether s consists solely of uppercase roman numeral
// letters. The check is case-sensitive on purpose: lowercase words like "mix"
// or "civil" must not be caught.
func isRomanNumeral(s string) bool {
	for _, r := range s {
		switch r {
		case 'I', 'V', 'X', 'L', 'C', 'D', 'M':
		default:
			return false
		}
	}
	return s != ""
}
