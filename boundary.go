package lexiloc

// BoundarySafe reports whether the match of pattern pat starting at the given
// rune offset may be substituted without corrupting a surrounding word.
//
// The guard only applies to patterns made entirely of ASCII letters: if the
// rune immediately before the match or immediately after it is itself an
// ASCII letter, the match sits inside a larger Latin word (a two-letter code
// inside "DRAGON", say) and is rejected. Patterns containing spaces, digits,
// or non-Latin script always pass.
func (a *Automaton) BoundarySafe(text []rune, start int, pat int32) bool {
	if !a.ascii[pat] {
		return true
	}
	if start > 0 && isASCIILetter(text[start-1]) {
		return false
	}
	end := start + a.lengths[pat]
	if end < len(text) && isASCIILetter(text[end]) {
		return false
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func asciiLettersOnly(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !isASCIILetter(r) {
			return false
		}
	}
	return true
}
