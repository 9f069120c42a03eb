package lexiloc

import "strings"

// Substitutor rewrites a single text run by replacing dictionary phrases
// with their translations. It composes the automaton scan, the word-boundary
// guard, and the translation map into one TextTransform suitable for
// Walker.Walk.
//
// A Substitutor accumulates a replacement count across calls and is not safe
// for concurrent use; build one per language generation.
type Substitutor struct {
	automaton    *Automaton
	translations map[string]string
	replaced     int
}

// NewSubstitutor creates a substitutor over a shared automaton and one
// language's phrase→phrase translation map.
func NewSubstitutor(a *Automaton, translations map[string]string) *Substitutor {
	return &Substitutor{
		automaton:    a,
		translations: translations,
	}
}

// Apply scans text once, then walks it left to right. At each position with
// a best match that passes the boundary guard and has a non-empty
// translation, the translation is emitted and the cursor advances by the
// match length; otherwise the single current rune is emitted and the cursor
// advances by one. Output length differs from input length only at accepted,
// translated matches.
func (s *Substitutor) Apply(text string) string {
	runes := []rune(text)
	table := s.automaton.Scan(runes)

	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(runes); {
		if length := table.Len[i]; length > 0 && s.automaton.BoundarySafe(runes, i, table.Pat[i]) {
			phrase := s.automaton.Pattern(table.Pat[i])
			if translated := s.translations[phrase]; translated != "" {
				sb.WriteString(translated)
				s.replaced++
				i += length
				continue
			}
		}
		sb.WriteRune(runes[i])
		i++
	}

	return sb.String()
}

// Replaced returns the number of substitutions performed so far.
func (s *Substitutor) Replaced() int {
	return s.replaced
}
