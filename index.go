package lexiloc

import "sort"

// BuildTranslationMap builds the phrase→phrase mapping for one target
// language from two dictionaries keyed by the same opaque identifiers.
//
// For every identifier with a non-empty source phrase, the target phrase is
// recorded unless it is absent, empty, or textually identical to the source
// (a no-op translation is never stored). If the same source phrase recurs
// under different identifiers, the first mapping wins; identifiers are
// visited in sorted order so "first" is deterministic.
func BuildTranslationMap(source, target map[string]string) map[string]string {
	ids := make([]string, 0, len(source))
	for id := range source {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	m := make(map[string]string, len(source))
	for _, id := range ids {
		src := source[id]
		if src == "" {
			continue
		}
		dst, ok := target[id]
		if !ok || dst == "" || dst == src {
			continue
		}
		if _, seen := m[src]; seen {
			continue
		}
		m[src] = dst
	}
	return m
}
