// Package dictionary loads identifier-keyed phrase dictionaries from disk.
//
// Source and target dictionaries for one language pair are parallel files
// keyed by the same opaque identifiers; the engine never interprets the
// identifiers themselves.
package dictionary

import "sort"

// Dictionary maps opaque identifiers to phrases for one language.
type Dictionary map[string]string

// IDs returns all identifiers in sorted order.
func (d Dictionary) IDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Phrases returns all non-empty phrase values in sorted-identifier order.
func (d Dictionary) Phrases() []string {
	phrases := make([]string, 0, len(d))
	for _, id := range d.IDs() {
		if d[id] != "" {
			phrases = append(phrases, d[id])
		}
	}
	return phrases
}
