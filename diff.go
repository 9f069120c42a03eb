package lexiloc

// DictDiff represents the difference between two snapshots of the same
// identifier-keyed dictionary. It drives incremental regeneration: a page
// only needs rebuilding when its dictionary actually changed.
type DictDiff struct {
	// Added contains identifiers present only in the new snapshot.
	Added []string

	// Removed contains identifiers present only in the old snapshot.
	Removed []string

	// Changed contains identifiers whose phrase text differs between
	// snapshots.
	Changed []string
}

// DiffStats contains summary counts for a dictionary diff.
type DiffStats struct {
	Added   int
	Removed int
	Changed int
}

// Stats returns summary statistics for the diff.
func (d *DictDiff) Stats() DiffStats {
	return DiffStats{
		Added:   len(d.Added),
		Removed: len(d.Removed),
		Changed: len(d.Changed),
	}
}

// HasChanges returns true if there are any differences.
func (d *DictDiff) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0
}

// DiffDictionaries compares two dictionary snapshots keyed by the same
// opaque identifiers and returns what was added, removed, or reworded.
func DiffDictionaries(old, updated map[string]string) *DictDiff {
	d := &DictDiff{}

	for id, oldPhrase := range old {
		newPhrase, ok := updated[id]
		switch {
		case !ok:
			d.Removed = append(d.Removed, id)
		case newPhrase != oldPhrase:
			d.Changed = append(d.Changed, id)
		}
	}

	for id := range updated {
		if _, ok := old[id]; !ok {
			d.Added = append(d.Added, id)
		}
	}

	return d
}
