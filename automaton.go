package lexiloc

import "sort"

// Automaton is a multi-pattern matcher: a trie over pattern runes augmented
// with failure links and merged output sets. Construction cost is
// proportional to total pattern length; Scan is O(text length + match
// events) regardless of how many patterns are indexed.
//
// All indexing is rune (code point) based: pattern storage, scan positions,
// and match lengths count runes, never bytes or UTF-16 code units. Mixing
// units would silently misalign boundary and length computations for
// supplementary-plane characters.
//
// An Automaton is immutable after construction and safe for concurrent use.
type Automaton struct {
	nodes    []node
	patterns []string
	lengths  []int  // rune length per pattern
	ascii    []bool // pattern is ASCII letters only; boundary checks apply
}

// node lives in a flat arena addressed by int32 index; the root is index 0
// and its failure link is itself. Failure links and merged outputs form
// back-references, which the arena representation sidesteps entirely.
type node struct {
	next map[rune]int32
	fail int32
	out  []int32 // patterns ending here, directly or via suffix links
}

// MatchTable records, for every rune offset of a scanned text, the longest
// pattern starting there. Len[i] == 0 means no pattern starts at i;
// otherwise Pat[i] identifies the winning pattern (see Automaton.Pattern).
type MatchTable struct {
	Len []int
	Pat []int32
}

// NewAutomaton builds an automaton from the given patterns. Callers normally
// pre-filter with FilterPatterns.
//
// Patterns are inserted longest first (lexicographic among equal lengths),
// which makes the equal-length tie-break during a scan deterministic: the
// first candidate discovered at a position is kept and never overwritten.
func NewAutomaton(patterns []string) *Automaton {
	sorted := make([]string, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := runeLen(sorted[i]), runeLen(sorted[j])
		if li != lj {
			return li > lj
		}
		return sorted[i] < sorted[j]
	})

	a := &Automaton{
		nodes:    []node{{fail: 0}},
		patterns: sorted,
		lengths:  make([]int, len(sorted)),
		ascii:    make([]bool, len(sorted)),
	}

	for i, p := range sorted {
		runes := []rune(p)
		a.lengths[i] = len(runes)
		a.ascii[i] = asciiLettersOnly(runes)
		a.insert(runes, int32(i))
	}

	a.buildFailureLinks()
	return a
}

// insert adds one pattern's path to the trie, growing the arena as needed.
func (a *Automaton) insert(runes []rune, pat int32) {
	cur := int32(0)
	for _, r := range runes {
		next, ok := a.nodes[cur].next[r]
		if !ok {
			a.nodes = append(a.nodes, node{})
			next = int32(len(a.nodes) - 1)
			if a.nodes[cur].next == nil {
				a.nodes[cur].next = make(map[rune]int32)
			}
			a.nodes[cur].next[r] = next
		}
		cur = next
	}
	a.nodes[cur].out = append(a.nodes[cur].out, pat)
}

// buildFailureLinks computes failure links breadth-first from the root and
// merges output sets along them, so Scan reads a single output list per node
// instead of walking failure chains at match time. The traversal uses an
// explicit queue; large pattern sets would otherwise risk deep recursion.
func (a *Automaton) buildFailureLinks() {
	queue := make([]int32, 0, len(a.nodes))
	for _, child := range a.nodes[0].next {
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for r, u := range a.nodes[v].next {
			j := a.nodes[v].fail
			for j != 0 {
				if _, ok := a.nodes[j].next[r]; ok {
					break
				}
				j = a.nodes[j].fail
			}
			if next, ok := a.nodes[j].next[r]; ok && next != u {
				a.nodes[u].fail = next
			} else {
				a.nodes[u].fail = 0
			}
			a.nodes[u].out = append(a.nodes[u].out, a.nodes[a.nodes[u].fail].out...)
			queue = append(queue, u)
		}
	}
}

// Scan processes text once, left to right, and returns the longest pattern
// starting at every rune offset. The comparison is strictly "greater than",
// so a match recorded at a start is only displaced by a longer one, never by
// an equal-length one found later.
func (a *Automaton) Scan(text []rune) MatchTable {
	table := MatchTable{
		Len: make([]int, len(text)),
		Pat: make([]int32, len(text)),
	}

	cur := int32(0)
	for i, r := range text {
		for cur != 0 {
			if _, ok := a.nodes[cur].next[r]; ok {
				break
			}
			cur = a.nodes[cur].fail
		}
		if next, ok := a.nodes[cur].next[r]; ok {
			cur = next
		}

		for _, pat := range a.nodes[cur].out {
			length := a.lengths[pat]
			start := i - length + 1
			if start >= 0 && length > table.Len[start] {
				table.Len[start] = length
				table.Pat[start] = pat
			}
		}
	}

	return table
}

// Pattern returns the pattern string for an index reported in a MatchTable.
func (a *Automaton) Pattern(i int32) string {
	return a.patterns[i]
}

// PatternCount returns the number of indexed patterns.
func (a *Automaton) PatternCount() int {
	return len(a.patterns)
}

// Size returns the number of trie nodes, including the root.
func (a *Automaton) Size() int {
	return len(a.nodes)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
