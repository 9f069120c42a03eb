package lexiloc

import (
	"context"
	"sort"
)

// Localizer is the main localization engine. It owns the pattern automaton
// built once from the source-language dictionary; the automaton is read-only
// after construction and shared across per-language generations.
type Localizer struct {
	source     map[string]string // identifier → source-language phrase
	sourceLang string
	automaton  *Automaton
	walker     *Walker
	cache      PageCache
	filler     GapFiller
	allowed    []string
	voids      []string
}

// LocalizerOption is a functional option for configuring the Localizer.
type LocalizerOption func(*Localizer)

// WithSourceLang sets the source language code (default: "en").
func WithSourceLang(lang string) LocalizerOption {
	return func(l *Localizer) {
		l.sourceLang = lang
	}
}

// WithCache sets the page cache used to skip unchanged pages.
func WithCache(cache PageCache) LocalizerOption {
	return func(l *Localizer) {
		l.cache = cache
	}
}

// WithGapFiller sets an optional backend that translates source phrases
// missing from a target dictionary before generation.
func WithGapFiller(filler GapFiller) LocalizerOption {
	return func(l *Localizer) {
		l.filler = filler
	}
}

// WithAllowedTags overrides the element names whose text is transformed.
func WithAllowedTags(tags []string) LocalizerOption {
	return func(l *Localizer) {
		l.allowed = tags
	}
}

// WithVoidTags overrides the element names treated as void/self-closing.
func WithVoidTags(tags []string) LocalizerOption {
	return func(l *Localizer) {
		l.voids = tags
	}
}

// NewLocalizer creates a Localizer from the identifier-keyed source-language
// dictionary. Phrases are filtered with IndexablePattern and indexed into
// the automaton up front.
func NewLocalizer(source map[string]string, opts ...LocalizerOption) *Localizer {
	l := &Localizer{
		source:     source,
		sourceLang: "en",
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.allowed == nil && l.voids == nil {
		l.walker = DefaultWalker()
	} else {
		allowed := l.allowed
		if allowed == nil {
			allowed = tagNames(DefaultAllowedTags)
		}
		voids := l.voids
		if voids == nil {
			voids = tagNames(DefaultVoidTags)
		}
		l.walker = NewWalker(allowed, voids)
	}

	l.automaton = NewAutomaton(FilterPatterns(sortedPhrases(source)))
	return l
}

// LocalizePage localizes one document for one target language. The target
// dictionary is keyed by the same identifiers as the source dictionary.
func (l *Localizer) LocalizePage(target map[string]string, doc string) (*LocalizedPage, error) {
	translations := BuildTranslationMap(l.source, target)
	sub := NewSubstitutor(l.automaton, translations)
	content := l.walker.Walk(doc, sub.Apply)

	return &LocalizedPage{
		Content:  content,
		Replaced: sub.Replaced(),
		Phrases:  len(translations),
	}, nil
}

// FillGaps asks the configured GapFiller to translate every indexable source
// phrase that has no usable entry in target, and returns a completed copy of
// target. Without a filler it returns target unchanged.
func (l *Localizer) FillGaps(ctx context.Context, targetLang string, target map[string]string) (map[string]string, error) {
	if l.filler == nil {
		return target, nil
	}

	var missingIDs []string
	for _, id := range sortedIDs(l.source) {
		src := l.source[id]
		if src == "" || !IndexablePattern(src) {
			continue
		}
		if dst, ok := target[id]; !ok || dst == "" {
			missingIDs = append(missingIDs, id)
		}
	}
	if len(missingIDs) == 0 {
		return target, nil
	}

	phrases := make([]string, len(missingIDs))
	for i, id := range missingIDs {
		phrases[i] = l.source[id]
	}

	results, err := l.filler.Fill(ctx, FillRequest{
		Phrases:    phrases,
		TargetLang: targetLang,
		SourceLang: l.sourceLang,
	})
	if err != nil {
		return nil, err
	}
	if len(results) != len(phrases) {
		return nil, &CountMismatchError{Expected: len(phrases), Got: len(results)}
	}

	filled := make(map[string]string, len(target)+len(missingIDs))
	for id, phrase := range target {
		filled[id] = phrase
	}
	for i, id := range missingIDs {
		filled[id] = results[i]
	}
	return filled, nil
}

// NeedsUpdate reports whether the page for targetLang must be regenerated,
// based on the stored content hash of the source document. Without a cache
// every page needs generating.
func (l *Localizer) NeedsUpdate(targetLang, doc string) bool {
	if l.cache == nil {
		return true
	}
	stored, ok := l.cache.Get(PageKey(targetLang))
	return !ok || stored != HashText(doc)
}

// MarkGenerated records the source document's hash for targetLang, so the
// next run can skip the page if the source is unchanged.
func (l *Localizer) MarkGenerated(targetLang, doc string) error {
	if l.cache == nil {
		return nil
	}
	return l.cache.Set(PageKey(targetLang), HashText(doc))
}

// SourceLang returns the source language code.
func (l *Localizer) SourceLang() string {
	return l.sourceLang
}

// Automaton returns the shared pattern automaton.
func (l *Localizer) Automaton() *Automaton {
	return l.automaton
}

// sortedPhrases returns dictionary values in sorted-identifier order, so
// automaton construction sees a deterministic sequence.
func sortedPhrases(dict map[string]string) []string {
	ids := sortedIDs(dict)
	phrases := make([]string, len(ids))
	for i, id := range ids {
		phrases[i] = dict[id]
	}
	return phrases
}

func sortedIDs(dict map[string]string) []string {
	ids := make([]string, 0, len(dict))
	for id := range dict {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func tagNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	return names
}
