package lexiloc

import "context"

// Pattern length bounds for dictionary phrases. Phrases outside these bounds
// are never indexed. Lengths count runes, not bytes.
const (
	MinPatternLen = 2
	MaxPatternLen = 80
)

// TextTransform rewrites a single markup text run. The walker calls it only
// for runs inside an allowed element context.
type TextTransform func(text string) string

// DefaultAllowedTags are the element names whose contained text is eligible
// for phrase substitution. Everything else passes through verbatim.
var DefaultAllowedTags = map[string]bool{
	"th": true,
	"td": true,
	"a":  true,
	"h3": true,
	"b":  true,
}

// DefaultVoidTags are elements with no closing tag and no nested content.
// They never affect the open-element stack.
var DefaultVoidTags = map[string]bool{
	"br":    true,
	"meta":  true,
	"link":  true,
	"img":   true,
	"input": true,
	"hr":    true,
}

// LocalizedPage is the result of localizing one document for one language.
type LocalizedPage struct {
	Content  string // Transformed markup
	Replaced int    // Number of phrase substitutions performed
	Phrases  int    // Number of usable phrase translations for this language
}

// Target describes one language to generate: its locale code and the
// identifier-keyed dictionary of target-language phrases.
type Target struct {
	Lang string
	Dict map[string]string
}

// PageCache stores small string values (content hashes, rendered pages)
// keyed per language, so unchanged pages can be skipped across runs.
type PageCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// GapFiller translates source phrases that have no entry in a target
// dictionary. It is an optional collaborator; the core engine never requires
// one.
type GapFiller interface {
	Fill(ctx context.Context, req FillRequest) ([]string, error)
}

// FillRequest contains the parameters for a gap-fill request. The response
// must contain exactly one translation per phrase, in order.
type FillRequest struct {
	Phrases    []string
	TargetLang string
	SourceLang string
}
