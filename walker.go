package lexiloc

import "strings"

// Walker tokenizes a markup string into tags and text runs without building
// a tree, and applies a TextTransform to the runs whose enclosing element
// context is in its allow-list. Tags, attributes, and text in other contexts
// are copied byte for byte.
//
// The walker is deliberately not a full HTML parser: no entity decoding, no
// DOM, best-effort recovery on malformed input. A Walker is stateless across
// calls and safe for concurrent use.
type Walker struct {
	allowed map[string]bool
	voids   map[string]bool
}

// NewWalker creates a walker with custom allowed and void element names.
// Names are matched case-insensitively.
func NewWalker(allowed, voids []string) *Walker {
	w := &Walker{
		allowed: make(map[string]bool, len(allowed)),
		voids:   make(map[string]bool, len(voids)),
	}
	for _, name := range allowed {
		w.allowed[strings.ToLower(name)] = true
	}
	for _, name := range voids {
		w.voids[strings.ToLower(name)] = true
	}
	return w
}

// DefaultWalker creates a walker with DefaultAllowedTags and DefaultVoidTags.
func DefaultWalker() *Walker {
	return &Walker{
		allowed: DefaultAllowedTags,
		voids:   DefaultVoidTags,
	}
}

// Walk scans doc once. Each text run between tags is passed to transform if
// any element currently open is in the allow-list, otherwise copied
// verbatim. Tags themselves are always copied verbatim.
//
// If the input ends before a tag's closing '>' is found, the remainder is
// copied untouched. A trailing text run with no further '<' is transformed
// under the same context rule as any other run.
func (w *Walker) Walk(doc string, transform TextTransform) string {
	var sb strings.Builder
	sb.Grow(len(doc))

	var stack []string
	pos := 0

	for pos < len(doc) {
		lt := strings.IndexByte(doc[pos:], '<')
		if lt < 0 {
			sb.WriteString(w.emit(doc[pos:], stack, transform))
			break
		}
		lt += pos

		if lt > pos {
			sb.WriteString(w.emit(doc[pos:lt], stack, transform))
		}

		gt := strings.IndexByte(doc[lt:], '>')
		if gt < 0 {
			// Unterminated tag: pass the rest through untransformed.
			sb.WriteString(doc[lt:])
			break
		}
		gt += lt

		tag := doc[lt : gt+1]
		sb.WriteString(tag)
		stack = w.track(stack, tag)
		pos = gt + 1
	}

	return sb.String()
}

func (w *Walker) emit(run string, stack []string, transform TextTransform) string {
	if transform == nil || !w.inAllowedContext(stack) {
		return run
	}
	return transform(run)
}

func (w *Walker) inAllowedContext(stack []string) bool {
	for _, name := range stack {
		if w.allowed[name] {
			return true
		}
	}
	return false
}

// track updates the open-element stack for one tag token. Comments,
// doctypes, and processing instructions have no stack effect, and neither do
// void or self-closing tags.
func (w *Walker) track(stack []string, tag string) []string {
	inner := strings.TrimSpace(tag[1 : len(tag)-1])
	if inner == "" || inner[0] == '!' || inner[0] == '?' {
		return stack
	}

	closing := inner[0] == '/'
	if closing {
		inner = inner[1:]
	}

	name := strings.ToLower(tagName(inner))
	if name == "" {
		return stack
	}
	if w.voids[name] || strings.HasSuffix(inner, "/") {
		return stack
	}

	if closing {
		return popTag(stack, name)
	}
	return append(stack, name)
}

// popTag removes the innermost occurrence of name from the stack. When the
// close tag does not match the top (mis-nested markup), the nearest matching
// open element is removed instead of failing. A close tag with no matching
// open element leaves the stack alone.
func popTag(stack []string, name string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return append(stack[:i], stack[i+1:]...)
		}
	}
	return stack
}

// tagName extracts the element name from tag innards: everything up to the
// first whitespace, slash, or end.
func tagName(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '/':
			return s[:i]
		}
	}
	return s
}
