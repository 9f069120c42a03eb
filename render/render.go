// Package render writes localized pages and the language index to disk.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ZaguanLabs/lexiloc"
)

// PageFileName returns the output file name for a target language
// ("zh_CN" → "zh_CN.html").
func PageFileName(langCode string) string {
	return lexiloc.NormalizeLocale(langCode) + ".html"
}

// WritePage writes one localized page under dir, creating dir if needed.
func WritePage(dir, langCode, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(dir, PageFileName(langCode))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ExtractTitle returns the document's <title> text, falling back to the
// first <h1>. Returns "" when neither exists or the document cannot be
// parsed. Only the index page uses this; the localization core never parses
// a DOM.
func ExtractTitle(doc string) string {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(parsed.Find("title").First().Text()); title != "" {
		return title
	}

	var h1 string
	parsed.Find("h1").EachWithBreak(func(i int, s *goquery.Selection) bool {
		h1 = strings.TrimSpace(nodeText(s.Nodes))
		return h1 == ""
	})
	return h1
}

// nodeText concatenates the text content of the given nodes, depth first.
func nodeText(nodes []*html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return sb.String()
}
