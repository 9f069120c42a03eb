package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/ZaguanLabs/lexiloc"
)

// IndexEntry is one language row on the index page.
type IndexEntry struct {
	Code   string // Normalized locale code ("zh_CN")
	Lang   string // HTML lang attribute value ("zh-CN")
	Dir    string // "ltr" or "rtl"
	Name   string // English display name
	Native string // The language's own name for itself
	Href   string // Relative link to the localized page
}

// IndexData is the template input for the language index page.
type IndexData struct {
	Title     string
	Generator string
	Entries   []IndexEntry
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="generator" content="{{.Generator}}">
</head>
<body>
<h1>{{.Title}}</h1>
<ul>
{{range .Entries}}<li><a href="{{.Href}}" lang="{{.Lang}}" dir="{{.Dir}}">{{.Native}}</a> ({{.Name}})</li>
{{end}}</ul>
</body>
</html>
`))

// IndexEntries builds index rows for the given language codes, resolving
// display names and text direction.
func IndexEntries(langCodes []string) []IndexEntry {
	entries := make([]IndexEntry, 0, len(langCodes))
	for _, code := range langCodes {
		normalized := lexiloc.NormalizeLocale(code)
		entries = append(entries, IndexEntry{
			Code:   normalized,
			Lang:   lexiloc.ToHTMLLang(normalized),
			Dir:    lexiloc.GetDirection(normalized),
			Name:   lexiloc.DisplayName(normalized),
			Native: lexiloc.NativeName(normalized),
			Href:   PageFileName(normalized),
		})
	}
	return entries
}

// WriteIndex renders the language index page to dir/index.html.
func WriteIndex(dir, title string, langCodes []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if title == "" {
		title = "Translations"
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index page: %w", err)
	}
	defer f.Close()

	data := IndexData{
		Title:     title,
		Generator: lexiloc.UserAgent(),
		Entries:   IndexEntries(langCodes),
	}
	if err := indexTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("rendering index page: %w", err)
	}
	return nil
}
