// Package lexiloc provides a dictionary-driven localization engine for
// markup documents.
//
// Lexiloc replaces source-language phrases embedded in HTML-like markup with
// their translations from a parallel dictionary, without touching tags,
// attributes, or text outside a fixed set of allowed elements. Matching runs
// over a multi-pattern automaton (a trie with failure links), so a single
// left-to-right pass over each text run finds the longest dictionary phrase
// starting at every position regardless of how many phrases are indexed.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/lexiloc"
//	    "github.com/ZaguanLabs/lexiloc/dictionary"
//	)
//
//	func main() {
//	    source, _ := dictionary.LoadCSV("dict/en.csv")
//	    target, _ := dictionary.LoadCSV("dict/zh.csv")
//
//	    l := lexiloc.NewLocalizer(source)
//	    page, err := l.LocalizePage(target, "<td>Orokin Vault</td>")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(page.Content) // <td>奥罗金宝库</td>
//	}
package lexiloc
