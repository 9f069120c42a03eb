package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ZaguanLabs/lexiloc"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDictionaryIDs(t *testing.T) {
	d := Dictionary{
		"item.void":   "Void",
		"item.orokin": "Orokin",
		"item.forma":  "Forma",
	}

	want := []string{"item.forma", "item.orokin", "item.void"}
	if got := d.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestDictionaryPhrases(t *testing.T) {
	d := Dictionary{
		"item.void":   "Void",
		"item.orokin": "Orokin",
		"item.empty":  "",
	}

	want := []string{"Orokin", "Void"}
	if got := d.Phrases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Phrases() = %v, want %v", got, want)
	}
}

func TestReadCSV(t *testing.T) {
	data := strings.Join([]string{
		`item.orokin,Orokin`,
		`item.orokin_vault,Orokin Vault`,
		`item.comma,"Vault, Orokin"`,
		`item.extra,Extra,ignored-column`,
		`short-row`,
		`item.orokin,Orokin Override`,
	}, "\n")

	dict, err := ReadCSV(strings.NewReader(data), "test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Dictionary{
		"item.orokin":       "Orokin Override", // later row wins
		"item.orokin_vault": "Orokin Vault",
		"item.comma":        "Vault, Orokin",
		"item.extra":        "Extra",
	}
	if !reflect.DeepEqual(dict, want) {
		t.Errorf("ReadCSV() = %v, want %v", dict, want)
	}
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "dict.csv", "item.void,Void\nitem.orokin,Orokin\n")

	dict, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dict) != 2 || dict["item.void"] != "Void" {
		t.Errorf("LoadCSV() = %v", dict)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))

	var dictErr *lexiloc.DictionaryError
	if !errors.As(err, &dictErr) {
		t.Fatalf("err = %v, want DictionaryError", err)
	}
	if dictErr.Path == "" {
		t.Error("DictionaryError should carry the path")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "dict.json", `{
		"item.orokin": "Orokin",
		"Items": {
			"AB": "Orokin Vault",
			"CD": "Void Relic",
			"Count": 3
		},
		"ignored": 42
	}`)

	dict, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Dictionary{
		"item.orokin": "Orokin",
		"Items.AB":    "Orokin Vault",
		"Items.CD":    "Void Relic",
	}
	if !reflect.DeepEqual(dict, want) {
		t.Errorf("LoadJSON() = %v, want %v", dict, want)
	}
}

func TestLoadJSONInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"unterminated": `},
		{"array root", `["not", "an", "object"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tt.content)

			_, err := LoadJSON(path)
			var dictErr *lexiloc.DictionaryError
			if !errors.As(err, &dictErr) {
				t.Fatalf("err = %v, want DictionaryError", err)
			}
		})
	}
}
