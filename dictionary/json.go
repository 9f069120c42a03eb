package dictionary

import (
	"os"

	"github.com/ZaguanLabs/lexiloc"
	"github.com/tidwall/gjson"
)

// LoadJSON reads a dictionary from a JSON object file. Top-level string
// values are taken directly; one level of nesting is flattened with a dotted
// identifier ("Items.AB" style), which matches how game data exports group
// their message tables. Non-string leaves are ignored.
func LoadJSON(path string) (Dictionary, error) {
	data, err := os.ReadFile(path) // #nosec G304 - dictionary paths are user-provided
	if err != nil {
		return nil, &lexiloc.DictionaryError{
			Path:    path,
			Message: "cannot read",
			Cause:   err,
		}
	}

	if !gjson.ValidBytes(data) {
		return nil, &lexiloc.DictionaryError{
			Path:    path,
			Message: "invalid JSON",
		}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &lexiloc.DictionaryError{
			Path:    path,
			Message: "top-level value is not an object",
		}
	}

	dict := make(Dictionary)
	root.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.Type == gjson.String:
			dict[key.String()] = value.String()
		case value.IsObject():
			value.ForEach(func(sub, leaf gjson.Result) bool {
				if leaf.Type == gjson.String {
					dict[key.String()+"."+sub.String()] = leaf.String()
				}
				return true
			})
		}
		return true
	})

	return dict, nil
}
