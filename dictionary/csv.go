package dictionary

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/ZaguanLabs/lexiloc"
)

// LoadCSV reads a dictionary from a two-column CSV file: identifier, phrase.
// Extra columns are ignored; rows with fewer than two columns are skipped.
// Later rows for the same identifier overwrite earlier ones.
func LoadCSV(path string) (Dictionary, error) {
	f, err := os.Open(path) // #nosec G304 - dictionary paths are user-provided
	if err != nil {
		return nil, &lexiloc.DictionaryError{
			Path:    path,
			Message: "cannot open",
			Cause:   err,
		}
	}
	defer f.Close()

	return ReadCSV(f, path)
}

// ReadCSV parses CSV dictionary data from a reader. The path argument is
// only used in error messages.
func ReadCSV(r io.Reader, path string) (Dictionary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Rows may carry trailing columns

	dict := make(Dictionary)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &lexiloc.DictionaryError{
				Path:    path,
				Message: "malformed CSV",
				Cause:   err,
			}
		}
		if len(record) < 2 {
			continue
		}
		dict[record[0]] = record[1]
	}

	return dict, nil
}
