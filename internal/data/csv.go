package data

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadCSV reads a CSV file whose first row is the header.
func LoadCSV(path string, opts Options) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadCSV(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "csv %s", path)
	}
	s.source = path
	return s, nil
}

// ReadCSV parses CSV from r. Ragged rows are accepted; missing cells are
// empty values.
func ReadCSV(r io.Reader, opts Options) (*Store, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	return Build("", recs[0], recs[1:], opts), nil
}
