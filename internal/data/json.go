package data

import (
	"io"
	"os"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// LoadJSON reads a file holding a JSON array of flat objects.
func LoadJSON(path string, opts Options) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadJSON(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "json %s", path)
	}
	s.source = path
	return s, nil
}

// ReadJSON decodes an array of objects. Columns are the union of keys,
// sorted by name; numbers and nested values are kept as their JSON text.
func ReadJSON(r io.Reader, opts Options) (*Store, error) {
	var objs []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&objs); err != nil {
		return nil, errors.Wrap(err, "decode records")
	}
	seen := map[string]bool{}
	var header []string
	for _, o := range objs {
		for k := range o {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}
	sort.Strings(header)
	rows := make([][]string, 0, len(objs))
	for _, o := range objs {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = jsonText(o[k])
		}
		rows = append(rows, row)
	}
	return Build("", header, rows, opts), nil
}

func jsonText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
