// Package report lays a Selection out as rows of text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/pkg/errors"

	"linkview/internal/data"
	"linkview/internal/selection"
)

// IDColumn heads the identifier column.
const IDColumn = "id"

// Columns returns columns with unknown names dropped, or every attribute of
// store when none are given.
func Columns(store *data.Store, columns []string) []string {
	var out []string
	if len(columns) == 0 {
		for _, a := range store.Attributes() {
			out = append(out, a.Name)
		}
		return out
	}
	for _, c := range columns {
		if _, ok := store.Attribute(c); ok {
			out = append(out, c)
		}
	}
	return out
}

// Rows returns the header and one row per selected record, in selection
// order. The identifier is always the first column.
func Rows(store *data.Store, sel selection.Selection, columns []string) ([]string, [][]string) {
	cols := Columns(store, columns)
	header := append([]string{IDColumn}, cols...)
	rows := make([][]string, 0, len(sel))
	for _, id := range sel {
		r, ok := store.Record(id)
		if !ok {
			continue
		}
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(r.ID))
		for _, c := range cols {
			row = append(row, r.Text(c))
		}
		rows = append(rows, row)
	}
	return header, rows
}

// Mean is the average of one attribute over the records that have a value.
type Mean struct {
	Attr  string
	Value float64
	N     int
}

type Summary struct {
	Count int
	Means []Mean
}

// Summarize counts the selection and averages each of attrs over it.
// Attributes no selected record has a value for are left out.
func Summarize(store *data.Store, sel selection.Selection, attrs []string) Summary {
	s := Summary{Count: len(sel)}
	for _, a := range attrs {
		var xs []float64
		for _, id := range sel {
			r, ok := store.Record(id)
			if !ok {
				continue
			}
			if v, ok := r.Num(a); ok {
				xs = append(xs, v)
			}
		}
		if len(xs) == 0 {
			continue
		}
		s.Means = append(s.Means, Mean{Attr: a, Value: stats.Mean(xs), N: len(xs)})
	}
	return s
}

func (s Summary) String() string {
	var b strings.Builder
	if s.Count == 1 {
		b.WriteString("1 record selected")
	} else {
		fmt.Fprintf(&b, "%d records selected", s.Count)
	}
	for i, m := range s.Means {
		if i == 0 {
			b.WriteString(" | mean")
		}
		fmt.Fprintf(&b, " %s=%s", m.Attr, strconv.FormatFloat(m.Value, 'f', -1, 64))
	}
	return b.String()
}

// WriteSelection prints the selected records as a table followed by the
// summary line.
func WriteSelection(w io.Writer, store *data.Store, sel selection.Selection, columns []string) error {
	header, rows := Rows(store, sel, columns)
	if len(rows) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		// Don't uppercase the header values.
		t.Style().Format.Header = text.FormatDefault
		t.AppendHeader(toRow(header))
		for _, r := range rows {
			t.AppendRow(toRow(r))
		}
		t.Render()
	}
	var numeric []string
	for _, c := range header[1:] {
		if a, _ := store.Attribute(c); a.Kind == data.Numeric {
			numeric = append(numeric, c)
		}
	}
	if _, err := fmt.Fprintln(w, Summarize(store, sel, numeric)); err != nil {
		return errors.Wrap(err, "writing summary")
	}
	return nil
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
