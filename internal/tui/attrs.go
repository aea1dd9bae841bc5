package tui

import (
	table "github.com/charmbracelet/bubbles/table"

	"linkview/internal/report"
)

const maxColW = 24

// refreshAttrs rebuilds the summary line and, when the table is shown, its
// rows from the current selection.
func (m *Model) refreshAttrs() {
	l := m.linked
	sel := l.Selection.Selection()
	m.summary = report.Summarize(l.Store, sel, l.Parallel.Dims).String()
	if !m.showAttrs {
		return
	}
	header, rows := report.Rows(l.Store, sel, nil)
	tcols := make([]table.Column, 0, len(header))
	for i, c := range header {
		w := len(c) + 2
		for _, r := range rows {
			w = max(w, len(r[i])+1)
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row(r))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	m.tbl.GotoTop()
}
