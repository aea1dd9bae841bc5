package tui

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.lo

	// Header
	title := " linkview ─ scatter × parallel coordinates "
	if m.selPath != "" {
		title += "─ " + filepath.Base(m.selPath) + " "
	}
	header := lipgloss.NewStyle().Width(lo.contentW).Render(titleStyle.Render(title))

	// Plots, or the selected records in their place
	plotW := lo.scatterW + 1 + lo.parallelW
	var plots string
	if m.showAttrs {
		plots = m.renderAttrs(plotW, lo.contentH)
	} else {
		scatterPreview, axisPreview := m.drag.preview()
		scatter := lipgloss.NewStyle().Width(lo.scatterW).Height(lo.contentH).
			Render(m.linked.Scatter.Render(scatterPreview))
		parallel := lipgloss.NewStyle().Width(lo.parallelW).Height(lo.contentH).
			Render(m.linked.Parallel.Render(axisPreview))
		plots = lipgloss.JoinHorizontal(lipgloss.Top, scatter, " ", parallel)
	}

	body := plots
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(lo.contentH).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plots)
	}

	// Footer: status, then help
	status := dimStyle.Render(" " + m.status + " ")
	helpLine := ""
	if m.helpVisible {
		helpLine = " " + m.help.View(m.keys)
	}
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, status, helpLine))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderAttrs(w, h int) string {
	if len(m.tbl.Rows()) == 0 {
		box := boxStyle.Render(m.summary + "\n" + dimStyle.Render("brush a view or click a record to select"))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
	}
	colW := 0
	for _, c := range m.tbl.Columns() {
		colW += c.Width + 3
	}
	maxW := min(w, max(32, colW))
	// value receiver; the size only applies to this render
	tbl := m.tbl
	tbl.SetWidth(maxW - 4)
	tbl.SetHeight(max(1, min(h-4, 20)))
	box := boxStyle.Width(maxW).Render(lipgloss.JoinVertical(lipgloss.Left, dimStyle.Render(m.summary), tbl.View()))
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}
