package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			m.relayout()
			return m, nil
		case key.Matches(msg, m.keys.Open):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			return m, nil
		case key.Matches(msg, m.keys.Attrs):
			m.showAttrs = !m.showAttrs
			m.drag = drag{}
			m.refreshAttrs()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.drag = drag{}
			m.linked.ClearBrushes()
			m.refreshAttrs()
			m.status = "brushes cleared"
			return m, nil
		case key.Matches(msg, m.keys.CycleX):
			m.status = fmt.Sprintf("x: %s", m.linked.CycleX())
			return m, nil
		case key.Matches(msg, m.keys.CycleY):
			m.status = fmt.Sprintf("y: %s", m.linked.CycleY())
			return m, nil
		case key.Matches(msg, m.keys.Rotate):
			m.status = "axes: " + strings.Join(m.linked.RotateAxes(), " ")
			return m, nil
		}
		if m.showAttrs {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
