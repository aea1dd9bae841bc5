package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"linkview/internal/config"
	"linkview/internal/data"
	"linkview/internal/view"
)

type Model struct {
	width  int
	height int
	lo     layout

	showSidebar bool
	helpVisible bool
	showAttrs   bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Data and the two linked views. linked is shared by every copy of the
	// model; bubbletea only ever keeps the latest.
	opts   data.Options
	split  int
	linked *view.Linked

	// gesture in progress
	drag drag

	// selected records table
	tbl     table.Model
	summary string

	keys keyMap
	help help.Model
}

// New builds the model from validated settings.
func New(cfg *config.Config) Model {
	// aliases were checked by cfg.Validate
	aliases, _ := cfg.Aliases()
	m := Model{
		helpVisible: true,
		status:      "linkview ready",
		opts:        data.Options{Aliases: aliases},
		split:       cfg.Split,
		linked:      view.NewLinked(cfg.X, cfg.Y, cfg.Dimensions, cfg.ClickRadius),
		keys:        newKeyMap(),
		help:        help.New(),
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Linked exposes the views, mainly for tests.
func (m Model) Linked() *view.Linked { return m.linked }

func (m Model) Status() string { return m.status }

// relayout recomputes the layout and resizes both canvases.
func (m *Model) relayout() {
	m.lo = computeLayout(m.width, m.height, m.showSidebar, m.split)
	m.linked.Resize(m.lo.scatter.w, m.lo.scatter.h, m.lo.parallel.w, m.lo.parallel.h)
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, m.lo.contentH-2)
	}
}
