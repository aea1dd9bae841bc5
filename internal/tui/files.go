package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"linkview/internal/data"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !data.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath replaces the dataset. On error the current one stays.
func (m *Model) loadPath(p string) {
	store, err := data.Load(p, m.opts)
	if err != nil {
		log.Printf("load %s: %v", p, err)
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.drag = drag{}
	m.linked.Load(store)
	m.status = fmt.Sprintf("loaded: %s  records=%d  attrs=%d  numeric=%d",
		filepath.Base(p), store.Len(), len(store.Attributes()), len(store.NumericAttributes()))
	m.refreshAttrs()
}
