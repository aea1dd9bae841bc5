package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"linkview/internal/brush"
	"linkview/internal/view"
)

type dragKind int

const (
	dragNone dragKind = iota
	dragScatter
	dragAxis
)

// drag is a mouse gesture between press and release, in canvas cells.
type drag struct {
	kind   dragKind
	dim    string
	x0, y0 int
	x1, y1 int
	moved  bool
}

// cellRect covers every dot of the cells between two corners.
func cellRect(x0, y0, x1, y1 int) brush.Rect {
	return brush.NewRect(
		float64(min(x0, x1)*2), float64(min(y0, y1)*4),
		float64(max(x0, x1)*2+1), float64(max(y0, y1)*4+3),
	)
}

// cellSpan covers every dot row of the cells between y0 and y1.
func cellSpan(y0, y1 int) brush.Interval {
	return brush.Interval{C0: float64(min(y0, y1) * 4), C1: float64(max(y0, y1)*4 + 3)}
}

// preview returns the in-progress brushes to draw, if any.
func (d drag) preview() (*brush.Rect, *view.AxisPreview) {
	if !d.moved {
		return nil, nil
	}
	switch d.kind {
	case dragScatter:
		r := cellRect(d.x0, d.y0, d.x1, d.y1)
		return &r, nil
	case dragAxis:
		return nil, &view.AxisPreview{Dim: d.dim, Interval: cellSpan(d.y0, d.y1)}
	}
	return nil, nil
}

func (m *Model) mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.press(msg.X, msg.Y)
	case tea.MouseActionMotion:
		if m.drag.kind == dragNone {
			return
		}
		p := m.lo.scatter
		if m.drag.kind == dragAxis {
			p = m.lo.parallel
		}
		x, y := p.local(msg.X, msg.Y)
		if x != m.drag.x0 || y != m.drag.y0 {
			m.drag.moved = true
		}
		m.drag.x1, m.drag.y1 = x, y
	case tea.MouseActionRelease:
		d := m.drag
		m.drag = drag{}
		if d.kind != dragNone {
			m.settle(d)
		}
	}
}

func (m *Model) press(cx, cy int) {
	// the table covers both views
	if m.showAttrs {
		return
	}
	switch {
	case m.lo.scatter.contains(cx, cy):
		x, y := m.lo.scatter.local(cx, cy)
		m.drag = drag{kind: dragScatter, x0: x, y0: y, x1: x, y1: y}
	case m.lo.parallel.contains(cx, cy):
		x, y := m.lo.parallel.local(cx, cy)
		dim, ok := m.linked.Parallel.AxisAt(float64(x*2) + 0.5)
		if !ok {
			return
		}
		m.drag = drag{kind: dragAxis, dim: dim, x0: x, y0: y, x1: x, y1: y}
	}
}

// settle hands a finished gesture to its view. A press and release in the
// same cell is a click.
func (m *Model) settle(d drag) {
	v := m.linked
	var ok bool
	switch d.kind {
	case dragScatter:
		if d.moved {
			ok = v.Scatter.SettleRect(cellRect(d.x0, d.y0, d.x1, d.y1))
		} else {
			ok = v.Scatter.Click(float64(d.x0*2)+0.5, float64(d.y0*4)+1.5)
		}
	case dragAxis:
		if d.moved {
			ok = v.Parallel.SettleAxis(d.dim, cellSpan(d.y0, d.y1))
		} else {
			ok = v.Parallel.ClearAxis(d.dim)
		}
	}
	if !ok {
		log.Printf("gesture on %v dropped", d.kind)
		m.status = "view not ready"
		return
	}
	m.refreshAttrs()
	m.status = m.summary
}

func (k dragKind) String() string {
	switch k {
	case dragScatter:
		return "scatter"
	case dragAxis:
		return "axis"
	}
	return "none"
}
