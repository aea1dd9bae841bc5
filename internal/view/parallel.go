package view

import (
	"log"
	"math"
	"strings"

	"linkview/internal/brush"
	"linkview/internal/data"
	"linkview/internal/filter"
	"linkview/internal/scale"
	"linkview/internal/selection"
)

// ParallelTop is the number of label rows above the canvas.
const ParallelTop = 2

// AxisPreview is an in-progress drag on one axis.
type AxisPreview struct {
	Dim      string
	Interval brush.Interval
}

// Parallel draws each record as a polyline across one vertical axis per
// dimension. Every axis can hold its own brush.
type Parallel struct {
	Dims []string

	store *data.Store
	ctl   selection.Controller
	prov  *scale.Provider
	axes  *scale.Point
	brush brush.AxisState
	// scales the brush intervals were last expressed in; nil until sized
	brushProv *scale.Provider

	selected selection.Membership

	w, h int
}

func NewParallel(dims []string) *Parallel {
	p := &Parallel{Dims: dims, store: data.Empty()}
	p.rescale()
	return p
}

// Bind attaches the view to a freshly loaded store and its broadcaster,
// dropping every axis brush from the previous load.
func (v *Parallel) Bind(store *data.Store, bc *selection.Broadcaster) {
	v.store = store
	v.ctl = bc
	v.brush.Reset(store.Generation())
	v.brushProv = nil
	v.rescale()
	v.carry()
	bc.Subscribe(func(sel selection.Selection) {
		// a broadcaster from an earlier load no longer styles this view
		if v.ctl == selection.Controller(bc) {
			v.selected = sel.Membership()
		}
	})
}

// SetDimensions replaces the axes. Brushes on axes that remain are kept.
func (v *Parallel) SetDimensions(dims []string) {
	v.Dims = dims
	v.rescale()
	v.carry()
}

// Resize sets the canvas size in cells and carries brushes over. While the
// canvas has no area the brushes are left untouched.
func (v *Parallel) Resize(w, h int) {
	if w == v.w && h == v.h {
		return
	}
	v.w, v.h = max(0, w), max(0, h)
	v.rescale()
	v.carry()
}

// carry moves the brushes onto the current scales once they are ready.
func (v *Parallel) carry() {
	if !v.prov.Ready() {
		return
	}
	if v.brushProv != nil {
		v.brush.Rescale(v.brushProv, v.prov)
	}
	v.brushProv = v.prov
}

func (v *Parallel) rescale() {
	var yr float64
	if v.w > 0 && v.h > 0 {
		yr = float64(4*v.h - 1)
	}
	v.prov = scale.NewProvider(v.store, v.Dims, yr, 0)
	v.axes = scale.NewPoint(v.Dims, 0, float64(2*v.w))
}

func (v *Parallel) Size() (w, h int) { return v.w, v.h }

// AxisAt returns the axis drawn near dot column mx.
func (v *Parallel) AxisAt(mx float64) (string, bool) {
	tol := math.Min(4, v.axes.Step()/2)
	return v.axes.Nearest(mx, tol)
}

// Brushed returns the interval on dim, if it is brushed.
func (v *Parallel) Brushed(dim string) (brush.Interval, bool) { return v.brush.Interval(dim) }

// SettleAxis handles the end of a drag on one axis. Every other active axis
// brush still applies.
func (v *Parallel) SettleAxis(dim string, iv brush.Interval) bool {
	prev, had := v.brush.Interval(dim)
	v.brush.Set(dim, iv)
	if v.settle() {
		return true
	}
	if had {
		v.brush.Set(dim, prev)
	} else {
		v.brush.Clear(dim)
	}
	return false
}

// ClearAxis removes the brush on dim and recomputes from the rest.
func (v *Parallel) ClearAxis(dim string) bool {
	prev, had := v.brush.Interval(dim)
	v.brush.Clear(dim)
	if v.settle() {
		return true
	}
	if had {
		v.brush.Set(dim, prev)
	}
	return false
}

// ClearAll removes every axis brush, which empties the selection.
func (v *Parallel) ClearAll() bool {
	v.brush.ClearAll()
	return v.settle()
}

func (v *Parallel) settle() bool {
	set, ok := brush.Axes(&v.brush, v.prov)
	if !ok || v.ctl == nil {
		log.Printf("parallel: gesture ignored (scales not ready)")
		return false
	}
	sel := filter.Resolve(v.store, set)
	log.Printf("parallel: %s -> %d records", set, len(sel))
	v.ctl.SetSelection(sel)
	return true
}

// Render draws axis names, top values, the canvas and bottom values.
func (v *Parallel) Render(preview *AxisPreview) string {
	c := v.draw(preview)
	names := blank(v.w)
	tops := blank(v.w)
	bottoms := blank(v.w)
	for _, d := range v.axes.Names() {
		x, _ := v.axes.Map(d)
		col := int(x) / 2
		place(names, col, d)
		if l, ok := v.prov.Scale(d); ok {
			lo, hi := l.Domain()
			place(tops, col, Number(hi))
			place(bottoms, col, Number(lo))
		}
	}
	rows := make([]string, 0, v.h+3)
	rows = append(rows, titleStyle.Render(string(names)), labelStyle.Render(string(tops)))
	rows = append(rows, c.lines(layerStyles)...)
	rows = append(rows, labelStyle.Render(string(bottoms)))
	return strings.Join(rows, "\n")
}

// draw lays out axes, then unselected and selected polylines, then brushes.
// A record missing a value breaks its line at that axis.
func (v *Parallel) draw(preview *AxisPreview) *canvas {
	c := newCanvas(v.w, v.h)
	if !v.prov.Ready() {
		return c
	}
	type axis struct {
		x int
		l *scale.Linear
	}
	axes := make([]axis, 0, len(v.Dims))
	for _, d := range v.Dims {
		x, ok := v.axes.Map(d)
		if !ok {
			continue
		}
		xi := int(x)
		c.line(axisLayer, xi, 0, xi, c.dotsH()-1)
		l, _ := v.prov.Scale(d)
		axes = append(axes, axis{x: xi, l: l})
	}
	for _, r := range v.store.Records() {
		ly := baseLayer
		if v.selected.Has(r.ID) {
			ly = highlightLayer
		}
		px, py, prev := 0, 0, false
		for _, a := range axes {
			if a.l == nil {
				prev = false
				continue
			}
			val, ok := r.Num(a.l.Dim())
			if !ok {
				prev = false
				continue
			}
			y := int(math.Round(a.l.Map(val)))
			if prev {
				c.line(ly, px, py, a.x, y)
			} else {
				c.set(ly, a.x, y)
			}
			px, py, prev = a.x, y, true
		}
	}
	for _, d := range v.Dims {
		if preview != nil && preview.Dim == d {
			v.drawInterval(c, d, preview.Interval)
			continue
		}
		if iv, ok := v.brush.Interval(d); ok {
			v.drawInterval(c, d, iv)
		}
	}
	return c
}

func (v *Parallel) drawInterval(c *canvas, dim string, iv brush.Interval) {
	x, ok := v.axes.Map(dim)
	if !ok {
		return
	}
	xi := int(x)
	y0, y1 := int(math.Round(iv.C0)), int(math.Round(iv.C1))
	for dx := -1; dx <= 1; dx++ {
		c.line(brushLayer, xi+dx, y0, xi+dx, y1)
	}
}
