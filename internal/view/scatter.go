package view

import (
	"fmt"
	"log"
	"math"
	"strings"

	"linkview/internal/brush"
	"linkview/internal/data"
	"linkview/internal/filter"
	"linkview/internal/scale"
	"linkview/internal/selection"
)

// ScatterGutter is the width of the y label column left of the canvas, and
// ScatterTop the rows above it.
const (
	ScatterGutter = 8
	ScatterTop    = 1
)

// Scatter plots two numeric attributes against each other. It owns its
// scales and brush; the selection it only reads and writes through the
// controller it was bound with.
type Scatter struct {
	XAttr, YAttr string

	store *data.Store
	ctl   selection.Controller
	x, y  *scale.Provider
	brush brush.RectState
	// scales the brush rectangle was last expressed in; nil until sized
	brushX, brushY *scale.Provider

	selected selection.Membership

	w, h        int // canvas cells
	clickRadius float64
}

// NewScatter returns an unbound view. clickRadius is in dots.
func NewScatter(xAttr, yAttr string, clickRadius int) *Scatter {
	return &Scatter{
		XAttr:       xAttr,
		YAttr:       yAttr,
		store:       data.Empty(),
		clickRadius: float64(max(1, clickRadius)),
	}
}

// Bind attaches the view to a freshly loaded store and its broadcaster. Any
// brush from the previous load is dropped.
func (v *Scatter) Bind(store *data.Store, bc *selection.Broadcaster) {
	v.store = store
	v.ctl = bc
	v.brush.Reset(store.Generation())
	v.brushX, v.brushY = nil, nil
	v.rescale()
	v.carry()
	bc.Subscribe(func(sel selection.Selection) {
		// a broadcaster from an earlier load no longer styles this view
		if v.ctl == selection.Controller(bc) {
			v.selected = sel.Membership()
		}
	})
}

// Resize sets the canvas size in cells and carries the brush over to the
// new scales. While the canvas has no area the brush is left untouched.
func (v *Scatter) Resize(w, h int) {
	if w == v.w && h == v.h {
		return
	}
	v.w, v.h = max(0, w), max(0, h)
	v.rescale()
	v.carry()
}

// carry moves the brush onto the current scales once they are ready.
func (v *Scatter) carry() {
	if !v.x.Ready() || !v.y.Ready() {
		return
	}
	if v.brushX != nil {
		v.brush.Rescale(v.XAttr, v.YAttr, v.brushX, v.brushY, v.x, v.y)
	}
	v.brushX, v.brushY = v.x, v.y
}

// SetAttributes switches the plotted attributes. The brush no longer means
// anything on the new axes and is dropped; the selection stays.
func (v *Scatter) SetAttributes(xAttr, yAttr string) {
	v.XAttr, v.YAttr = xAttr, yAttr
	v.brush.Clear()
	v.rescale()
	v.carry()
}

func (v *Scatter) rescale() {
	var xr, yr float64
	if v.w > 0 && v.h > 0 {
		xr, yr = float64(2*v.w-1), float64(4*v.h-1)
	}
	v.x = scale.NewProvider(v.store, []string{v.XAttr}, 0, xr)
	v.y = scale.NewProvider(v.store, []string{v.YAttr}, yr, 0)
}

// Size returns the canvas size in cells.
func (v *Scatter) Size() (w, h int) { return v.w, v.h }

// Brush returns the active rectangle, if any.
func (v *Scatter) Brush() (brush.Rect, bool) { return v.brush.Rect, v.brush.Active }

// SettleRect handles the end of a rectangle drag. It reports whether the
// selection was recomputed.
func (v *Scatter) SettleRect(r brush.Rect) bool {
	prev := v.brush
	v.brush.Set(r)
	if !v.settle() {
		v.brush = prev
		return false
	}
	return true
}

// ClearBrush removes the rectangle, which empties the selection.
func (v *Scatter) ClearBrush() bool {
	prev := v.brush
	v.brush.Clear()
	if !v.settle() {
		v.brush = prev
		return false
	}
	return true
}

func (v *Scatter) settle() bool {
	set, ok := brush.Rectangle(&v.brush, v.XAttr, v.YAttr, v.x, v.y)
	if !ok || v.ctl == nil {
		log.Printf("scatter: gesture ignored (scales not ready)")
		return false
	}
	sel := filter.Resolve(v.store, set)
	log.Printf("scatter: %s -> %d records", set, len(sel))
	v.ctl.SetSelection(sel)
	return true
}

// Click selects the record drawn nearest to dot (mx, my) if it lies within
// the click radius, bypassing the brush. A click on empty space clears the
// brush instead.
func (v *Scatter) Click(mx, my float64) bool {
	if !v.x.Ready() || !v.y.Ready() || v.ctl == nil {
		return false
	}
	id, ok := v.nearest(mx, my)
	if !ok {
		return v.ClearBrush()
	}
	v.brush.Clear()
	log.Printf("scatter: picked record %d", id)
	v.ctl.SetSelection(selection.Single(id))
	return true
}

func (v *Scatter) nearest(mx, my float64) (int, bool) {
	xs, ok1 := v.x.Scale(v.XAttr)
	ys, ok2 := v.y.Scale(v.YAttr)
	if !ok1 || !ok2 {
		return 0, false
	}
	best, bestD := -1, math.Inf(1)
	for _, r := range v.store.Records() {
		xv, okx := r.Num(v.XAttr)
		yv, oky := r.Num(v.YAttr)
		if !okx || !oky {
			continue
		}
		d := math.Hypot(xs.Map(xv)-mx, ys.Map(yv)-my)
		if d < bestD {
			best, bestD = r.ID, d
		}
	}
	if best < 0 || bestD > v.clickRadius {
		return 0, false
	}
	return best, true
}

// Render draws the panel: title row, y labels with the canvas, x labels.
// preview is an in-progress drag, drawn but not yet settled.
func (v *Scatter) Render(preview *brush.Rect) string {
	c := v.draw(preview)
	xs, okx := v.x.Scale(v.XAttr)
	ys, oky := v.y.Scale(v.YAttr)

	rows := make([]string, 0, v.h+2)
	rows = append(rows, titleStyle.Render(fmt.Sprintf(" %s ↑  vs  %s →", v.YAttr, v.XAttr)))
	plot := c.lines(layerStyles)
	gutter := v.yLabels(ys, oky, len(plot))
	for i, line := range plot {
		g := strings.Repeat(" ", ScatterGutter)
		if label, ok := gutter[i]; ok {
			g = fmt.Sprintf("%*s ", ScatterGutter-1, label)
		}
		rows = append(rows, labelStyle.Render(g)+line)
	}
	foot := blank(ScatterGutter + v.w)
	if okx {
		lo, hi := xs.Domain()
		lt, ht := Number(lo), Number(hi)
		place(foot, ScatterGutter+len([]rune(lt))/2, lt)
		place(foot, ScatterGutter+v.w/2, v.XAttr)
		place(foot, ScatterGutter+v.w-1-len([]rune(ht))/2, ht)
	}
	rows = append(rows, labelStyle.Render(string(foot)))
	return strings.Join(rows, "\n")
}

// yLabels puts the extent on the first and last rows and round tick values
// on the rows between, keyed by row.
func (v *Scatter) yLabels(ys *scale.Linear, ok bool, rows int) map[int]string {
	out := map[int]string{}
	if !ok || rows == 0 {
		return out
	}
	for _, t := range ys.Ticks(max(2, rows/4)) {
		row := int(math.Round(ys.Map(t))) / 4
		if row > 0 && row < rows-1 {
			out[row] = Number(t)
		}
	}
	lo, hi := ys.Domain()
	out[0] = Number(hi)
	out[rows-1] = Number(lo)
	return out
}

// draw plots every record on a fresh canvas, selected ones on the highlight
// layer, and the brush (or the preview) on top.
func (v *Scatter) draw(preview *brush.Rect) *canvas {
	c := newCanvas(v.w, v.h)
	xs, okx := v.x.Scale(v.XAttr)
	ys, oky := v.y.Scale(v.YAttr)
	if okx && oky {
		for _, r := range v.store.Records() {
			xv, ok1 := r.Num(v.XAttr)
			yv, ok2 := r.Num(v.YAttr)
			if !ok1 || !ok2 {
				continue
			}
			l := baseLayer
			if v.selected.Has(r.ID) {
				l = highlightLayer
			}
			c.set(l, int(math.Round(xs.Map(xv))), int(math.Round(ys.Map(yv))))
		}
	}
	if preview != nil {
		drawRect(c, *preview)
	} else if v.brush.Active {
		drawRect(c, v.brush.Rect)
	}
	return c
}

func drawRect(c *canvas, r brush.Rect) {
	c.rect(brushLayer, int(math.Round(r.X0)), int(math.Round(r.Y0)), int(math.Round(r.X1)), int(math.Round(r.Y1)))
}
