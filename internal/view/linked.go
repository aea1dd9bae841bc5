// Package view renders the scatter and parallel-coordinates views and keeps
// their highlighting in step with one shared selection.
package view

import (
	"log"

	"linkview/internal/data"
	"linkview/internal/selection"
)

// MaxAxes caps how many axes are picked when none of the requested
// dimensions exist.
const MaxAxes = 6

// Linked composes the two views over one store. Each load gets a new
// broadcaster that both views share.
type Linked struct {
	Store     *data.Store
	Selection *selection.Broadcaster
	Scatter   *Scatter
	Parallel  *Parallel

	wantX, wantY string
	wantDims     []string
}

// NewLinked binds both views to an empty store. x, y and dims are the
// preferred attributes; Load falls back to what a dataset actually has.
func NewLinked(x, y string, dims []string, clickRadius int) *Linked {
	l := &Linked{
		Scatter:  NewScatter(x, y, clickRadius),
		Parallel: NewParallel(dims),
		wantX:    x,
		wantY:    y,
		wantDims: dims,
	}
	l.Load(data.Empty())
	return l
}

// Load replaces the store. Scales, brushes and the selection all start over.
func (l *Linked) Load(store *data.Store) {
	l.Store = store
	l.Selection = selection.NewBroadcaster(store)

	numeric := store.NumericAttributes()
	x, y := PickPair(numeric, l.wantX, l.wantY)
	l.Scatter.XAttr, l.Scatter.YAttr = x, y
	l.Parallel.Dims = PickDims(numeric, l.wantDims)

	l.Scatter.Bind(store, l.Selection)
	l.Parallel.Bind(store, l.Selection)
	if store.Len() > 0 {
		log.Printf("loaded %s: %d records, scatter %s/%s, axes %v", store.Source(), store.Len(), x, y, l.Parallel.Dims)
	}
}

// Resize gives each view its canvas size in cells.
func (l *Linked) Resize(scatterW, scatterH, parallelW, parallelH int) {
	l.Scatter.Resize(scatterW, scatterH)
	l.Parallel.Resize(parallelW, parallelH)
}

// ClearBrushes drops every brush in both views and empties the selection.
func (l *Linked) ClearBrushes() {
	l.Scatter.brush.Clear()
	l.Parallel.brush.ClearAll()
	l.Selection.Clear()
}

// RotateAxes moves the first parallel axis to the end. Brushes stay on
// their axes.
func (l *Linked) RotateAxes() []string {
	dims := l.Parallel.Dims
	if len(dims) < 2 {
		return dims
	}
	rotated := append(append([]string(nil), dims[1:]...), dims[0])
	l.Parallel.SetDimensions(rotated)
	return rotated
}

// CycleX moves the scatter x attribute to the next numeric attribute.
func (l *Linked) CycleX() string {
	x := next(l.Store.NumericAttributes(), l.Scatter.XAttr, l.Scatter.YAttr)
	l.Scatter.SetAttributes(x, l.Scatter.YAttr)
	return x
}

// CycleY moves the scatter y attribute to the next numeric attribute.
func (l *Linked) CycleY() string {
	y := next(l.Store.NumericAttributes(), l.Scatter.YAttr, l.Scatter.XAttr)
	l.Scatter.SetAttributes(l.Scatter.XAttr, y)
	return y
}

// next returns the name after cur, wrapping around and never landing on
// other. cur is kept when there is nothing else to move to.
func next(names []string, cur, other string) string {
	start := -1
	for i, n := range names {
		if n == cur {
			start = i
			break
		}
	}
	for k := 1; k <= len(names); k++ {
		n := names[(start+k+len(names))%len(names)]
		if n != other && n != cur {
			return n
		}
	}
	return cur
}

// PickPair returns x and y when both are available, otherwise the first
// numeric attributes not already taken.
func PickPair(numeric []string, x, y string) (string, string) {
	has := map[string]bool{}
	for _, n := range numeric {
		has[n] = true
	}
	if !has[x] {
		x = ""
	}
	if !has[y] || y == x {
		y = ""
	}
	for _, n := range numeric {
		if x == "" && n != y {
			x = n
		} else if y == "" && n != x {
			y = n
		}
	}
	return x, y
}

// PickDims keeps the requested dimensions that exist, in order. With fewer
// than two left it uses the first MaxAxes numeric attributes instead.
func PickDims(numeric, want []string) []string {
	has := map[string]bool{}
	for _, n := range numeric {
		has[n] = true
	}
	var out []string
	for _, d := range want {
		if has[d] {
			out = append(out, d)
			has[d] = false
		}
	}
	if len(out) >= 2 {
		return out
	}
	if len(numeric) > MaxAxes {
		return append([]string(nil), numeric[:MaxAxes]...)
	}
	return append([]string(nil), numeric...)
}
