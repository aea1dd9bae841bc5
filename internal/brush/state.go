// Package brush turns brush gestures, given in drawing coordinates, into
// constraint sets. Views own the state structs; the interpreters keep none.
package brush

import "linkview/internal/scale"

// Interval is a span along one axis in drawing coordinates.
type Interval struct {
	C0, C1 float64
}

// Rect is a gesture rectangle in drawing coordinates, X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a Rect from two corners in any order.
func NewRect(ax, ay, bx, by float64) Rect {
	if ax > bx {
		ax, bx = bx, ax
	}
	if ay > by {
		ay, by = by, ay
	}
	return Rect{X0: ax, Y0: ay, X1: bx, Y1: by}
}

// RectState is the scatter view's brush: one rectangle or none.
type RectState struct {
	Gen    uint64
	Active bool
	Rect   Rect
}

// Reset forgets the rectangle and stamps the state with a store generation.
func (s *RectState) Reset(gen uint64) {
	*s = RectState{Gen: gen}
}

func (s *RectState) Set(r Rect) {
	s.Active = true
	s.Rect = r
}

func (s *RectState) Clear() {
	s.Active = false
	s.Rect = Rect{}
}

// Rescale moves the rectangle from one pair of providers to another so it
// keeps covering the same values.
func (s *RectState) Rescale(xDim, yDim string, fromX, fromY, toX, toY *scale.Provider) {
	if !s.Active {
		return
	}
	fx, ok1 := fromX.Scale(xDim)
	fy, ok2 := fromY.Scale(yDim)
	tx, ok3 := toX.Scale(xDim)
	ty, ok4 := toY.Scale(yDim)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		s.Clear()
		return
	}
	r := s.Rect
	s.Rect = NewRect(
		tx.Map(fx.Invert(r.X0)), ty.Map(fy.Invert(r.Y0)),
		tx.Map(fx.Invert(r.X1)), ty.Map(fy.Invert(r.Y1)),
	)
}

// AxisState is the parallel-coordinates view's brushes: one interval per
// brushed axis.
type AxisState struct {
	Gen       uint64
	intervals map[string]Interval
}

func (s *AxisState) Reset(gen uint64) {
	s.Gen = gen
	s.intervals = nil
}

// Set brushes dim, replacing any interval it had. Other axes keep theirs.
func (s *AxisState) Set(dim string, iv Interval) {
	if s.intervals == nil {
		s.intervals = map[string]Interval{}
	}
	s.intervals[dim] = iv
}

func (s *AxisState) Clear(dim string) { delete(s.intervals, dim) }

func (s *AxisState) ClearAll() { s.intervals = nil }

func (s *AxisState) Interval(dim string) (Interval, bool) {
	iv, ok := s.intervals[dim]
	return iv, ok
}

// Active returns the number of brushed axes.
func (s *AxisState) Active() int { return len(s.intervals) }

// Rescale moves every interval from one provider to another. Axes the new
// provider has no scale for are dropped.
func (s *AxisState) Rescale(from, to *scale.Provider) {
	for dim, iv := range s.intervals {
		f, ok1 := from.Scale(dim)
		t, ok2 := to.Scale(dim)
		if !ok1 || !ok2 {
			delete(s.intervals, dim)
			continue
		}
		s.intervals[dim] = Interval{C0: t.Map(f.Invert(iv.C0)), C1: t.Map(f.Invert(iv.C1))}
	}
}
