package brush

import (
	"linkview/internal/filter"
	"linkview/internal/scale"
)

// Rectangle interprets the scatter brush. It returns two constraints for an
// active rectangle and an empty set for a cleared one. ok is false when the
// gesture must be ignored: scales not ready, or state from another load.
func Rectangle(s *RectState, xDim, yDim string, x, y *scale.Provider) (set filter.Set, ok bool) {
	if !x.Ready() || !y.Ready() || s.Gen != x.Generation() || s.Gen != y.Generation() {
		return nil, false
	}
	if !s.Active {
		return filter.Set{}, true
	}
	xs, ok1 := x.Scale(xDim)
	ys, ok2 := y.Scale(yDim)
	if !ok1 || !ok2 {
		return nil, false
	}
	return filter.Set{
		constraint(xs, s.Rect.X0, s.Rect.X1),
		constraint(ys, s.Rect.Y0, s.Rect.Y1),
	}, true
}

// Axes interprets every active axis brush at once, in axis order, so
// brushing one axis never drops another's constraint. Axes without an
// interval, or without a numeric scale, add nothing.
func Axes(s *AxisState, p *scale.Provider) (set filter.Set, ok bool) {
	if !p.Ready() || s.Gen != p.Generation() {
		return nil, false
	}
	set = filter.Set{}
	for _, dim := range p.Dims() {
		iv, brushed := s.Interval(dim)
		if !brushed {
			continue
		}
		l, ok := p.Scale(dim)
		if !ok {
			continue
		}
		set = append(set, constraint(l, iv.C0, iv.C1))
	}
	return set, true
}

// constraint inverts a coordinate span and clamps it to the data extent. A
// span lying wholly outside the extent yields Lo > Hi, which matches nothing.
func constraint(l *scale.Linear, c0, c1 float64) filter.Constraint {
	a, b := l.Invert(c0), l.Invert(c1)
	if a > b {
		a, b = b, a
	}
	lo, hi := l.Domain()
	if a < lo {
		a = lo
	}
	if b > hi {
		b = hi
	}
	return filter.Constraint{Attr: l.Dim(), Lo: a, Hi: b}
}
