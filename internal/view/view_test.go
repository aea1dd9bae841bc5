package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkview/internal/brush"
	"linkview/internal/data"
	"linkview/internal/selection"
)

const housing = `price,area,bedrooms,stories,furnishingstatus
1000000,100,2,1,furnished
1500000,300,3,2,semi-furnished
5000000,300,4,2,unfurnished
1200000,500,2,3,furnished
1200000,250,3,2,furnished
`

func load(t *testing.T) *data.Store {
	t.Helper()
	s, err := data.ReadCSV(strings.NewReader(housing), data.Options{Aliases: map[string]string{"rooms": "bedrooms"}})
	require.NoError(t, err)
	return s
}

func linked(t *testing.T) *Linked {
	t.Helper()
	l := NewLinked("area", "price", []string{"price", "area", "rooms", "stories"}, 3)
	l.Resize(40, 10, 40, 10)
	l.Load(load(t))
	return l
}

func assertSelection(t *testing.T, want selection.Selection, got selection.Selection) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

// dots returns where the scatter view draws record id.
func dots(t *testing.T, v *Scatter, id int) (float64, float64) {
	t.Helper()
	r, ok := v.store.Record(id)
	require.True(t, ok)
	xs, _ := v.x.Scale(v.XAttr)
	ys, _ := v.y.Scale(v.YAttr)
	xv, _ := r.Num(v.XAttr)
	yv, _ := r.Num(v.YAttr)
	return xs.Map(xv), ys.Map(yv)
}

func TestLoadPicksAttributes(t *testing.T) {
	l := linked(t)
	assert.Equal(t, "area", l.Scatter.XAttr)
	assert.Equal(t, "price", l.Scatter.YAttr)
	assert.Equal(t, []string{"price", "area", "rooms", "stories"}, l.Parallel.Dims)
	assert.Empty(t, l.Selection.Selection())
}

func TestScatterBrushHighlightsBothViews(t *testing.T) {
	l := linked(t)
	w, h := l.Scatter.Size()
	require.True(t, l.Scatter.SettleRect(brush.NewRect(0, 0, float64(2*w-1), float64(4*h-1))))
	assertSelection(t, selection.Selection{0, 1, 2, 3, 4}, l.Selection.Selection())

	assert.Greater(t, l.Scatter.draw(nil).count(highlightLayer), 0)
	assert.Equal(t, 0, l.Scatter.draw(nil).count(baseLayer))
	assert.Greater(t, l.Parallel.draw(nil).count(highlightLayer), 0)
	assert.Equal(t, 0, l.Parallel.draw(nil).count(baseLayer))

	// brush around record 1 only
	x, y := dots(t, l.Scatter, 1)
	require.True(t, l.Scatter.SettleRect(brush.NewRect(x-1, y-1, x+1, y+1)))
	assertSelection(t, selection.Selection{1}, l.Selection.Selection())
	assert.Greater(t, l.Parallel.draw(nil).count(baseLayer), 0)
}

func TestScatterClearEmptiesSelection(t *testing.T) {
	l := linked(t)
	x, y := dots(t, l.Scatter, 3)
	require.True(t, l.Scatter.SettleRect(brush.NewRect(x-2, y-2, x+2, y+2)))
	assertSelection(t, selection.Selection{3}, l.Selection.Selection())

	require.True(t, l.Scatter.ClearBrush())
	assertSelection(t, selection.Selection{}, l.Selection.Selection())
	_, active := l.Scatter.Brush()
	assert.False(t, active)
	assert.Equal(t, 0, l.Parallel.draw(nil).count(highlightLayer))
}

func TestParallelCrossFilter(t *testing.T) {
	l := linked(t)
	p := l.Parallel
	price, _ := p.prov.Scale("price")
	area, _ := p.prov.Scale("area")

	require.True(t, p.SettleAxis("price", brush.Interval{C0: price.Map(2e6), C1: price.Map(1e6)}))
	wide := l.Selection.Selection()
	assertSelection(t, selection.Selection{0, 1, 3, 4}, wide)

	require.True(t, p.SettleAxis("area", brush.Interval{C0: area.Map(360), C1: area.Map(240)}))
	narrow := l.Selection.Selection()
	assertSelection(t, selection.Selection{1, 4}, narrow)
	m := wide.Membership()
	for _, id := range narrow {
		assert.True(t, m.Has(id))
	}

	require.True(t, p.ClearAxis("area"))
	assertSelection(t, wide, l.Selection.Selection())

	require.True(t, p.ClearAll())
	assertSelection(t, selection.Selection{}, l.Selection.Selection())
}

func TestClickOverridesRanges(t *testing.T) {
	l := linked(t)
	p := l.Parallel
	price, _ := p.prov.Scale("price")
	require.True(t, p.SettleAxis("price", brush.Interval{C0: price.Map(1.3e6), C1: price.Map(1e6)}))
	assertSelection(t, selection.Selection{0, 3, 4}, l.Selection.Selection())

	// record 2 is outside the price brush, the click still wins
	x, y := dots(t, l.Scatter, 2)
	require.True(t, l.Scatter.Click(x+1, y))
	assertSelection(t, selection.Selection{2}, l.Selection.Selection())
	_, stillBrushed := p.Brushed("price")
	assert.True(t, stillBrushed)
}

func TestClickOnEmptySpaceClears(t *testing.T) {
	l := linked(t)
	x, y := dots(t, l.Scatter, 2)
	require.True(t, l.Scatter.Click(x, y))
	assertSelection(t, selection.Selection{2}, l.Selection.Selection())

	// far from every record
	require.True(t, l.Scatter.Click(-50, -50))
	assertSelection(t, selection.Selection{}, l.Selection.Selection())
}

func TestClearBrushes(t *testing.T) {
	l := linked(t)
	w, h := l.Scatter.Size()
	require.True(t, l.Scatter.SettleRect(brush.NewRect(0, 0, float64(2*w-1), float64(4*h-1))))
	price, _ := l.Parallel.prov.Scale("price")
	require.True(t, l.Parallel.SettleAxis("price", brush.Interval{C0: price.Map(5e6), C1: price.Map(1e6)}))
	require.NotEmpty(t, l.Selection.Selection())

	l.ClearBrushes()
	assertSelection(t, selection.Selection{}, l.Selection.Selection())
	_, active := l.Scatter.Brush()
	assert.False(t, active)
	assert.Equal(t, 0, l.Parallel.brush.Active())
}

func TestReloadResetsEverything(t *testing.T) {
	l := linked(t)
	price, _ := l.Parallel.prov.Scale("price")
	require.True(t, l.Parallel.SettleAxis("price", brush.Interval{C0: price.Map(2e6), C1: price.Map(1e6)}))
	require.NotEmpty(t, l.Selection.Selection())
	old := l.Selection

	l.Load(load(t))
	assert.NotSame(t, old, l.Selection)
	assertSelection(t, selection.Selection{}, l.Selection.Selection())
	_, brushed := l.Parallel.Brushed("price")
	assert.False(t, brushed)

	// brushing a different axis after reload does not bring back the old price range
	area, _ := l.Parallel.prov.Scale("area")
	require.True(t, l.Parallel.SettleAxis("area", brush.Interval{C0: area.Map(500), C1: area.Map(100)}))
	assertSelection(t, selection.Selection{0, 1, 2, 3, 4}, l.Selection.Selection())

	// writes through the old broadcaster never reach the views
	old.SetSelection(selection.Selection{0})
	assertSelection(t, selection.Selection{0, 1, 2, 3, 4}, l.Selection.Selection())
	assert.Equal(t, 0, l.Scatter.draw(nil).count(baseLayer))
}

func TestStaleGestureStateIsRejected(t *testing.T) {
	l := linked(t)
	price, _ := l.Parallel.prov.Scale("price")
	require.True(t, l.Parallel.SettleAxis("price", brush.Interval{C0: price.Map(2e6), C1: price.Map(1e6)}))

	// swap the store under the view without rebinding its brush state
	reloaded := load(t)
	l.Parallel.store = reloaded
	l.Parallel.rescale()
	assert.False(t, l.Parallel.ClearAxis("area"))

	l.Load(reloaded)
	assertSelection(t, selection.Selection{}, l.Selection.Selection())
}

func TestGestureBeforeSizingIsIgnored(t *testing.T) {
	l := NewLinked("area", "price", nil, 3)
	l.Load(load(t))
	assert.False(t, l.Scatter.SettleRect(brush.NewRect(0, 0, 10, 10)))
	_, active := l.Scatter.Brush()
	assert.False(t, active)
	assert.False(t, l.Scatter.Click(1, 1))
	assert.False(t, l.Parallel.SettleAxis("price", brush.Interval{C0: 0, C1: 10}))
	_, brushed := l.Parallel.Brushed("price")
	assert.False(t, brushed)
	assert.Empty(t, l.Selection.Selection())
}

func TestEmptyStore(t *testing.T) {
	l := NewLinked("area", "price", nil, 3)
	l.Resize(40, 10, 40, 10)
	assert.False(t, l.Scatter.SettleRect(brush.NewRect(0, 0, 10, 10)))
	assert.False(t, l.Parallel.ClearAll())
	assert.Empty(t, l.Selection.Selection())
	assert.NotEmpty(t, l.Scatter.Render(nil))
	assert.NotEmpty(t, l.Parallel.Render(nil))
}

func TestResizeKeepsBrushes(t *testing.T) {
	l := linked(t)
	x, y := dots(t, l.Scatter, 1)
	require.True(t, l.Scatter.SettleRect(brush.NewRect(x-1, y-1, x+1, y+1)))
	price, _ := l.Parallel.prov.Scale("price")
	require.True(t, l.Parallel.SettleAxis("price", brush.Interval{C0: price.Map(2e6), C1: price.Map(1e6)}))

	l.Resize(60, 20, 30, 8)
	x2, y2 := dots(t, l.Scatter, 1)
	r, active := l.Scatter.Brush()
	require.True(t, active)
	assert.Less(t, r.X0, x2)
	assert.Greater(t, r.X1, x2)
	assert.Less(t, r.Y0, y2)
	assert.Greater(t, r.Y1, y2)
	require.True(t, l.Scatter.ClearBrush())
	require.True(t, l.Scatter.SettleRect(r))
	assertSelection(t, selection.Selection{1}, l.Selection.Selection())

	set, ok := brush.Axes(&l.Parallel.brush, l.Parallel.prov)
	require.True(t, ok)
	require.Len(t, set, 1)
	assert.InDelta(t, 1e6, set[0].Lo, 1)
	assert.InDelta(t, 2e6, set[0].Hi, 1)
}

func TestCollapsedCanvasKeepsBrushes(t *testing.T) {
	l := linked(t)
	x, y := dots(t, l.Scatter, 1)
	rect := brush.NewRect(x-1, y-1, x+1, y+1)
	require.True(t, l.Scatter.SettleRect(rect))
	price, _ := l.Parallel.prov.Scale("price")
	require.True(t, l.Parallel.SettleAxis("price", brush.Interval{C0: price.Map(2e6), C1: price.Map(1e6)}))

	l.Resize(0, 10, 40, 0)
	l.Resize(40, 10, 40, 10)

	r, active := l.Scatter.Brush()
	require.True(t, active)
	assert.InDelta(t, rect.X0, r.X0, 1e-9)
	assert.InDelta(t, rect.X1, r.X1, 1e-9)
	assert.InDelta(t, rect.Y0, r.Y0, 1e-9)
	assert.InDelta(t, rect.Y1, r.Y1, 1e-9)
	require.True(t, l.Scatter.ClearBrush())
	require.True(t, l.Scatter.SettleRect(r))
	assertSelection(t, selection.Selection{1}, l.Selection.Selection())

	set, ok := brush.Axes(&l.Parallel.brush, l.Parallel.prov)
	require.True(t, ok)
	require.Len(t, set, 1)
	assert.InDelta(t, 1e6, set[0].Lo, 1)
	assert.InDelta(t, 2e6, set[0].Hi, 1)
}

func TestCycleAttributes(t *testing.T) {
	l := linked(t)
	x, y := dots(t, l.Scatter, 1)
	require.True(t, l.Scatter.SettleRect(brush.NewRect(x-1, y-1, x+1, y+1)))

	assert.Equal(t, "bedrooms", l.CycleX())
	_, active := l.Scatter.Brush()
	assert.False(t, active)
	// the selection outlives the attribute switch
	assertSelection(t, selection.Selection{1}, l.Selection.Selection())

	assert.Equal(t, "area", l.CycleY())
	assert.Equal(t, "area", l.Scatter.YAttr)
}

func TestCycleSkipsOtherAxis(t *testing.T) {
	l := linked(t)
	require.Equal(t, "price", l.Scatter.YAttr)
	// price sits between rooms and area and is never taken by x
	for _, want := range []string{"bedrooms", "stories", "rooms", "area", "bedrooms"} {
		assert.Equal(t, want, l.CycleX())
		assert.NotEqual(t, l.Scatter.XAttr, l.Scatter.YAttr)
	}
	for i := 0; i < 5; i++ {
		l.CycleY()
		assert.NotEqual(t, l.Scatter.XAttr, l.Scatter.YAttr)
	}
}

func TestNext(t *testing.T) {
	names := []string{"a", "b", "c"}
	assert.Equal(t, "c", next(names, "a", "b"))
	assert.Equal(t, "a", next(names, "c", "b"))
	assert.Equal(t, "a", next(names, "missing", "b"))
	assert.Equal(t, "b", next(names, "missing", "a"))
	assert.Equal(t, "a", next([]string{"a", "b"}, "a", "b"))
	assert.Equal(t, "x", next(nil, "x", "y"))
}

func TestAxisAt(t *testing.T) {
	l := linked(t)
	x, ok := l.Parallel.axes.Map("rooms")
	require.True(t, ok)
	d, ok := l.Parallel.AxisAt(x + 1)
	require.True(t, ok)
	assert.Equal(t, "rooms", d)
	_, ok = l.Parallel.AxisAt(x + l.Parallel.axes.Step()/2)
	assert.False(t, ok)
}

func TestRenderLabels(t *testing.T) {
	l := linked(t)
	out := l.Scatter.Render(nil)
	assert.Contains(t, out, "area")
	assert.Contains(t, out, "price")
	assert.Contains(t, out, "5M")
	assert.Len(t, strings.Split(out, "\n"), 12)

	out = l.Parallel.Render(&AxisPreview{Dim: "price", Interval: brush.Interval{C0: 0, C1: 10}})
	for _, d := range []string{"price", "area", "rooms", "stories"} {
		assert.Contains(t, out, d)
	}
	assert.Len(t, strings.Split(out, "\n"), 13)
}

func TestPickPair(t *testing.T) {
	n := []string{"a", "b", "c"}
	for _, tc := range []struct {
		x, y, wx, wy string
	}{
		{"b", "c", "b", "c"},
		{"z", "c", "a", "c"},
		{"b", "z", "b", "a"},
		{"z", "z", "a", "b"},
		{"a", "a", "a", "b"},
	} {
		x, y := PickPair(n, tc.x, tc.y)
		assert.Equal(t, tc.wx, x, "%+v", tc)
		assert.Equal(t, tc.wy, y, "%+v", tc)
	}
}

func TestPickDims(t *testing.T) {
	n := []string{"a", "b", "c", "d", "e", "f", "g"}
	assert.Equal(t, []string{"c", "a"}, PickDims(n, []string{"c", "zz", "a", "c"}))
	assert.Equal(t, n[:MaxAxes], PickDims(n, []string{"a"}))
	assert.Equal(t, []string{"x"}, PickDims([]string{"x"}, nil))
	assert.Empty(t, PickDims(nil, []string{"a", "b"}))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "13.3M", Number(13300000))
	assert.Equal(t, "0", Number(0))
}

func TestRotateAxesKeepsBrushes(t *testing.T) {
	l := linked(t)
	price, _ := l.Parallel.prov.Scale("price")
	require.True(t, l.Parallel.SettleAxis("price", brush.Interval{C0: price.Map(2e6), C1: price.Map(1e6)}))
	before := l.Selection.Selection()

	assert.Equal(t, []string{"area", "rooms", "stories", "price"}, l.RotateAxes())
	assert.Equal(t, []string{"area", "rooms", "stories", "price"}, l.Parallel.Dims)
	_, ok := l.Parallel.Brushed("price")
	assert.True(t, ok)
	x, _ := l.Parallel.axes.Map("price")
	d, ok := l.Parallel.AxisAt(x)
	require.True(t, ok)
	assert.Equal(t, "price", d)

	// settling another axis still counts the moved one
	require.True(t, l.Parallel.ClearAxis("area"))
	assertSelection(t, before, l.Selection.Selection())
}
