package tui

import "linkview/internal/view"

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// panel is a canvas rectangle in screen cells.
type panel struct {
	x, y, w, h int
}

func (p panel) contains(cx, cy int) bool {
	return cx >= p.x && cx < p.x+p.w && cy >= p.y && cy < p.y+p.h
}

// local converts a screen cell to canvas cells, clamped to the canvas.
func (p panel) local(cx, cy int) (int, int) {
	return clamp(cx-p.x, 0, p.w-1), clamp(cy-p.y, 0, p.h-1)
}

// layout is where everything goes for one terminal size. View and the mouse
// handling both read it, so they always agree.
type layout struct {
	contentW, contentH int
	plotX              int
	scatterW           int // scatter column including its gutter
	parallelW          int
	scatter, parallel  panel
}

func computeLayout(width, height int, sidebar bool, split int) layout {
	var lo layout
	lo.contentW = max(10, width)
	lo.contentH = max(4, height-headerHeight-footerHeight)
	if sidebar {
		lo.plotX = sidebarWidth + 1
	}
	plotW := max(10, lo.contentW-lo.plotX)
	lo.scatterW = plotW * split / 100
	lo.parallelW = max(0, plotW-lo.scatterW-1)
	lo.scatter = panel{
		x: lo.plotX + view.ScatterGutter,
		y: headerHeight + view.ScatterTop,
		w: max(0, lo.scatterW-view.ScatterGutter),
		h: max(0, lo.contentH-view.ScatterTop-1),
	}
	lo.parallel = panel{
		x: lo.plotX + lo.scatterW + 1,
		y: headerHeight + view.ParallelTop,
		w: lo.parallelW,
		h: max(0, lo.contentH-view.ParallelTop-1),
	}
	return lo
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
