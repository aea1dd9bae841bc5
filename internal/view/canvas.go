package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// layer orders what a cell shows when several draw into it; later wins.
type layer int

const (
	axisLayer layer = iota
	baseLayer
	highlightLayer
	brushLayer
	numLayers
)

// canvas is a braille buffer: each cell holds a 2x4 grid of dots, one mask
// per layer.
type canvas struct {
	w, h  int // in cells
	masks [numLayers][][]uint8
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(0, w), h: max(0, h)}
	for l := range c.masks {
		m := make([][]uint8, c.h)
		for i := range m {
			m[i] = make([]uint8, c.w)
		}
		c.masks[l] = m
	}
	return c
}

// dotsW and dotsH are the canvas size in dots.
func (c *canvas) dotsW() int { return c.w * 2 }
func (c *canvas) dotsH() int { return c.h * 4 }

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// set turns on the dot at (mx, my); out of range dots are dropped.
func (c *canvas) set(l layer, mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	c.masks[l][cy][cx] |= dotBits[rx][ry]
}

// line draws a Bresenham line between two dots.
func (c *canvas) line(l layer, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(l, x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rect outlines the dot rectangle spanned by two corners.
func (c *canvas) rect(l layer, x0, y0, x1, y1 int) {
	c.line(l, x0, y0, x1, y0)
	c.line(l, x1, y0, x1, y1)
	c.line(l, x1, y1, x0, y1)
	c.line(l, x0, y1, x0, y0)
}

// lines renders every row. A cell takes the style of the topmost layer that
// touches it and shows the union of all layers' dots. Runs of equally styled
// cells share one styled string.
func (c *canvas) lines(styles [numLayers]lipgloss.Style) []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		var run []rune
		cur := layer(-1)
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur < 0 {
				b.WriteString(string(run))
			} else {
				b.WriteString(styles[cur].Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			var mask uint8
			top := layer(-1)
			for l := axisLayer; l < numLayers; l++ {
				if m := c.masks[l][y][x]; m != 0 {
					mask |= m
					top = l
				}
			}
			if top != cur {
				flush()
				cur = top
			}
			if mask == 0 {
				run = append(run, ' ')
			} else {
				run = append(run, rune(0x2800+int(mask)))
			}
		}
		flush()
		out[y] = b.String()
	}
	return out
}

// count returns how many cells have at least one dot on l.
func (c *canvas) count(l layer) int {
	n := 0
	for _, row := range c.masks[l] {
		for _, m := range row {
			if m != 0 {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
