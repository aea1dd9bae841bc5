package scale

import "math"

// Point spreads an ordered list of names evenly across a range, with half a
// step of padding at both ends.
type Point struct {
	names []string
	index map[string]int
	r0    float64
	step  float64
}

func NewPoint(names []string, r0, r1 float64) *Point {
	p := &Point{names: names, index: make(map[string]int, len(names)), r0: r0}
	for i, n := range names {
		p.index[n] = i
	}
	if len(names) > 0 {
		p.step = (r1 - r0) / float64(len(names))
	}
	return p
}

func (p *Point) Names() []string { return p.names }

func (p *Point) Step() float64 { return p.step }

// Map returns the coordinate of name.
func (p *Point) Map(name string) (float64, bool) {
	i, ok := p.index[name]
	if !ok {
		return 0, false
	}
	return p.r0 + p.step/2 + float64(i)*p.step, true
}

// Nearest returns the name positioned closest to c, provided it lies within
// tol of c.
func (p *Point) Nearest(c, tol float64) (string, bool) {
	best, bestD := "", math.Inf(1)
	for _, n := range p.names {
		x, _ := p.Map(n)
		if d := math.Abs(x - c); d < bestD {
			best, bestD = n, d
		}
	}
	if best == "" || bestD > tol {
		return "", false
	}
	return best, true
}
