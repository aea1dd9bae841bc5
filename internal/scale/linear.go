package scale

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Linear maps one numeric dimension's extent onto a drawing range. The range
// may run backwards (r1 < r0), which is how y axes grow upward on screen.
type Linear struct {
	dim      string
	min, max float64 // data extent
	lin      scale.Linear
	r0, r1   float64
}

// NewLinear builds a scale over values. A degenerate extent is padded so the
// mapping stays invertible over the whole range. ok is false when values is
// empty.
func NewLinear(dim string, values []float64, r0, r1 float64) (*Linear, bool) {
	if len(values) == 0 {
		return nil, false
	}
	lo, hi := stats.Bounds(values)
	return newLinear(dim, lo, hi, r0, r1), true
}

func newLinear(dim string, lo, hi, r0, r1 float64) *Linear {
	l := &Linear{dim: dim, min: lo, max: hi, r0: r0, r1: r1}
	dlo, dhi := lo, hi
	if dlo == dhi {
		pad := math.Max(0.5, math.Abs(dlo)*1e-3)
		dlo, dhi = dlo-pad, dhi+pad
	}
	l.lin = scale.Linear{Min: dlo, Max: dhi}
	return l
}

func (l *Linear) Dim() string { return l.dim }

// Domain returns the data extent, without padding.
func (l *Linear) Domain() (min, max float64) { return l.min, l.max }

// Range returns the drawing range as given.
func (l *Linear) Range() (r0, r1 float64) { return l.r0, l.r1 }

// Map converts a value to a coordinate.
func (l *Linear) Map(v float64) float64 {
	return l.r0 + l.lin.Map(v)*(l.r1-l.r0)
}

// Invert converts a coordinate back to a value. The result is not clamped.
func (l *Linear) Invert(c float64) float64 {
	if l.r1 == l.r0 {
		return l.lin.Unmap(0.5)
	}
	return l.lin.Unmap((c - l.r0) / (l.r1 - l.r0))
}

// Clamp limits v to the data extent.
func (l *Linear) Clamp(v float64) float64 {
	return math.Min(math.Max(v, l.min), l.max)
}

// Ticks returns at most n round values inside the padded domain.
func (l *Linear) Ticks(n int) []float64 {
	if n < 1 {
		return nil
	}
	major, _ := l.lin.Ticks(scale.TickOptions{Max: n})
	lo, hi := l.lin.Min, l.lin.Max
	var out []float64
	for _, t := range major {
		if t >= lo && t <= hi {
			out = append(out, t)
		}
	}
	return out
}
