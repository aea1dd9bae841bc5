// Package scale maps record values to drawing coordinates and back.
package scale

import "linkview/internal/data"

// Provider holds one view's scales, all sharing a drawing range. It is bound
// to the store generation it was computed from; a reload makes it stale.
type Provider struct {
	gen    uint64
	dims   []string
	scales map[string]*Linear
	r0, r1 float64
}

// NewProvider computes extents for dims over store. Dimensions without a
// single numeric value get no scale.
func NewProvider(store *data.Store, dims []string, r0, r1 float64) *Provider {
	p := &Provider{
		gen:    store.Generation(),
		dims:   append([]string(nil), dims...),
		scales: make(map[string]*Linear, len(dims)),
		r0:     r0,
		r1:     r1,
	}
	for _, d := range dims {
		if l, ok := NewLinear(d, store.Column(d), r0, r1); ok {
			p.scales[d] = l
		}
	}
	return p
}

func (p *Provider) Generation() uint64 { return p.gen }

func (p *Provider) Dims() []string { return p.dims }

// Ready reports whether the provider can interpret gestures: it has a
// non-empty drawing range and at least one scale.
func (p *Provider) Ready() bool {
	return p != nil && p.r0 != p.r1 && len(p.scales) > 0
}

// Scale returns the scale for dim.
func (p *Provider) Scale(dim string) (*Linear, bool) {
	if p == nil {
		return nil, false
	}
	l, ok := p.scales[dim]
	return l, ok
}
