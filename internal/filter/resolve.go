package filter

import (
	"linkview/internal/data"
	"linkview/internal/selection"
)

// Resolve returns, in identifier order, the records satisfying every
// constraint in set. An empty set selects nothing. A record without a
// numeric value for a constrained attribute fails that constraint.
func Resolve(store *data.Store, set Set) selection.Selection {
	if store == nil || len(set) == 0 {
		return selection.Selection{}
	}
	out := selection.Selection{}
	for _, r := range store.Records() {
		if matches(r, set) {
			out = append(out, r.ID)
		}
	}
	return out
}

func matches(r data.Record, set Set) bool {
	for _, c := range set {
		v, ok := r.Num(c.Attr)
		if !ok || !c.Contains(v) {
			return false
		}
	}
	return true
}
