package selection

import "linkview/internal/data"

// Broadcaster owns the current Selection of one loaded store and tells its
// subscribers about every change. There is one per load; a reload gets a new,
// empty one.
type Broadcaster struct {
	store   *data.Store
	current Selection
	subs    []func(Selection)
}

var _ Controller = (*Broadcaster)(nil)

func NewBroadcaster(store *data.Store) *Broadcaster {
	if store == nil {
		store = data.Empty()
	}
	return &Broadcaster{store: store, current: Selection{}}
}

func (b *Broadcaster) Store() *data.Store { return b.store }

// Subscribe registers fn to run after every SetSelection, in registration
// order. fn is also called once right away with the current selection.
func (b *Broadcaster) Subscribe(fn func(Selection)) {
	b.subs = append(b.subs, fn)
	fn(b.current.Clone())
}

// SetSelection replaces the current selection. Identifiers unknown to the
// store and repeats are dropped; order is otherwise kept.
func (b *Broadcaster) SetSelection(sel Selection) {
	next := make(Selection, 0, len(sel))
	seen := make(map[int]bool, len(sel))
	for _, id := range sel {
		if !b.store.Has(id) || seen[id] {
			continue
		}
		seen[id] = true
		next = append(next, id)
	}
	b.current = next
	for _, fn := range b.subs {
		fn(next.Clone())
	}
}

// Selection returns a copy of the current selection.
func (b *Broadcaster) Selection() Selection { return b.current.Clone() }

// Clear is SetSelection with an empty selection.
func (b *Broadcaster) Clear() { b.SetSelection(nil) }
