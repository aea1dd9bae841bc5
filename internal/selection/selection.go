// Package selection holds the one selection shared by every view of a
// loaded dataset.
package selection

// Selection is an ordered list of record identifiers without duplicates.
// Empty means nothing is selected.
type Selection []int

// Single is the selection of one record, as made by a point click.
func Single(id int) Selection { return Selection{id} }

// Membership is a set view of a Selection for per-record lookups.
type Membership map[int]struct{}

func (s Selection) Membership() Membership {
	m := make(Membership, len(s))
	for _, id := range s {
		m[id] = struct{}{}
	}
	return m
}

func (m Membership) Has(id int) bool {
	_, ok := m[id]
	return ok
}

func (s Selection) Empty() bool { return len(s) == 0 }

func (s Selection) Clone() Selection {
	return append(Selection{}, s...)
}

// Controller is what a view needs from the shared selection.
type Controller interface {
	SetSelection(Selection)
	Selection() Selection
}
