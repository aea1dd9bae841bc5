package data

import "sync/atomic"

// Kind is the value type of an attribute.
type Kind int

const (
	Categorical Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

type Attribute struct {
	Name string
	Kind Kind
}

// Record is one row of the dataset. ID is its position in load order.
type Record struct {
	ID   int
	text map[string]string
	nums map[string]float64
}

// Num returns the numeric value of attr. ok is false when the attribute is
// missing or its text did not parse as a number.
func (r Record) Num(attr string) (v float64, ok bool) {
	v, ok = r.nums[attr]
	return v, ok
}

// Text returns the raw text of attr.
func (r Record) Text(attr string) string { return r.text[attr] }

var generations atomic.Uint64

// Store is the immutable record set of one loaded dataset. A reload builds a
// new Store; nothing mutates one in place.
type Store struct {
	source  string
	gen     uint64
	attrs   []Attribute
	byName  map[string]int
	records []Record
}

// Empty returns a store with no attributes and no records.
func Empty() *Store {
	return &Store{gen: generations.Add(1), byName: map[string]int{}}
}

func (s *Store) Source() string { return s.source }

// Generation identifies this load. Two stores never share a generation.
func (s *Store) Generation() uint64 { return s.gen }

func (s *Store) Len() int { return len(s.records) }

func (s *Store) Records() []Record { return s.records }

func (s *Store) Record(id int) (Record, bool) {
	if id < 0 || id >= len(s.records) {
		return Record{}, false
	}
	return s.records[id], true
}

// Has reports whether id belongs to this store.
func (s *Store) Has(id int) bool { return id >= 0 && id < len(s.records) }

func (s *Store) Attributes() []Attribute { return s.attrs }

func (s *Store) Attribute(name string) (Attribute, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Attribute{}, false
	}
	return s.attrs[i], true
}

// NumericAttributes returns the names of numeric attributes in column order.
func (s *Store) NumericAttributes() []string {
	var out []string
	for _, a := range s.attrs {
		if a.Kind == Numeric {
			out = append(out, a.Name)
		}
	}
	return out
}

// Column returns the parsed values of a numeric attribute, skipping records
// whose value is missing or malformed.
func (s *Store) Column(attr string) []float64 {
	out := make([]float64, 0, len(s.records))
	for _, r := range s.records {
		if v, ok := r.Num(attr); ok {
			out = append(out, v)
		}
	}
	return out
}
