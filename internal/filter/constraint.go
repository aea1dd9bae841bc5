// Package filter turns attribute range constraints into record selections.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Constraint is an inclusive range on one numeric attribute. A constraint
// with Lo > Hi matches nothing.
type Constraint struct {
	Attr string
	Lo   float64
	Hi   float64
}

func (c Constraint) Contains(v float64) bool { return v >= c.Lo && v <= c.Hi }

func (c Constraint) String() string {
	return fmt.Sprintf("%s=%g:%g", c.Attr, c.Lo, c.Hi)
}

// Set is an ordered conjunction of constraints, at most one per attribute.
type Set []Constraint

// With returns a copy of s where c replaces any constraint on the same
// attribute, keeping its position, or is appended.
func (s Set) With(c Constraint) Set {
	out := make(Set, 0, len(s)+1)
	replaced := false
	for _, e := range s {
		if e.Attr == c.Attr {
			out = append(out, c)
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, c)
	}
	return out
}

// Without returns a copy of s with no constraint on attr.
func (s Set) Without(attr string) Set {
	out := make(Set, 0, len(s))
	for _, e := range s {
		if e.Attr != attr {
			out = append(out, e)
		}
	}
	return out
}

func (s Set) Get(attr string) (Constraint, bool) {
	for _, e := range s {
		if e.Attr == attr {
			return e, true
		}
	}
	return Constraint{}, false
}

func (s Set) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// ParseConstraint reads "attr=lo:hi". Bounds given in reverse order are
// swapped.
func ParseConstraint(s string) (Constraint, error) {
	attr, rng, ok := strings.Cut(s, "=")
	attr = strings.TrimSpace(attr)
	if !ok || attr == "" {
		return Constraint{}, errors.Errorf("constraint %q: want attr=lo:hi", s)
	}
	los, his, ok := strings.Cut(rng, ":")
	if !ok {
		return Constraint{}, errors.Errorf("constraint %q: want attr=lo:hi", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(los), 64)
	if err != nil {
		return Constraint{}, errors.Wrapf(err, "constraint %q: lower bound", s)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(his), 64)
	if err != nil {
		return Constraint{}, errors.Wrapf(err, "constraint %q: upper bound", s)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Constraint{Attr: attr, Lo: lo, Hi: hi}, nil
}

// ParseSet parses each range and merges them; a later range on the same
// attribute replaces an earlier one.
func ParseSet(ranges []string) (Set, error) {
	var s Set
	for _, r := range ranges {
		c, err := ParseConstraint(r)
		if err != nil {
			return nil, err
		}
		s = s.With(c)
	}
	return s, nil
}
