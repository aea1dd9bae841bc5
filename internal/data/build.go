package data

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Options control how raw rows become a Store.
type Options struct {
	// Aliases exposes a source column under another name, e.g.
	// {"rooms": "bedrooms"}. The source column keeps its own name too.
	Aliases map[string]string
}

// Build assigns identifiers in row order, infers attribute kinds and coerces
// numeric text. header fixes the column order; rows shorter than the header
// get empty values.
func Build(source string, header []string, rows [][]string, opts Options) *Store {
	s := Empty()
	s.source = source

	cols := make([]string, 0, len(header)+len(opts.Aliases))
	src := make([]int, 0, cap(cols))
	seen := map[string]bool{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		cols = append(cols, h)
		src = append(src, i)
	}
	// aliases in header order of their source column
	for i, h := range header {
		h = strings.TrimSpace(h)
		for _, alias := range aliasesOf(opts.Aliases, h) {
			if seen[alias] {
				continue
			}
			seen[alias] = true
			cols = append(cols, alias)
			src = append(src, i)
		}
	}

	kinds := make([]Kind, len(cols))
	for c := range cols {
		parsed, bad := 0, 0
		for _, row := range rows {
			t := cell(row, src[c])
			if t == "" {
				continue
			}
			if _, ok := parseNum(t); ok {
				parsed++
			} else {
				bad++
			}
		}
		if parsed > 0 && parsed >= bad {
			kinds[c] = Numeric
		}
	}

	s.attrs = make([]Attribute, len(cols))
	for c, name := range cols {
		s.attrs[c] = Attribute{Name: name, Kind: kinds[c]}
		s.byName[name] = c
	}

	s.records = make([]Record, len(rows))
	for id, row := range rows {
		r := Record{ID: id, text: make(map[string]string, len(cols)), nums: map[string]float64{}}
		for c, name := range cols {
			t := cell(row, src[c])
			r.text[name] = t
			if kinds[c] != Numeric {
				continue
			}
			if v, ok := parseNum(t); ok {
				r.nums[name] = v
			}
		}
		s.records[id] = r
	}
	return s
}

func aliasesOf(aliases map[string]string, column string) []string {
	var out []string
	for alias, col := range aliases {
		if col == column {
			out = append(out, alias)
		}
	}
	// map order is random; keep the store layout stable
	sort.Strings(out)
	return out
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseNum(t string) (float64, bool) {
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
