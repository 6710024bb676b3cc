package scan

import (
	"slices"
)

// Index is the aggregated scan result: digit string to the distinct source
// words that produced it, in first-occurrence order.
//
// An Index is not safe for concurrent mutation; Run merges worker results
// into it sequentially after the join.
type Index struct {
	keys  []string // first-occurrence order of digit strings
	words map[string][]string
	seen  map[Match]struct{}
}

func NewIndex() *Index {
	return &Index{
		words: make(map[string][]string),
		seen:  make(map[Match]struct{}),
	}
}

// Merge folds one worker's match list into the index. Callers must merge
// lists in shard-dispatch order: first-occurrence ordering of keys and
// words depends on it.
func (x *Index) Merge(matches []Match) {
	for _, m := range matches {
		if _, dup := x.seen[m]; dup {
			continue
		}
		x.seen[m] = struct{}{}
		if _, ok := x.words[m.Digits]; !ok {
			x.keys = append(x.keys, m.Digits)
		}
		x.words[m.Digits] = append(x.words[m.Digits], m.Word)
	}
}

// Len returns the number of distinct digit strings.
func (x *Index) Len() int {
	return len(x.keys)
}

// Keys returns the digit strings in first-occurrence order.
func (x *Index) Keys() []string {
	return slices.Clone(x.keys)
}

// SortedKeys returns the digit strings in lexicographic order.
func (x *Index) SortedKeys() []string {
	keys := slices.Clone(x.keys)
	slices.Sort(keys)
	return keys
}

// Words returns the words recorded for digits in first-occurrence order,
// or nil for an unknown digit string. No key ever maps to an empty list.
func (x *Index) Words(digits string) []string {
	return slices.Clone(x.words[digits])
}
