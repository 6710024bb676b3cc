// Package digitindex answers exact and prefix queries against an
// aggregated scan result, for finding which words produced a digit string
// once a scan has been persisted.
package digitindex

import (
	"sort"

	"github.com/derekparker/trie"

	"leetscan/scan"
)

// Index holds every digit string of a scan result in a trie.
type Index struct {
	t *trie.Trie
}

// Entry is one digit string with the words that produced it.
type Entry struct {
	Digits string
	Words  []string
}

// New loads all digit strings of result into a fresh index.
func New(result *scan.Index) *Index {
	t := trie.New()
	for _, digits := range result.Keys() {
		t.Add(digits, result.Words(digits))
	}
	return &Index{t: t}
}

// Words returns the words recorded for exactly digits, or nil.
func (x *Index) Words(digits string) []string {
	node, ok := x.t.Find(digits)
	if !ok {
		return nil
	}
	words, _ := node.Meta().([]string)
	return words
}

// WithPrefix returns every entry whose digit string starts with prefix, in
// sorted digit-string order. An empty prefix returns all entries.
func (x *Index) WithPrefix(prefix string) []Entry {
	keys := x.t.Keys()
	if prefix != "" {
		keys = x.t.PrefixSearch(prefix)
	}
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, digits := range keys {
		entries = append(entries, Entry{Digits: digits, Words: x.Words(digits)})
	}
	return entries
}
