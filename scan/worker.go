package scan

import (
	"leetscan"
)

// Match pairs a digit string with the source word that produced it.
type Match struct {
	Digits string
	Word   string
}

// Shard scans one slice of the word list. It is a pure function of its
// inputs: words are visited in order, per-word matches are appended in
// matcher order, and identical inputs always yield the identical list.
func Shard(subs *leetscan.SubstitutionMap, words []string, mode leetscan.Mode, rng leetscan.Range) []Match {
	var matches []Match
	for _, word := range words {
		if mode == leetscan.WholeWord {
			if digits, ok := subs.MatchWord(word, rng); ok {
				matches = append(matches, Match{Digits: digits, Word: word})
			}
			continue
		}
		if len(word) < rng.Min {
			continue // every expansion is at least one digit
		}
		for _, digits := range subs.MatchSuffixes(word, rng) {
			matches = append(matches, Match{Digits: digits, Word: word})
		}
	}
	return matches
}
