package leetscan

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a word is matched against the substitution map.
type Mode int

const (
	// WholeWord requires every letter of the word to expand.
	WholeWord Mode = iota
	// Suffixes matches every contiguous trailing substring independently,
	// including the full word.
	Suffixes
)

func (mode Mode) String() string {
	if mode == Suffixes {
		return "suffix"
	}
	return "word"
}

// ParseMode maps the command-line mode names onto Mode values.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "word":
		return WholeWord, nil
	case "suffix":
		return Suffixes, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want word or suffix)", s)
}

// ErrInvalidRange rejects length bounds that are non-positive or inverted.
var ErrInvalidRange = errors.New("invalid length range")

// Range bounds the acceptable length of a matched digit string, inclusive
// on both ends.
type Range struct {
	Min int
	Max int
}

// NewRange validates the bounds: both positive, Min <= Max.
func NewRange(min, max int) (Range, error) {
	if min <= 0 || max <= 0 {
		return Range{}, fmt.Errorf("%w: bounds must be positive, got [%d,%d]", ErrInvalidRange, min, max)
	}
	if min > max {
		return Range{}, fmt.Errorf("%w: minimum %d exceeds maximum %d", ErrInvalidRange, min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Contains reports whether a digit-string length falls inside the range.
func (rng Range) Contains(n int) bool {
	return n >= rng.Min && n <= rng.Max
}

// Expand concatenates the expansion of every letter of word, left to
// right. It reports false as soon as any letter has no expansion.
//
// Example:
//
//	"assessed" => "455355317"  (default table)
func (m *SubstitutionMap) Expand(word string) (string, bool) {
	var digits strings.Builder
	for i := 0; i < len(word); i++ {
		e, ok := m.Expansion(word[i])
		if !ok {
			return "", false
		}
		digits.WriteString(e)
	}
	return digits.String(), true
}

// MatchWord matches the whole word: every letter must expand and the
// concatenated digit string's length must lie inside rng.
func (m *SubstitutionMap) MatchWord(word string, rng Range) (string, bool) {
	digits, ok := m.Expand(word)
	if !ok || !rng.Contains(len(digits)) {
		return "", false
	}
	return digits, true
}

// MatchSuffixes returns the digit strings of all fully expandable suffixes
// of word whose length lies inside rng, ordered longest suffix first and
// deduplicated by digit string (two suffixes of one word may expand to the
// same digits; the longer suffix is kept as the canonical record).
//
// The walk runs right to left so the expansion of the suffix starting at i
// is the expansion of word[i] prepended to the previous one. It stops
// early at the first unmappable letter (every longer suffix would have to
// expand that letter too) and as soon as the digit string outgrows
// rng.Max (each further letter only adds digits).
func (m *SubstitutionMap) MatchSuffixes(word string, rng Range) []string {
	var matched []string // shortest suffix first
	digits := ""
	for i := len(word) - 1; i >= 0; i-- {
		e, ok := m.Expansion(word[i])
		if !ok {
			break
		}
		digits = e + digits
		if len(digits) > rng.Max {
			break
		}
		if rng.Contains(len(digits)) {
			matched = append(matched, digits)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	result := make([]string, 0, len(matched))
	seen := make(map[string]struct{}, len(matched))
	for i := len(matched) - 1; i >= 0; i-- {
		if _, dup := seen[matched[i]]; dup {
			continue
		}
		seen[matched[i]] = struct{}{}
		result = append(result, matched[i])
	}
	return result
}
