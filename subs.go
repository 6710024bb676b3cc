package leetscan

import (
	"errors"
	"fmt"
)

// ErrInvalidMapping rejects malformed substitution entries: keys that are
// not a single lowercase ASCII letter, or values that are empty or contain
// a non-digit character.
var ErrInvalidMapping = errors.New("invalid substitution mapping")

// defaultExpansions is the built-in leet-speak table. Letters absent from
// it are unmappable unless an override supplies them.
var defaultExpansions = map[byte]string{
	'o': "0",
	's': "5",
	'a': "4",
	'b': "8",
	'e': "3",
	'i': "1",
	'd': "17",
	'r': "12",
}

// SubstitutionMap maps single lowercase letters to non-empty digit strings.
//
// A map is built once with Build and immutable afterwards, so it can be
// shared read-only across concurrent scan workers.
type SubstitutionMap struct {
	expansions [26]string // indexed by letter-'a'; "" means unmappable
}

// Build returns a substitution map consisting of the built-in defaults with
// overrides applied on top, replacing the default expansion per key.
//
// Build fails wrapping ErrInvalidMapping when an override key is not a
// single lowercase letter or a value is empty or not all digits.
func Build(overrides map[string]string) (*SubstitutionMap, error) {
	m := &SubstitutionMap{}
	for letter, digits := range defaultExpansions {
		m.expansions[letter-'a'] = digits
	}
	for key, digits := range overrides {
		if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
			return nil, fmt.Errorf("%w: key %q is not a single lowercase letter", ErrInvalidMapping, key)
		}
		if digits == "" {
			return nil, fmt.Errorf("%w: empty expansion for %q", ErrInvalidMapping, key)
		}
		for i := 0; i < len(digits); i++ {
			if digits[i] < '0' || digits[i] > '9' {
				return nil, fmt.Errorf("%w: expansion %q for %q contains a non-digit", ErrInvalidMapping, digits, key)
			}
		}
		m.expansions[key[0]-'a'] = digits
	}
	if len(overrides) > 0 {
		tracer().Infof("substitution map: %d default entries, %d overrides", len(defaultExpansions), len(overrides))
	}
	return m, nil
}

// Expansion returns the digit string letter maps to. The second return
// value is false for letters without an expansion; a word containing such
// a letter cannot resolve to digits through that position.
func (m *SubstitutionMap) Expansion(letter byte) (string, bool) {
	if letter < 'a' || letter > 'z' {
		return "", false
	}
	digits := m.expansions[letter-'a']
	return digits, digits != ""
}

// Letters returns the letters that currently have an expansion, in
// alphabetical order.
func (m *SubstitutionMap) Letters() []byte {
	letters := make([]byte, 0, 26)
	for i, digits := range m.expansions {
		if digits != "" {
			letters = append(letters, byte('a'+i))
		}
	}
	return letters
}
