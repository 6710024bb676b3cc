// Package report serializes an aggregated scan result as YAML.
//
// Digit-string keys are always double-quoted so they stay strings instead
// of turning into YAML integers, and keys are written in sorted order so
// identical scans serialize byte-identically.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"leetscan/scan"
)

// Render writes index to w as a YAML mapping from quoted digit string to
// the list of words that produced it. An empty index renders as an empty
// mapping, not an error.
func Render(index *scan.Index, w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, digits := range index.SortedKeys() {
		key := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Style: yaml.DoubleQuotedStyle,
			Value: digits,
		}
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for _, word := range index.Words(digits) {
			list.Content = append(list.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: word,
			})
		}
		doc.Content = append(doc.Content, key, list)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot encode result: %w", err)
	}
	return enc.Close()
}

// Write serializes index to the named file, creating or truncating it.
func Write(index *scan.Index, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create result file: %w", err)
	}
	if err := Render(index, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Read loads a previously written result file back into an index, for
// lookups against persisted scan output. Entries come back in sorted key
// order, which is the order Write emitted them in.
func Read(path string) (*scan.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read result file: %w", err)
	}
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot decode result file: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for digits := range raw {
		keys = append(keys, digits)
	}
	sort.Strings(keys)
	index := scan.NewIndex()
	for _, digits := range keys {
		matches := make([]scan.Match, 0, len(raw[digits]))
		for _, word := range raw[digits] {
			matches = append(matches, scan.Match{Digits: digits, Word: word})
		}
		index.Merge(matches)
	}
	return index, nil
}
