/*
Package leetscan maps lowercase words onto decimal digit strings through
leet-speak letter substitutions.

A SubstitutionMap assigns each supported letter a fixed, non-empty digit
string (for example e => "3", d => "17"). A word matches when every letter
of it (whole-word mode) or of one of its trailing substrings (suffix mode)
has an expansion and the concatenated digits have a length inside a
configured range:

	"leet" => "1337"           (with l => 1, t => 7 defined)
	"assessed" => "455355317"  (o=0 s=5 a=4 b=8 e=3 i=1 d=17 r=12)

Expansion is deterministic: one letter, one digit string, no alternatives.
That keeps matching a linear left-to-right concatenation instead of a
search over substitution choices.

This package holds only the matching engine. Fan-out over large word lists
lives in package scan, word-list and override-file loading in packages
wordlist and subsfile, output in package report.
*/
package leetscan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'leetscan'
func tracer() tracing.Trace {
	return tracing.Select("leetscan")
}
