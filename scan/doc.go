/*
Package scan fans a word list out over a fixed pool of shard workers and
merges their matches into one deterministic digit-string index.

Workers own disjoint contiguous shards of the input and share only the
immutable substitution map, so the scan phase needs no locking. The single
synchronization point is the join in Run, which merges worker results in
shard-dispatch order, never completion order: the final index must come out
identical for any worker count, because results are persisted and diffed
across runs.
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'leetscan.scan'
func tracer() tracing.Trace {
	return tracing.Select("leetscan.scan")
}
