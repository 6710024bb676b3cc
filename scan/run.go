package scan

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"leetscan"
)

// ErrWorkerFailure marks a shard worker that died mid-scan. A failed shard
// fails the whole run: silently incomplete output would be worse than an
// explicit error.
var ErrWorkerFailure = errors.New("shard worker failed")

// Run partitions words into contiguous near-equal shards, scans them on
// workers concurrent goroutines, waits for all of them, and merges their
// results in shard order.
//
// workers < 1 selects the number of available CPUs. The output is
// independent of the worker count: Run with workers=1 and workers=N yield
// the same index, keys and word lists in the same order.
func Run(ctx context.Context, subs *leetscan.SubstitutionMap, words []string, mode leetscan.Mode, rng leetscan.Range, workers int) (*Index, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(words) {
		workers = max(1, len(words))
	}
	shards := split(words, workers)
	results := make([][]Match, len(shards))
	g, ctx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: shard %d: %v", ErrWorkerFailure, i, r)
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Shard(subs, shard, mode, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	index := NewIndex()
	for _, matches := range results { // shard-dispatch order, not completion order
		index.Merge(matches)
	}
	tracer().Infof("scanned %d words in %d shards: %d digit strings", len(words), len(shards), index.Len())
	return index, nil
}

// split cuts words into n contiguous blocks whose sizes differ by at most
// one. The split depends only on len(words) and n, so re-runs shard
// identically.
func split(words []string, n int) [][]string {
	shards := make([][]string, 0, n)
	base, extra := len(words)/n, len(words)%n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		shards = append(shards, words[start:start+size])
		start += size
	}
	return shards
}
