package model

import "golang.org/x/sync/errgroup"

// minChunk keeps tiny grids from paying goroutine overhead per worker
const minChunk = 1024

// span is a half-open index range [lo, hi)
type span struct {
	lo, hi int
}

/*
partition splits [from, to) into at most parts contiguous, disjoint spans.

Every interior boundary sits at from + k*align so batched passes stay aligned per span.
*/
func partition(from, to, parts, align int) []span {
	if to <= from {
		return nil
	}
	parts = max(parts, 1)
	align = max(align, 1)

	var (
		n    = to - from
		size = (n + parts - 1) / parts // Ceiling division
	)
	size = max(size, min(minChunk, n))
	size = (size + align - 1) / align * align

	spans := make([]span, 0, (n+size-1)/size)
	for lo := from; lo < to; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, to)})
	}
	return spans
}

/*
runSpans runs fn once per span on at most workers goroutines and returns once all of
them have finished, acting as the barrier between phases.

fn receives the span's ordinal so it can write a per-chunk partial result without sharing.
*/
func runSpans(workers int, spans []span, fn func(chunk, lo, hi int)) {
	if len(spans) == 1 || workers <= 1 {
		for i, s := range spans {
			fn(i, s.lo, s.hi)
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, s := range spans {
		eg.Go(func() error {
			fn(i, s.lo, s.hi)
			return nil
		})
	}
	// chunk functions never return an error
	_ = eg.Wait()
}

// parallelFor partitions [from, to) for workers and runs fn over every span
func parallelFor(workers, from, to, align int, fn func(chunk, lo, hi int)) {
	runSpans(workers, partition(from, to, workers, align), fn)
}
