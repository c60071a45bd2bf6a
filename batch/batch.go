// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/typereduction/interval"
	"github.com/katalvlaran/typereduction/reduce"
	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
)

var log = logging.MustGetLogger("batch")

// Reduce runs algo over every rule set and returns the results in input
// order. workers <= 0 means runtime.GOMAXPROCS(0).
//
// Errors: the first reducer error as "rule set <i>: <err>" (errors.Is still
// matches the reduce and interval sentinels), or ctx.Err() when the context
// is cancelled first.
func Reduce(ctx context.Context, sets []interval.Sequence, algo reduce.Algorithm, opts *reduce.Options, workers int) ([]reduce.Result, error) {
	fn, err := reduce.For(algo)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log.Debugf("reducing %d rule sets with %s on %d workers", len(sets), algo, workers)

	results := make([]reduce.Result, len(sets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, set := range sets {
		if gctx.Err() != nil {
			break
		}
		i, set := i, set
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := fn(set.Clone(), opts)
			if err != nil {
				return fmt.Errorf("rule set %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		log.Debugf("batch aborted: %v", err)

		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Compare runs every supported algorithm on one rule set in parallel and
// returns the results indexed like reduce.Algorithms(). Input and options
// are validated once up front so a malformed set yields a single error.
func Compare(ctx context.Context, seq interval.Sequence, opts *reduce.Options) ([]reduce.Result, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	if opts != nil {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
	}
	algos := reduce.Algorithms()
	results := make([]reduce.Result, len(algos))
	g, gctx := errgroup.WithContext(ctx)
	for i, algo := range algos {
		i, algo := i, algo
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := reduce.Reduce(seq.Clone(), algo, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
