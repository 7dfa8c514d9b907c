// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lattice/cell"
)

// MatchFirst tries candidate cells in order and returns the index and result
// of the first one that matches the template.
//
// Nil candidates and those that are degenerate or do not match are skipped.
// A nil or degenerate template fails without trying further candidates.
// Returns ErrNoMatch when every candidate was rejected.
func MatchFirst(candidates []*cell.UnitCell, template *cell.UnitCell, opts ...Option) (int, *Result, error) {
	if template == nil {
		return -1, nil, fmt.Errorf("match: template: %w", cell.ErrNilCell)
	}
	o := gatherOptions(opts...)
	ctx := context.Background()

	for i, c := range candidates {
		lo := o
		lo.logger = o.logger.WithPattern(i)

		res, err := match(ctx, c, template, &lo)
		lo.logger.LogMatch(ctx, res, err)
		switch {
		case err == nil:
			return i, res, nil
		case errors.Is(err, ErrNoMatch), errors.Is(err, ErrDegenerateObserved), errors.Is(err, cell.ErrNilCell) && c == nil:
			continue
		default:
			return -1, nil, err
		}
	}

	return -1, nil, ErrNoMatch
}

// Outcome is the per-pattern result of MatchAll.
type Outcome struct {
	// Index is the position of the observed cell in the input slice.
	Index int

	// Result is nil when Err is set.
	Result *Result

	// Err is the Match error for this pattern (ErrNoMatch, ErrDegenerate*).
	Err error
}

// Matched reports whether the pattern produced a cell.
func (o Outcome) Matched() bool { return o.Err == nil && o.Result != nil }

// MatchAll matches every observed cell against the template concurrently,
// with at most WithWorkers goroutines (default GOMAXPROCS).
//
// Each worker operates on its own copies of the cells. Per-pattern failures
// are reported in the corresponding Outcome; only cancellation of ctx aborts
// the batch, in which case the outcomes gathered so far are returned along
// with ctx's error. Unvisited patterns carry that error too.
func MatchAll(ctx context.Context, observed []*cell.UnitCell, template *cell.UnitCell, opts ...Option) ([]Outcome, error) {
	o := gatherOptions(opts...)
	out := make([]Outcome, len(observed))
	for i := range out {
		out[i] = Outcome{Index: i, Err: context.Canceled}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, obs := range observed {
		if gctx.Err() != nil {
			break
		}
		i, obs := i, obs
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lo := o
			lo.logger = o.logger.WithPattern(i)

			res, err := match(gctx, obs.Clone(), template.Clone(), &lo)
			lo.logger.LogMatch(gctx, res, err)
			out[i] = Outcome{Index: i, Result: res, Err: err}

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	matched := 0
	for i := range out {
		if out[i].Matched() {
			matched++
		} else if err != nil && errors.Is(out[i].Err, context.Canceled) {
			out[i].Err = err
		}
	}
	o.logger.LogBatch(ctx, len(observed), matched, err)

	return out, err
}
