// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/cell"
	"github.com/katalvlaran/lattice/vec3"
)

// Result describes the best-fitting cell found by Match.
type Result struct {
	// Cell is the matched cell, stored in the Reciprocal representation.
	Cell *cell.UnitCell

	// FOM is the figure of merit of the chosen triple (lower is better).
	FOM float64

	// Axes are the chosen candidates for the template's a*, b* and c*.
	Axes [3]Candidate

	// Candidates counts the candidates kept per axis slot.
	Candidates [3]int

	// Dropped counts candidates discarded because a slot was full.
	Dropped [3]int
}

// Match finds the combination of observed reciprocal axes that best
// reproduces the template's reciprocal lengths and angles.
//
// Errors:
//   - cell.ErrNilCell if either cell is nil.
//   - ErrDegenerateTemplate / ErrDegenerateObserved (wrapping
//     cell.ErrDegenerateBasis) if a reciprocal basis cannot be computed.
//   - ErrNoMatch if no triple satisfies all three angle tolerances.
//
// Ties on the figure of merit keep the first triple in search order.
func Match(observed, template *cell.UnitCell, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	ctx := context.Background()

	res, err := match(ctx, observed, template, &o)
	o.logger.LogMatch(ctx, res, err)

	return res, err
}

func match(ctx context.Context, observed, template *cell.UnitCell, o *Options) (*Result, error) {
	if observed == nil || template == nil {
		return nil, fmt.Errorf("match: %w", cell.ErrNilCell)
	}

	ts, err := template.Reciprocal()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateTemplate, err)
	}
	lengths := ts.Lengths()
	angles := ts.Angles()
	o.logger.LogTemplate(ctx, template, lengths, angles, o.verbose)

	obs, err := observed.Reciprocal()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateObserved, err)
	}

	s := collect(obs.A, obs.B, obs.C, lengths, o)
	for i, d := range s.dropped {
		if d > 0 {
			o.logger.LogOverflow(ctx, i, len(s.cand[i]), d)
		}
	}
	o.logger.LogCandidates(ctx, s.counts(), o.verbose)

	best, fom, ok := search(s, angles, o.angleTol, o.lengthWeight)
	if !ok {
		return nil, ErrNoMatch
	}

	return &Result{
		Cell:       cell.NewFromReciprocal(best[0].Vec, best[1].Vec, best[2].Vec),
		FOM:        fom,
		Axes:       best,
		Candidates: s.counts(),
		Dropped:    s.dropped,
	}, nil
}

// search scans every slot0×slot1×slot2 triple. The angle between slots 0
// and 1 is checked against angles[2], 0 and 2 against angles[1], 1 and 2
// against angles[0]; the first failing check prunes the rest. Only a strictly
// lower figure of merit replaces the current best.
func search(s *slots, angles [3]float64, angTol, lweight float64) ([3]Candidate, float64, bool) {
	var (
		best    [3]Candidate
		bestFOM = math.Inf(1)
		found   bool
	)
	c0, c1, c2 := s.cand[0], s.cand[1], s.cand[2]

	for i := range c0 {
		for j := range c1 {
			if sameVector(c0[i], c1[j]) {
				continue
			}
			d01 := math.Abs(vec3.Angle(c0[i].Vec, c1[j].Vec) - angles[2])
			if !(d01 <= angTol) {
				continue
			}

			for k := range c2 {
				if sameVector(c1[j], c2[k]) || sameVector(c0[i], c2[k]) {
					continue
				}
				d02 := math.Abs(vec3.Angle(c0[i].Vec, c2[k].Vec) - angles[1])
				if !(d02 <= angTol) {
					continue
				}
				d12 := math.Abs(vec3.Angle(c1[j].Vec, c2[k].Vec) - angles[0])
				if !(d12 <= angTol) {
					continue
				}

				fom := d01 + d02 + d12
				fom += lweight * (c0[i].FOM + c1[j].FOM + c2[k].FOM)
				if fom < bestFOM {
					best = [3]Candidate{c0[i], c1[j], c2[k]}
					bestFOM = fom
					found = true
				}
			}
		}
	}

	return best, bestFOM, found
}
