// SPDX-License-Identifier: MIT

package match

import (
	"math"

	"github.com/katalvlaran/lattice/vec3"
)

// MultiplierSet selects how sign flips are applied to the coefficient
// enumeration.
type MultiplierSet int

const (
	// MultipliersLegacy reproduces the historical enumeration bit for bit:
	// the sign flips are applied in place and accumulate across the 2×2×2
	// sign loop, so each magnitude triple is visited with the sign patterns
	// (−−−) (++−) (−++) (+++) (+−−) (++−) (+++) (+++).
	MultipliersLegacy MultiplierSet = iota

	// MultipliersSymmetric visits each magnitude triple once per independent
	// sign pattern, covering all eight octants.
	MultipliersSymmetric
)

// String returns the set name.
func (s MultiplierSet) String() string {
	switch s {
	case MultipliersLegacy:
		return "legacy"
	case MultipliersSymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// Enumeration bounds. Index n maps to multiplier n when n ≥ 0 and 1/n
// otherwise, giving {−½, −1, 0, 1, 2, 3, 4} per axis.
const (
	minIndex = -2
	maxIndex = 4
)

// Candidate is a trial reciprocal vector qualifying for one axis slot.
type Candidate struct {
	// Vec is n₁a* + n₂b* + n₃c* in inverse meters.
	Vec vec3.Vec

	// N holds (n₁, n₂, n₃).
	N [3]float64

	// FOM is the absolute length residual |ℓ − |Vec|| against the slot's
	// template length.
	FOM float64
}

// sameVector reports whether two candidates use identical coefficients.
func sameVector(a, b Candidate) bool {
	return a.N == b.N
}

// multiplier maps an enumeration index to its coefficient.
func multiplier(n int) float64 {
	if n >= 0 {
		return float64(n)
	}

	return 1.0 / float64(n)
}

// enumerate calls visit for every coefficient triple, in search order.
func (s MultiplierSet) enumerate(visit func(n1, n2, n3 float64)) {
	var n1l, n2l, n3l int
	var b1, b2, b3 float64
	for n1l = minIndex; n1l <= maxIndex; n1l++ {
		for n2l = minIndex; n2l <= maxIndex; n2l++ {
			for n3l = minIndex; n3l <= maxIndex; n3l++ {
				n1, n2, n3 := multiplier(n1l), multiplier(n2l), multiplier(n3l)

				for b1 = -1; b1 <= 1; b1 += 2 {
					for b2 = -1; b2 <= 1; b2 += 2 {
						for b3 = -1; b3 <= 1; b3 += 2 {
							if s == MultipliersLegacy {
								n1 *= b1
								n2 *= b2
								n3 *= b3
								visit(n1, n2, n3)
								continue
							}
							visit(n1*b1, n2*b2, n3*b3)
						}
					}
				}
			}
		}
	}
}

// withinTolerance reports |b − a| < a·percent/100 (strict).
func withinTolerance(a, b, percent float64) bool {
	tol := a * (percent / 100.0)

	return math.Abs(b-a) < tol
}

// slots collects candidates for the three template axes.
type slots struct {
	cand    [3][]Candidate
	dropped [3]int
}

// collect enumerates trial vectors over the observed reciprocal basis
// (as, bs, cs) and files each one into every slot whose template length it
// matches. A slot at capacity drops further candidates (max == 0: unbounded).
func collect(as, bs, cs vec3.Vec, lengths [3]float64, o *Options) *slots {
	s := &slots{}
	o.multipliers.enumerate(func(n1, n2, n3 float64) {
		t := vec3.Combine(n1, as, n2, bs, n3, cs)
		tlen := t.Len()

		for i := 0; i < 3; i++ {
			if !withinTolerance(lengths[i], tlen, o.lengthTol) {
				continue
			}
			if o.maxCandidates > 0 && len(s.cand[i]) >= o.maxCandidates {
				s.dropped[i]++
				continue
			}
			s.cand[i] = append(s.cand[i], Candidate{
				Vec: t,
				N:   [3]float64{n1, n2, n3},
				FOM: math.Abs(lengths[i] - tlen),
			})
		}
	})

	return s
}

// counts returns the number of kept candidates per slot.
func (s *slots) counts() [3]int {
	return [3]int{len(s.cand[0]), len(s.cand[1]), len(s.cand[2])}
}
