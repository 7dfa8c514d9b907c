// Package match fits an observed unit cell onto a reference (template) cell.
//
// An indexing backend proposes a cell whose axes are often a sub- or
// super-lattice, a permutation, or a sign flip of the true ones. Match
// searches small rational combinations
//
//	t = n₁a* + n₂b* + n₃c*,  |nᵢ| ∈ {0, ½, 1, 2, 3, 4}
//
// of the observed reciprocal axes for three vectors whose lengths agree with
// the template's reciprocal lengths (relative tolerance, default 5 %) and whose
// mutual angles agree with the template's reciprocal angles (absolute
// tolerance, default 1.5°). Among all qualifying triples the one with the
// lowest figure of merit wins:
//
//	FOM = Σ|Δangle| + LengthWeight · Σ|Δlength|
//
// The length term is in inverse meters and the angle term in radians; the
// default weight of 1e-8 is an empirical scale, not a unit conversion.
//
// The matched cell is returned in the Reciprocal representation.
//
// ⚙️ Usage:
//
//	res, err := match.Match(observed, template)
//	switch {
//	case errors.Is(err, match.ErrNoMatch):
//		// try the next candidate cell
//	case err != nil:
//		// degenerate input
//	}
//	fmt.Println(res.Cell, res.FOM)
//
// Match is a pure CPU-bound computation with no shared state, safe to call
// from many goroutines on independent cells. MatchAll does exactly that for
// a batch of patterns; MatchFirst is the sequential "first candidate that
// fits" loop of an indexing driver.
package match
