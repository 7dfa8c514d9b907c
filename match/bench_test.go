// Package match_test provides benchmarks for the cell matcher.
package match_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lattice/cell"
	"github.com/katalvlaran/lattice/match"
)

// sinks to defeat dead-code elimination
var (
	sinkR *match.Result
	sinkO []match.Outcome
)

func BenchmarkMatch(b *testing.B) {
	b.ReportAllocs()
	observed, template := orthorhombic(), orthorhombic()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := match.Match(observed, template)
		if err != nil {
			b.Fatal(err)
		}
		sinkR = res
	}
}

func BenchmarkMatchAll(b *testing.B) {
	b.ReportAllocs()
	observed := make([]*cell.UnitCell, 64)
	for i := range observed {
		observed[i] = orthorhombic()
	}
	template := orthorhombic()
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := match.MatchAll(ctx, observed, template)
		if err != nil {
			b.Fatal(err)
		}
		sinkO = out
	}
}
