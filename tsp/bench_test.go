package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlearn/tsp"
)

func BenchmarkRunIteration_30Cities(b *testing.B) {
	c, err := tsp.NewColony(euclid(b, ringPoints(b, 30)), tsp.WithSeed(seedDet))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = c.RunIteration(ctx, 30); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTSPExact_12Cities(b *testing.B) {
	dist := euclid(b, ringPoints(b, 12))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TSPExact(dist); err != nil {
			b.Fatal(err)
		}
	}
}
