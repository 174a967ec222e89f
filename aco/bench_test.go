package aco_test

import (
	"testing"

	"github.com/katalvlaran/antpath/aco"
)

func benchIteration(b *testing.B, n, workers int) {
	d, err := aco.RandomDistances(n, 1, 1, 10)
	if err != nil {
		b.Fatal(err)
	}
	p, err := aco.NewPheromone(n, 1)
	if err != nil {
		b.Fatal(err)
	}
	opts := aco.NewOptions(aco.WithWorkers(workers), aco.WithAggregation(aco.AggregateNormalized))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = aco.RunIteration(i, p, d, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunIteration_N10_Sequential(b *testing.B) { benchIteration(b, 10, 1) }
func BenchmarkRunIteration_N10_Parallel(b *testing.B)   { benchIteration(b, 10, 0) }
func BenchmarkRunIteration_N50_Parallel(b *testing.B)   { benchIteration(b, 50, 0) }
