package avglink

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
)

func benchmarkItems(n, dims int) []Item {
	rng := rand.New(rand.NewSource(1))
	return randomItems(rng, n, dims)
}

func BenchmarkNewDistanceMatrix(b *testing.B) {
	items := benchmarkItems(200, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewDistanceMatrix(items, nil, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewDistanceMatrixParallel(b *testing.B) {
	items := benchmarkItems(200, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewDistanceMatrix(items, nil, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCluster(b *testing.B) {
	for _, n := range []int{50, 200} {
		items := benchmarkItems(n, 8)
		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				if _, err := Cluster(ctx, items, DefaultConfig()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEngineRun(b *testing.B) {
	items := benchmarkItems(100, 8)
	matrix, err := NewDistanceMatrix(items, nil, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := NewEngine(matrix)
		if err != nil {
			b.Fatal(err)
		}
		if err := e.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
