// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/TheRadDani/graphlib/core"
)

// benchGraph builds a sparse random graph with n nodes and m edges, sized like
// the social-network edge lists the engine targets.
func benchGraph(b *testing.B, n, m int) *core.Graph {
	b.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < m; i++ {
		u, v := uint64(rng.Intn(n)), uint64(rng.Intn(n))
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

// BenchmarkAddEdge measures appending edges between sparse IDs.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(uint64(i)*7919, uint64(i%1000))
	}
}

// BenchmarkNeighbors measures a repeated neighbor lookup on a hub.
func BenchmarkNeighbors(b *testing.B) {
	g := benchGraph(b, 4000, 88000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(42)
	}
}

// BenchmarkWalk measures one 80-step walk.
func BenchmarkWalk(b *testing.B) {
	g := benchGraph(b, 4000, 88000)
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Walk(42, 80, rng)
	}
}

// BenchmarkDeleteNode measures delete cost including neighbor cleanup.
func BenchmarkDeleteNode(b *testing.B) {
	base := benchGraph(b, 4000, 88000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		_ = g.DeleteNode(uint64(i % 4000))
	}
}
