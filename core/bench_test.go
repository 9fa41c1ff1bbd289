// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spanforest/core"
)

// BenchmarkAddNode measures row growth of the triangular store.
func BenchmarkAddNode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph[int]()
		for v := 0; v < 256; v++ {
			_, _ = g.AddLabel(v)
		}
	}
}

// BenchmarkAdjacentNodes measures the O(V) row scan on a star.
func BenchmarkAdjacentNodes(b *testing.B) {
	g := core.NewGraph[string]()
	_, _ = g.AddLabel("Center")
	for v := 0; v < 1000; v++ {
		leaf := fmt.Sprintf("N%d", v)
		_, _ = g.AddLabel(leaf)
		_, _ = g.AddWeightedEdge("Center", leaf, float64(v))
	}
	center := core.NewNode("Center")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AdjacentNodesOf(center)
	}
}

// BenchmarkRemoveNodeAt measures index compaction when removing the first node.
func BenchmarkRemoveNodeAt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph[int]()
		for v := 0; v < 256; v++ {
			_, _ = g.AddLabel(v)
			if v > 0 {
				_, _ = g.AddEdgeAt(v-1, v)
			}
		}
		b.StartTimer()
		_ = g.RemoveNodeAt(0)
	}
}
