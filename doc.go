// Package spanforest computes minimum spanning forests and connected
// components of in-memory undirected weighted graphs.
//
// What is spanforest?
//
//	A small graph toolkit built around one storage model and two MST
//	algorithms:
//		• Graph: undirected, weighted, dense insertion-order indices
//		• Disjoint-set forest: path compression + union by rank
//		• Kruskal: global edge sort + union-find, spans every component
//		• Prim: linear-scan queue from a root, spans the root's component
//		• Connected components: union-find partition or BFS from one node
//
// Packages:
//
//	core/         - Graph, Node, Edge, GraphView and the per-run Traversal table
//	disjointset/  - generic disjoint-set forest
//	prim_kruskal/ - Kruskal, Prim, TreeEdges and the Compute dispatcher
//	components/   - ConnectedComponents, Count, ComponentOf
//	bfs/          - breadth-first search filling a core.Traversal
//	builder/      - deterministic topology generators (path, grid, random, ...)
//	graphio/      - TOML graph documents and result encoding
//	cmd/spanforest - CLI: kruskal, prim, components, generate, --watch
//
// Quick ASCII example:
//
//	    A──1──B
//	    │ ╲   │
//	    4  3  2
//	    │   ╲ │
//	    D──1──C
//
// Kruskal and Prim(A) both keep A-B, C-D and B-C for a total of 4.
//
// Structures are not safe for concurrent mutation; algorithms never
// mutate the graph they read.
package spanforest
