// Package prim_kruskal computes minimum spanning trees (and, on disconnected
// inputs, minimum spanning forests) of an undirected, weighted core.Graph
// with two greedy algorithms: Kruskal's and Prim's.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects every vertex in V with no cycle and whose total weight is minimal.
//     When G is disconnected the same greedy rules yield a spanning forest: one tree per component.
//
//   - Why it matters:
//
//   - Network Design: cheapest backbone joining a set of sites (fiber, power, roads).
//
//   - Clustering: cutting the heaviest tree edges splits the nodes into k groups.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge[L], float64, error)
//
//   - Strategy: stable-sort every edge by ascending weight, then accept an edge iff its endpoints
//     belong to different sets of a fresh disjointset.Forest, merging them on acceptance.
//
//   - Result: a spanning forest (a tree iff g is connected) and its total weight. A disconnected
//     graph is not an error.
//
//   - Complexity: O(E log E + V² ) - the sort dominates on dense inputs, Edges() costs O(V²).
//
//   - Determinism: g.Edges() lists edges in row-major order of the triangular store and the sort
//     is stable, so equal weights keep that order.
//
//   - Prim(g, source) (*core.Traversal[L], error)
//
//   - Strategy: every node starts Unvisited at +Inf with no predecessor; source starts at 0.
//     Repeatedly extract the candidate of minimum distance by linear scan (first in index order
//     wins ties), mark it Finalized, and relax each still-candidate neighbor whose connecting
//     edge is lighter than its distance (it becomes Discovered).
//
//   - Result: the returned Traversal holds, per node, the weight of the tree edge joining it to
//     its predecessor. Nodes unreachable from source keep +Inf and no predecessor; this is not
//     an error. TreeEdges rebuilds the edge list from the predecessor links.
//
//   - Complexity: O(V²) time with the linear scan, O(V) extra memory.
//
//   - Compute(g, opts) dispatches between the two by MSTOptions.Method and always
//     returns an edge list plus total weight.
//
// Error Conditions
//
//	Both algorithms validate their input before touching it:
//
//	- core.ErrNilInput       - g is nil (or Prim's source label is nil).
//	- ErrDirectedGraph       - g.Directed() is true.
//	- ErrUnweightedEdge      - some edge carries no weight.
//	- ErrNegativeWeight      - some edge weight is below zero.
//	- core.ErrNodeNotFound   - Prim's source is not in g.
//
//	ErrDirectedGraph, ErrUnweightedEdge, ErrNegativeWeight, ErrEmptyRoot and
//	ErrUnknownMethod all match core.ErrInvalidArgument with errors.Is.
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
