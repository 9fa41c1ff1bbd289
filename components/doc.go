// Package components partitions the nodes of an undirected core graph into
// connected components with a disjoint-set forest.
//
// ConnectedComponents runs MakeSet on every node and Union on the endpoints
// of every edge, then reads the partition back. Components are ordered by
// their smallest node index and list members in index order, so the result
// is deterministic for a given graph.
//
// Complexity: O(V²) to enumerate edges from the triangular store, plus
// O((V + E)·α(V)) for the forest.
package components
