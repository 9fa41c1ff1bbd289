// Package core provides the undirected, index-addressed Graph used by the
// spanning-forest algorithms, together with its Node and Edge value types.
//
// The Graph G = (V,E) has the following shape:
//
//   - Nodes wrap an immutable label of any comparable type L. Two nodes are
//     the same node iff their labels are equal.
//   - Every node receives a dense index in [0, NodeCount()) in insertion order.
//     Removing a node shifts every higher index down by one, so survivors keep
//     their relative order.
//   - Edges are undirected and optionally weighted. Each edge occupies exactly
//     one cell of a lower-triangular store keyed by the unordered index pair
//     (max(i,j), min(i,j)); the (i,j) and (j,i) views can never diverge.
//   - Self-loops are allowed and sit on the diagonal.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node[L]) (bool, error)          // O(V) amortized (row growth)
//	AddLabel(label L) (bool, error)           // O(V)
//	RemoveNode / RemoveLabel / RemoveNodeAt   // O(V²) worst case (column compaction)
//	HasNode, Node, NodeAt, IndexOf, Nodes     // O(1) / O(1) / O(1) / O(1) / O(V)
//
//	// Edge lifecycle
//	AddEdge(e Edge[L]) (bool, error)          // O(1)
//	AddEdgeBetween, AddWeightedEdge, AddEdgeAt, AddWeightedEdgeAt
//	RemoveEdge(e Edge[L]) error               // O(1)
//	RemoveEdgeAt(i, j int) error              // O(1)
//	Edge(n1, n2) / EdgeAt(i, j)               // O(1)
//
//	// Queries
//	AdjacentNodesOf / AdjacentNodesAt         // O(V) row scan
//	EdgesOf / EdgesAt                         // O(V) row scan
//	Edges()                                   // O(V²), each edge once
//	EdgeCount(), NodeCount()                  // O(1)
//
//	// Directed-only queries
//	PredecessorNodesOf, IngoingEdgesOf        // always ErrUnsupported
//
// Traversal state:
//
// Algorithms that need per-node scratch fields (color, distance,
// predecessor) keep them in a Traversal, a side table keyed by node. The
// graph itself is never mutated by a traversal, so one Graph may serve any
// number of independent runs.
//
// Concurrency:
//
// Graph and Traversal are not safe for concurrent use. Callers that share a
// Graph between goroutines must synchronize externally.
//
// Errors:
//
//	ErrNilInput         – a required argument (label, graph) is nil.
//	ErrNodeNotFound     – a referenced node is not in the graph.
//	ErrEdgeNotFound     – no edge occupies the referenced slot.
//	ErrInvalidArgument  – structural precondition violated (base of the next two).
//	ErrDirectedEdge     – a directed edge was offered to the undirected graph.
//	ErrIndexOutOfRange  – a node index outside [0, NodeCount()).
//	ErrUnsupported      – a directed-only query on this undirected graph.
package core
