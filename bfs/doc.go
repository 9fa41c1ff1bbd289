// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.GraphView,
// recording hop distances and parent links in a core.Traversal.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a source node.
//   - Returns a Result holding the visit Order and the Traversal:
//     Distance is the hop count, Predecessor the BFS-tree parent, and
//     every visited node is Finalized.
//   - Edge weights are ignored; unweighted edges are fine.
//   - Honors MaxDepth (d>0) or explicit "no limit" (d==0).
//   - Cancellation through WithContext is checked once per dequeue.
//
// Determinism
//
//	Neighbors are enqueued in the graph's index order, so the visit
//	sequence is reproducible for a given insertion history.
//
// Complexity
//
//   - Time:   O(V²) on the adjacency-matrix store (one row scan per node).
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.BFS[string](g, core.NewNode("A"), bfs.WithMaxDepth[string](2))
//	if err != nil {
//	    // ErrNilInput, ErrNodeNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, ok := res.Traversal.PathTo(core.NewNode("D"))
package bfs
