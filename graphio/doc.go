// Package graphio reads and writes string-labelled graphs and algorithm
// results as TOML documents.
//
// A graph document lists nodes in index order, then one [[edges]] table per
// edge:
//
//	nodes = ["A", "B", "C"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 1.0      # omitted => unweighted edge
//
// Decoding is strict: unknown keys are rejected, every endpoint must be
// listed under nodes, and repeated nodes or edges are errors. Encoding a
// graph and decoding it back yields the same node indices and edge order.
package graphio
