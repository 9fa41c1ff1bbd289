// Package disjointset provides a disjoint-set forest (union-find) over any
// comparable element type, with path compression and union by rank.
//
// What & Why
//
//	A Forest maintains a partition of inserted elements into disjoint sets.
//	Every set is a tree; its root is the set's representative. Kruskal's MST
//	and the connected-components scan both use a fresh Forest per run.
//
// Layout
//
//	Elements live in an arena of slots addressed by insertion index. A slot is
//	either a root (carrying its rank) or a child (carrying its parent's index);
//	the two cases are told apart by a tag, never by a self-reference.
//
// Operations
//
//	MakeSet(e)            – O(1)         create singleton {e}
//	FindSet(e)            – O(α(n)) am.  representative, with full path compression
//	Union(e1, e2)         – O(α(n)) am.  union by rank; ties promote e2's root
//	Representatives()     – O(n)         current roots
//	ElementsOf(e)         – O(n)         members of e's set
//	Sets()                – O(n)         whole partition
//	Clear()               – O(1)         reset to empty
//
// Elements are never created implicitly: FindSet reports "not found" for an
// unknown element and Union rejects it with ErrNotPresent.
//
// A Forest is not safe for concurrent use.
package disjointset
